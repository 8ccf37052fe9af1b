package tscrunch

import "errors"

// Sentinel errors returned by Compress and its collaborators.
var (
	// ErrEmptyInput is returned when the input buffer has length zero.
	ErrEmptyInput = errors.New("tscrunch: empty input")
	// ErrNoPath is returned if the parse graph has no path from 0 to N.
	// Unreachable in practice: literal edges of size 1..31 cover every
	// step, so this only fires if that invariant is ever broken.
	ErrNoPath = errors.New("tscrunch: no path through parse graph")
	// ErrAllocation is returned when graph construction or the predecessor
	// arrays fail to allocate. Compress returns it for any panic raised on
	// its own goroutine, since Go has no allocating API that returns nil
	// instead; a panic inside buildGraph's per-position goroutines is not
	// recovered.
	ErrAllocation = errors.New("tscrunch: allocation failed")
	// ErrTruncatedInput describes a bitstream that ends before a token's
	// operand bytes are read. Nothing in this module returns it; the
	// reference decoder in internal/tscdecode reports that case with its
	// own ErrTruncated.
	ErrTruncatedInput = errors.New("tscrunch: truncated token stream")
	// ErrBadJumpAddress is returned by collaborators parsing a `$addr`
	// style SFX jump target.
	ErrBadJumpAddress = errors.New("tscrunch: invalid jump address")
)
