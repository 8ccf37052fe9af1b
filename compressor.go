package tscrunch

import (
	"fmt"
	"io"
	"strconv"

	"github.com/8bitcrunch/tscrunch/internal/clilog"
	"github.com/8bitcrunch/tscrunch/internal/prg"
	"github.com/8bitcrunch/tscrunch/internal/sfxstitch"
)

// Options configures the file-level wrapping around the core parser: PRG
// header handling, SFX boot-stub stitching and in-place layout. None of
// these are part of the optimal-parser core itself; Compressor wraps
// Compress in an io.Reader-in/io.Writer-out shape so callers don't have
// to assemble PRG headers and boot stubs by hand.
type Options struct {
	Quiet   bool
	Stats   bool
	PRG     bool
	SFX     bool
	InPlace bool
	// JumpTo is a "$1234"-style hex address the decrunched program should
	// jump to once decrunching finishes. Setting it implies SFX and PRG.
	JumpTo string
}

// Compressor holds one crunch job: an input buffer plus the options that
// determine how Compress's output gets wrapped.
type Compressor struct {
	opt        Options
	src        []byte
	addr       prg.Header
	decrunchTo uint16
	jmp        uint16
	log        *clilog.Logger
}

// NewCompressor reads all of r and prepares a Compressor: JumpTo forces
// SFX+PRG, InPlace forces PRG, and a PRG input has its 2-byte load
// address stripped and remembered.
func NewCompressor(opt Options, r io.Reader) (*Compressor, error) {
	if opt.JumpTo != "" {
		opt.SFX = true
		opt.PRG = true
	}
	if opt.InPlace {
		opt.PRG = true
	}

	var jmp uint16
	if opt.SFX {
		addr, err := parseJumpAddress(opt.JumpTo)
		if err != nil {
			return nil, err
		}
		jmp = addr
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("tscrunch: reading input: %w", err)
	}

	c := &Compressor{opt: opt, src: src, jmp: jmp}
	if opt.PRG {
		h, body, err := prg.Strip(src)
		if err != nil {
			return nil, err
		}
		c.addr = h
		c.src = body
		c.decrunchTo = h.Addr()
	}
	c.log = clilog.New(nil, opt.Quiet, opt.Stats)
	return c, nil
}

// parseJumpAddress parses a "$1234" hex jump address.
func parseJumpAddress(s string) (uint16, error) {
	if len(s) == 0 || s[0] != '$' {
		return 0, fmt.Errorf("%w: %q", ErrBadJumpAddress, s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrBadJumpAddress, s, err)
	}
	return uint16(v), nil
}

// WriteTo runs the core parser and writes the fully wrapped output (PRG
// header, SFX boot stub, or in-place header as configured) to w.
func (c *Compressor) WriteTo(w io.Writer) (int64, error) {
	if len(c.src) == 0 {
		return 0, ErrEmptyInput
	}

	done := c.log.Step("populating parse graph")
	mode := ModeRaw
	switch {
	case c.opt.InPlace:
		mode = ModeInPlace
	case c.opt.SFX:
		mode = ModeSFX
	}

	payload, r, err := Compress(c.src, mode, c.addr)
	done()
	if err != nil {
		return 0, err
	}

	decrunchEnd := uint16(int(c.decrunchTo) + len(c.src) - 1)
	var loadTo uint16
	dstKind := "RAW"

	switch {
	case c.opt.InPlace:
		loadTo = sfxstitch.InPlaceLoadAddress(decrunchEnd, len(payload))
		payload = prg.Prepend(prg.HeaderFromAddr(loadTo), payload)
		dstKind = "PRG"
	case c.opt.SFX:
		stitched, fixedLoad := sfxstitch.Stitch(payload, c.jmp, c.decrunchTo, r)
		loadTo = fixedLoad
		payload = prg.Prepend(prg.HeaderFromAddr(loadTo), stitched)
		dstKind = "PRG"
	}

	srcKind := "RAW"
	if c.opt.PRG {
		srcKind = "PRG"
	}
	c.log.Result(srcKind, dstKind, c.decrunchTo, decrunchEnd, len(c.src), loadTo, len(payload))

	n, err := w.Write(payload)
	return int64(n), err
}
