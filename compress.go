package tscrunch

// Mode selects which of the three output shapes Compress produces.
type Mode int

const (
	// ModeRaw prepends a one-byte zero-run header and appends the
	// terminator: [R-1] ++ tokens ++ [0x20].
	ModeRaw Mode = iota
	// ModeSFX omits the header byte; the collaborator patches R and load
	// addresses into an external boot stub instead.
	ModeSFX
	// ModeInPlace produces the 4-byte-header in-place layout.
	ModeInPlace
)

// Compress runs the optimal parser over src and serializes the winning
// token sequence per mode, returning the chosen zero-run length R
// alongside the payload so callers needing it for a header (ModeSFX) have
// it without recomputing.
//
// origAddr is only consumed in ModeInPlace, where the in-place token
// stream itself must carry the original PRG's load address; see
// DESIGN.md for why that address, unlike the outer file's own load
// address, is the core's concern.
func Compress(src []byte, mode Mode, origAddr [2]byte) (payload []byte, r int, err error) {
	if len(src) == 0 {
		return nil, 0, ErrEmptyInput
	}

	defer func() {
		if rec := recover(); rec != nil {
			payload, r, err = nil, 0, ErrAllocation
		}
	}()

	view := src
	var remainderByte byte
	if mode == ModeInPlace {
		remainderByte = src[len(src)-1]
		view = src[:len(src)-1]
	}
	if len(view) == 0 {
		// A 1-byte input in ModeInPlace has nothing left to parse; the
		// whole file is the reserved remainder byte.
		return emitInPlace(view, nil, longestRLE, remainderByte, origAddr), longestRLE, nil
	}

	optimalRun := findOptimalZeroRun(view)
	pg := buildGraph(view, optimalRun)
	tokens, perr := shortestParse(pg, len(view))
	if perr != nil {
		return nil, 0, perr
	}

	switch mode {
	case ModeRaw:
		out := make([]byte, 0, 1+len(view)+len(view)/longestLiteral+2)
		out = append(out, byte(optimalRun-1))
		out = append(out, emitTokens(view, tokens)...)
		return out, optimalRun, nil
	case ModeSFX:
		return emitTokens(view, tokens), optimalRun, nil
	case ModeInPlace:
		return emitInPlace(view, tokens, optimalRun, remainderByte, origAddr), optimalRun, nil
	default:
		return emitTokens(view, tokens), optimalRun, nil
	}
}
