package tscrunch

// inPlaceSplit is the safety pass for in-place output: walking the token
// list in reverse, it finds every maximal trailing segment whose source
// length doesn't exceed its encoded length (a "safe" segment, where the
// decompressed bytes never overtake the compressed bytes still to be
// read) and converts each one to raw trailing bytes. It returns how many
// leading tokens stay crunched (safety: tokens[:safety] are emitted as
// tokens) plus how many trailing source bytes ended up in the uncrunched
// tail (totalUncrunched).
// Anything before the last safe cut stays crunched even if never proven
// safe on its own, since the decompressor will have already freed more
// space by the time it gets there.
func inPlaceSplit(tokens []Token) (safety, totalUncrunched int) {
	safety = len(tokens)
	segUncrunched, segCrunched := 0, 0

	for i := len(tokens) - 1; i >= 0; i-- {
		segCrunched += tokens[i].payloadLen()
		segUncrunched += tokens[i].Size
		if segUncrunched <= segCrunched {
			safety = i
			totalUncrunched += segUncrunched
			segUncrunched, segCrunched = 0, 0
		}
	}
	return safety, totalUncrunched
}

// emitInPlace builds the full in-place payload: the 4-byte header
// (original PRG load address, R-1, and the first byte of the trailing
// literal remainder), the crunched prefix, the terminator, and the rest
// of the uncrunched tail. viewSrc is the parser's view of the input, i.e.
// the original buffer with its final byte already split off into
// remainderByte.
func emitInPlace(viewSrc []byte, tokens []Token, r int, remainderByte byte, origAddr [2]byte) []byte {
	safety, totalUncrunched := inPlaceSplit(tokens)

	tail := make([]byte, 0, totalUncrunched+1)
	if totalUncrunched > 0 {
		tail = append(tail, viewSrc[len(viewSrc)-totalUncrunched:]...)
	}
	tail = append(tail, remainderByte)

	out := make([]byte, 0, 4+len(tail)+safety*2)
	out = append(out, origAddr[0], origAddr[1], byte(r-1), tail[0])
	for _, t := range tokens[:safety] {
		out = append(out, t.payload(viewSrc)...)
	}
	out = append(out, terminator)
	out = append(out, tail[1:]...)
	return out
}
