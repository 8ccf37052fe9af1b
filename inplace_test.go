package tscrunch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInPlaceSplit_AllLiteralsDegenerateToFullTail(t *testing.T) {
	// A literal token always encodes to size+1 bytes, so every suffix of
	// an all-literal token list is individually "safe" (uncrunched <=
	// crunched); the backward walk commits at every position, ending with
	// nothing left crunched and the whole input in the uncrunched tail.
	tokens := []Token{
		{Kind: KindLiteral, Size: 1},
		{Kind: KindLiteral, Size: 1},
	}
	safety, uncrunched := inPlaceSplit(tokens)
	assert.Equal(t, 0, safety)
	assert.Equal(t, 2, uncrunched)
}

func TestInPlaceSplit_TrailingExpansionStaysCrunched(t *testing.T) {
	// A long RLE run (64 source bytes, 2 encoded bytes) at the tail never
	// becomes "safe" on its own, and prepending the earlier literal makes
	// the cumulative segment even less safe; the walk never commits a cut,
	// so safety stays at its len(tokens) default and nothing moves to the
	// tail.
	tokens := []Token{
		{Kind: KindLiteral, Size: 1},
		{Kind: KindRLE, Size: 64, Byte: 0xAB},
	}
	safety, uncrunched := inPlaceSplit(tokens)
	assert.Equal(t, len(tokens), safety)
	assert.Equal(t, 0, uncrunched)
}

func TestInPlaceSplit_TrailingLiteralsPayBackLeadingRLE(t *testing.T) {
	// Three trailing literals, each individually safe, commit cuts one at
	// a time back to index 1; the leading RLE run at index 0 is then
	// accumulated (64 source bytes against 2 encoded) but never reaches a
	// safe point, so it simply stays in the crunched prefix.
	tokens := []Token{
		{Kind: KindRLE, Size: 64, Byte: 0xAB},
		{Kind: KindLiteral, Size: 1},
		{Kind: KindLiteral, Size: 1},
		{Kind: KindLiteral, Size: 1},
	}
	safety, uncrunched := inPlaceSplit(tokens)
	assert.Equal(t, 1, safety)
	assert.Equal(t, 3, uncrunched)
}

func TestEmitInPlace_HeaderAndTerminatorShape(t *testing.T) {
	viewSrc := []byte{0x41, 0x42, 0x43}
	tokens := []Token{literalToken(0, 3)}
	origAddr := [2]byte{0x00, 0x08}

	out := emitInPlace(viewSrc, tokens, 10, 0x99, origAddr)
	require.GreaterOrEqual(t, len(out), 4)
	assert.Equal(t, origAddr[0], out[0])
	assert.Equal(t, origAddr[1], out[1])
	assert.Equal(t, byte(9), out[2]) // r-1
	// The 3-byte literal is moved to the tail, so no token precedes the
	// terminator, which follows the header's first tail byte.
	assert.Equal(t, byte(terminator), out[4])
}
