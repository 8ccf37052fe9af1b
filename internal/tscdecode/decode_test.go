package tscdecode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTokens_Literal(t *testing.T) {
	// 0x03 ++ "ABC" ++ terminator
	out, err := DecodeTokens([]byte{0x03, 'A', 'B', 'C', 0x20}, 64)
	require.NoError(t, err)
	assert.Equal(t, []byte("ABC"), out)
}

func TestDecodeTokens_RLE(t *testing.T) {
	// size=3 -> 0x81 | ((3-1)<<1 & 0x7f) = 0x85, value 'A'
	out, err := DecodeTokens([]byte{0x85, 'A', 0x20}, 64)
	require.NoError(t, err)
	assert.Equal(t, []byte("AAA"), out)
}

func TestDecodeTokens_ZeroRun(t *testing.T) {
	out, err := DecodeTokens([]byte{0x81, 0x20}, 4)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 0}, out)
}

func TestDecodeTokens_LZ2(t *testing.T) {
	// literal-2 "AB" then LZ2 offset=2 (byte 127-2=0x7D) then terminator.
	out, err := DecodeTokens([]byte{0x02, 'A', 'B', 0x7D, 0x20}, 64)
	require.NoError(t, err)
	assert.Equal(t, []byte("ABAB"), out)
}

func TestDecodeTokens_ShortLZ(t *testing.T) {
	// literal-4 "ABCD" then short LZ size=4 offset=4.
	// byte0 = 0x80 | (((4-1)<<2)&0x7f) | 0x02 = 0x80|0x0C|0x02 = 0x8E
	out, err := DecodeTokens([]byte{0x04, 'A', 'B', 'C', 'D', 0x8E, 0x04, 0x20}, 64)
	require.NoError(t, err)
	assert.Equal(t, []byte("ABCDABCD"), out)
}

func TestDecodeTokens_TruncatedStream(t *testing.T) {
	_, err := DecodeTokens([]byte{0x03, 'A', 'B'}, 64)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestDecodeTokens_BadBackref(t *testing.T) {
	// LZ2 with offset 127-126=1, but nothing precedes the first byte.
	_, err := DecodeTokens([]byte{0x7E, 0x20}, 64)
	assert.ErrorIs(t, err, ErrBadBackref)
}

func TestDecodeRaw_HeaderByte(t *testing.T) {
	out, r, err := DecodeRaw([]byte{0x3F, 0x01, 'Z', 0x20})
	require.NoError(t, err)
	assert.Equal(t, 64, r)
	assert.Equal(t, []byte("Z"), out)
}
