// Package tscdecode is a from-scratch software decoder for the TSCrunch
// bitstream, used only by tests to exercise the round-trip property of
// raw and SFX token streams without the real 6502 decompressor. It does
// not decode the in-place layout. It's a
// bounds-checked byte cursor returning sentinel errors instead of
// panicking on malformed input.
package tscdecode

import "errors"

// Sentinel errors returned by DecodeTokens/DecodeRaw.
var (
	ErrTruncated     = errors.New("tscdecode: truncated token stream")
	ErrBadBackref    = errors.New("tscdecode: back-reference before start of output")
	ErrMissingHeader = errors.New("tscdecode: raw stream too short for header byte")
)

const terminator = 0x20

// DecodeRaw decodes a ModeRaw payload: a 1-byte zero-run header followed
// by a token stream and terminator. Returns the decompressed bytes and
// the zero-run length R the header encoded.
func DecodeRaw(payload []byte) ([]byte, int, error) {
	if len(payload) < 1 {
		return nil, 0, ErrMissingHeader
	}
	r := int(payload[0]) + 1
	out, err := DecodeTokens(payload[1:], r)
	return out, r, err
}

// DecodeTokens decodes a bare token stream (no header byte), as produced
// by ModeSFX, given the zero-run length R out of band.
func DecodeTokens(stream []byte, r int) ([]byte, error) {
	var out []byte
	pos := 0

	for {
		if pos >= len(stream) {
			return nil, ErrTruncated
		}
		b := stream[pos]
		pos++

		if b == terminator {
			return out, nil
		}

		switch {
		case b < terminator:
			// Literal: low 5 bits are the size.
			size := int(b & 0x1f)
			if pos+size > len(stream) {
				return nil, ErrTruncated
			}
			out = append(out, stream[pos:pos+size]...)
			pos += size

		case b < 0x80:
			// LZ2: offset = 127 - b, in [1,94].
			offset := 127 - int(b)
			if err := copyBack(&out, offset, 2); err != nil {
				return nil, err
			}

		case b == 0x81:
			// ZeroRun: R zero bytes.
			out = append(out, make([]byte, r)...)

		case b&1 == 1:
			// RLE: size = ((b & 0x7e) >> 1) + 1, next byte is the value.
			size := int((b&0x7e)>>1) + 1
			if pos >= len(stream) {
				return nil, ErrTruncated
			}
			val := stream[pos]
			pos++
			for i := 0; i < size; i++ {
				out = append(out, val)
			}

		case b&0x02 != 0:
			// Short LZ: size = (((b&0x7f)-2)>>2)+1, next byte is the offset.
			size := int(((int(b)&0x7f)-2)>>2) + 1
			if pos >= len(stream) {
				return nil, ErrTruncated
			}
			offset := int(stream[pos])
			pos++
			if err := copyBack(&out, offset, size); err != nil {
				return nil, err
			}

		default:
			// Long LZ: size's high bits come from this byte, low bit from
			// the high byte of the two's-complement offset.
			if pos+1 >= len(stream) {
				return nil, ErrTruncated
			}
			half := int(b&0x7f) >> 2
			negLo := uint16(stream[pos])
			negHi := stream[pos+1]
			pos += 2
			size := ((half << 1) | int(negHi>>7)) + 1
			// The stored high byte only carries its low 7 bits; bit 7 is
			// always 1 for any offset in range (1, longLZOffset], so the
			// encoder drops it to steal a bit for the size parity above.
			neg := negLo | ((uint16(negHi&0x7f) | 0x80) << 8)
			offset := int(uint16(0 - neg))
			if err := copyBack(&out, offset, size); err != nil {
				return nil, err
			}
		}
	}
}

// copyBack appends size bytes to *out, each copied from offset bytes
// before the current write position, one byte at a time (so overlapping
// back-references, as used by RLE-style LZ matches, replicate correctly).
func copyBack(out *[]byte, offset, size int) error {
	start := len(*out) - offset
	if offset < 1 || start < 0 {
		return ErrBadBackref
	}
	for i := 0; i < size; i++ {
		*out = append(*out, (*out)[start+i])
	}
	return nil
}
