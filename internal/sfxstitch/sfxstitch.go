// Package sfxstitch patches a boot-stub image's addresses and stitches it
// in front of a crunched token stream to produce a self-booting PRG, and
// resolves the two distinct load addresses an in-place payload needs.
//
// The embedded boot.prg is a placeholder stub of the right size for the
// documented patch offsets; the real 6502 boot machine code is a build
// asset outside this package's scope.
package sfxstitch

import _ "embed"

//go:embed boot.prg
var bootStub []byte

// Patch offsets into the boot stub.
const (
	offTransferLo = 0x1e
	offTransferHi = 0x1f
	offStartLo    = 0x3c
	offStartHi    = 0x3d
	offDecrunchLo = 0x40
	offDecrunchHi = 0x41
	offJumpLo     = 0x77
	offJumpHi     = 0x78
	offZeroRun    = 0xc9

	// sfxLoadAddress is the fixed BASIC-stub load address ($0801) every
	// SFX PRG starts at, regardless of where it decrunches to.
	sfxLoadAddress = 0x0801
)

// Boot returns a private copy of the boot stub, safe for the caller to
// patch in place.
func Boot() []byte {
	b := make([]byte, len(bootStub))
	copy(b, bootStub)
	return b
}

// Stitch patches a fresh boot stub with the transfer/jump/decrunch
// addresses this crunch produced and prepends it to the token stream.
// It returns the finished PRG body (still missing its own 2-byte PRG
// header, which the caller prepends) and the fixed load address the
// result must be saved at.
func Stitch(tokens []byte, jumpTo, decrunchTo uint16, optimalRun int) (out []byte, loadTo uint16) {
	boot := Boot()

	fileLen := len(boot) + len(tokens)
	startAddress := uint16(0x10000 - len(tokens))
	transferAddress := uint16(fileLen + 0x6ff)

	boot[offTransferLo] = byte(transferAddress & 0xff)
	boot[offTransferHi] = byte(transferAddress >> 8)

	boot[offStartLo] = byte(startAddress & 0xff)
	boot[offStartHi] = byte(startAddress >> 8)

	boot[offDecrunchLo] = byte(decrunchTo & 0xff)
	boot[offDecrunchHi] = byte(decrunchTo >> 8)

	boot[offJumpLo] = byte(jumpTo & 0xff)
	boot[offJumpHi] = byte(jumpTo >> 8)

	boot[offZeroRun] = byte(optimalRun - 1)

	out = append(boot, tokens...)
	return out, sfxLoadAddress
}

// InPlaceLoadAddress computes the second, outer load address an in-place
// payload needs: where the crunched bytes themselves must sit in memory
// so that, as decrunching proceeds forward toward decrunchEnd, the read
// cursor never falls behind the write cursor. This is distinct from the
// original PRG load address baked into the payload by Compress itself —
// see DESIGN.md.
func InPlaceLoadAddress(decrunchEnd uint16, payloadLen int) uint16 {
	return decrunchEnd - uint16(payloadLen) + 1
}
