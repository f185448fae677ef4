// flags.go - condition flag file and the PSW pack/unpack format

package i8080

// Flags packs the five 8080 condition bits into a small boolean struct.
// The source this core is grounded on keeps flags in an opaque byte with
// invented bit positions; a struct of booleans is clearest internally, and
// only Flags.pack/unpack need to know about the architectural PSW layout.
type Flags struct {
	Z  bool // zero
	S  bool // sign
	P  bool // parity (even = 1)
	CY bool // carry
	AC bool // auxiliary (half) carry
}

// Bit positions of the packed Program Status Word byte, as pushed/popped
// by PUSH PSW / POP PSW. Bits 1, 3 and 5 are reserved: forced to 1, 0, 0
// respectively on write, ignored on read.
const (
	pswBitCY = 1 << 0
	pswBitP  = 1 << 2
	pswBitAC = 1 << 4
	pswBitZ  = 1 << 6
	pswBitS  = 1 << 7

	pswReservedBit1 = 1 << 1 // always 1 in the packed byte
)

// pack encodes the flags into the canonical 8080 PSW low byte.
func (f Flags) pack() byte {
	var b byte
	if f.S {
		b |= pswBitS
	}
	if f.Z {
		b |= pswBitZ
	}
	if f.AC {
		b |= pswBitAC
	}
	if f.P {
		b |= pswBitP
	}
	if f.CY {
		b |= pswBitCY
	}
	b |= pswReservedBit1
	return b
}

// unpack restores flags from a packed PSW low byte. Reserved bits 3 and 5
// are ignored.
func (f *Flags) unpack(b byte) {
	f.S = b&pswBitS != 0
	f.Z = b&pswBitZ != 0
	f.AC = b&pswBitAC != 0
	f.P = b&pswBitP != 0
	f.CY = b&pswBitCY != 0
}

func (f *Flags) reset() {
	*f = Flags{}
}
