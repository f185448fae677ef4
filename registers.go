// registers.go - architectural register state for the 8080 core

package i8080

// Registers holds the 8080's architectural register file: the accumulator
// and six general-purpose registers that pair into BC/DE/HL, plus the two
// dedicated 16-bit registers PC and SP.
type Registers struct {
	A byte
	B byte
	C byte
	D byte
	E byte
	H byte
	L byte

	SP uint16
	PC uint16
}

// BC returns the BC register pair as (B<<8)|C.
func (r *Registers) BC() uint16 {
	return uint16(r.B)<<8 | uint16(r.C)
}

// SetBC decomposes a 16-bit value into B (high) and C (low).
func (r *Registers) SetBC(v uint16) {
	r.B = byte(v >> 8)
	r.C = byte(v)
}

// DE returns the DE register pair as (D<<8)|E.
func (r *Registers) DE() uint16 {
	return uint16(r.D)<<8 | uint16(r.E)
}

// SetDE decomposes a 16-bit value into D (high) and E (low).
func (r *Registers) SetDE(v uint16) {
	r.D = byte(v >> 8)
	r.E = byte(v)
}

// HL returns the HL register pair as (H<<8)|L. HL additionally serves as
// the address register for the "M" pseudo-register operand.
func (r *Registers) HL() uint16 {
	return uint16(r.H)<<8 | uint16(r.L)
}

// SetHL decomposes a 16-bit value into H (high) and L (low).
func (r *Registers) SetHL(v uint16) {
	r.H = byte(v >> 8)
	r.L = byte(v)
}

// reset zeroes every register. PC and SP start at zero; the caller is
// expected to move SP to a sane value before running code that uses the
// stack.
func (r *Registers) reset() {
	*r = Registers{}
}
