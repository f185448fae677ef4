// alu.go - flag-deriving arithmetic, logic, rotate and decimal-adjust primitives

package i8080

// parity8 reports whether the low 8 bits of v contain an even number of
// set bits (the 8080's "parity" flag convention: even = 1).
func parity8(v byte) bool {
	v ^= v >> 4
	v ^= v >> 2
	v ^= v >> 1
	return v&1 == 0
}

// setZSP derives Z, S and P from a result byte. Every arithmetic/logic
// action ends by calling this; CY and AC are each operation's own to set.
func (f *Flags) setZSP(result byte) {
	f.Z = result == 0
	f.S = result&0x80 != 0
	f.P = parity8(result)
}

// add8 computes a+v(+carryIn), sets Z/S/P/CY/AC, and returns the
// truncated result. carryIn is 0 or 1.
func (f *Flags) add8(a, v, carryIn byte) byte {
	sum := uint16(a) + uint16(v) + uint16(carryIn)
	result := byte(sum)
	f.setZSP(result)
	f.CY = sum > 0xFF
	f.AC = (a&0x0F)+(v&0x0F)+carryIn > 0x0F
	return result
}

// sub8 computes a-v-carryIn, sets Z/S/P/CY/AC, and returns the truncated
// result. CY is the borrow out of bit 7, AC the borrow out of bit 3.
// carryIn is 0 or 1.
func (f *Flags) sub8(a, v, carryIn byte) byte {
	diff := int(a) - int(v) - int(carryIn)
	result := byte(diff)
	f.setZSP(result)
	f.CY = diff < 0
	f.AC = int(a&0x0F)-int(v&0x0F)-int(carryIn) < 0
	return result
}

// and8 computes a&v. CY is always cleared; AC is set from (a|v)&0x08, the
// 8080 manual's documented behavior for ANA (distinct from ORA/XRA, which
// always clear AC).
func (f *Flags) and8(a, v byte) byte {
	result := a & v
	f.setZSP(result)
	f.CY = false
	f.AC = (a|v)&0x08 != 0
	return result
}

// orXor8 computes a OR v or a XOR v (selected by xor). CY and AC are both
// cleared.
func (f *Flags) orXor8(a, v byte, xor bool) byte {
	var result byte
	if xor {
		result = a ^ v
	} else {
		result = a | v
	}
	f.setZSP(result)
	f.CY = false
	f.AC = false
	return result
}

// inc8 computes r+1. Z/S/P/AC are updated; CY is left untouched by the
// caller (INR never passes through here for CY).
func (f *Flags) inc8(r byte) byte {
	result := r + 1
	f.setZSP(result)
	f.AC = r&0x0F == 0x0F
	return result
}

// dec8 computes r-1. Z/S/P/AC are updated; CY is left untouched.
func (f *Flags) dec8(r byte) byte {
	result := r - 1
	f.setZSP(result)
	f.AC = r&0x0F == 0x00
	return result
}

// daa decimal-adjusts a after a BCD addition, per the 8080 manual: if the
// low nibble exceeds 9 or AC is set, add 0x06 (updating AC from that add
// alone); then if the resulting high nibble exceeds 9 or CY is set
// (considering the post-low-nibble-adjust value), add 0x60 (updating CY).
func (f *Flags) daa(a byte) byte {
	adj := a
	if a&0x0F > 0x09 || f.AC {
		f.AC = (a&0x0F)+0x06 > 0x0F
		adj += 0x06
	} else {
		f.AC = false
	}
	if adj>>4 > 0x09 || f.CY {
		f.CY = true
		adj += 0x60
	}
	f.setZSP(adj)
	return adj
}

// rlc rotates a left circularly by one bit; CY takes the old bit 7.
func (f *Flags) rlc(a byte) byte {
	f.CY = a&0x80 != 0
	return a<<1 | a>>7
}

// rrc rotates a right circularly by one bit; CY takes the old bit 0.
func (f *Flags) rrc(a byte) byte {
	f.CY = a&0x01 != 0
	return a>>1 | a<<7
}

// ral rotates a left through carry: the new bit 0 is the old CY, and CY
// takes the old bit 7.
func (f *Flags) ral(a byte) byte {
	oldCY := byte(0)
	if f.CY {
		oldCY = 1
	}
	f.CY = a&0x80 != 0
	return a<<1 | oldCY
}

// rar rotates a right through carry: the new bit 7 is the old CY, and CY
// takes the old bit 0.
func (f *Flags) rar(a byte) byte {
	oldCY := byte(0)
	if f.CY {
		oldCY = 0x80
	}
	f.CY = a&0x01 != 0
	return a>>1 | oldCY
}
