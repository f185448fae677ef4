// cpu_helpers.go - register-field decode and other dispatch-table plumbing

package i8080

// readReg8 returns the 8-bit register or memory operand named by an
// instruction's 3-bit register field (000=B 001=C 010=D 011=E 100=H 101=L
// 110=M(memory at HL) 111=A).
func (c *CPU) readReg8(code byte) byte {
	switch code & 0x07 {
	case 0:
		return c.B
	case 1:
		return c.C
	case 2:
		return c.D
	case 3:
		return c.E
	case 4:
		return c.H
	case 5:
		return c.L
	case 6:
		return c.Mem.Read8(c.HL())
	default:
		return c.A
	}
}

// writeReg8 stores v into the register or memory operand named by an
// instruction's 3-bit register field.
func (c *CPU) writeReg8(code byte, v byte) {
	switch code & 0x07 {
	case 0:
		c.B = v
	case 1:
		c.C = v
	case 2:
		c.D = v
	case 3:
		c.E = v
	case 4:
		c.H = v
	case 5:
		c.L = v
	case 6:
		c.Mem.Write8(c.HL(), v)
	default:
		c.A = v
	}
}

// testCondition evaluates one of the eight branch conditions encoded in
// a 3-bit condition-code field: NZ/Z, NC/C, PO/PE, P/M.
func (c *CPU) testCondition(cc byte) bool {
	switch cc & 0x07 {
	case 0:
		return !c.Z
	case 1:
		return c.Z
	case 2:
		return !c.CY
	case 3:
		return c.CY
	case 4:
		return !c.P
	case 5:
		return c.P
	case 6:
		return !c.S
	default:
		return c.S
	}
}

// in reads a byte from the host-supplied port bus.
func (c *CPU) in(port byte) byte {
	return c.bus.In(port)
}

// out writes a byte to the host-supplied port bus.
func (c *CPU) out(port byte, v byte) {
	c.bus.Out(port, v)
}
