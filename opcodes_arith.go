// opcodes_arith.go - arithmetic and logic instructions

package i8080

// initArithmeticOps installs ADD/ADC/SUB/SBB/ANA/XRA/ORA/CMP r and their
// d8-immediate counterparts, INR/DCR (including M), INX/DCX, DAD, DAA,
// CMA, STC, CMC, and the four single-bit rotates.
func initArithmeticOps(t *opcodeTable) {
	type aluGroup struct {
		base byte
		name string
		op   func(c *CPU, v byte)
	}
	groups := []aluGroup{
		{0x80, "ADD", func(c *CPU, v byte) { c.A = c.add8(c.A, v, 0) }},
		{0x88, "ADC", func(c *CPU, v byte) { c.A = c.add8(c.A, v, carryBit(c.CY)) }},
		{0x90, "SUB", func(c *CPU, v byte) { c.A = c.sub8(c.A, v, 0) }},
		{0x98, "SBB", func(c *CPU, v byte) { c.A = c.sub8(c.A, v, carryBit(c.CY)) }},
		{0xA0, "ANA", func(c *CPU, v byte) { c.A = c.and8(c.A, v) }},
		{0xA8, "XRA", func(c *CPU, v byte) { c.A = c.orXor8(c.A, v, true) }},
		{0xB0, "ORA", func(c *CPU, v byte) { c.A = c.orXor8(c.A, v, false) }},
		{0xB8, "CMP", func(c *CPU, v byte) { c.sub8(c.A, v, 0) }}, // result discarded, flags only
	}
	for _, g := range groups {
		g := g
		for src := byte(0); src < 8; src++ {
			src := src
			t[g.base+src] = Instruction{Size: 1, Mnemonic: g.name, action: func(c *CPU, b2, b3 byte) {
				g.op(c, c.readReg8(src))
			}}
		}
	}

	immOps := map[byte]aluGroup{
		0xC6: {name: "ADI", op: func(c *CPU, v byte) { c.A = c.add8(c.A, v, 0) }},
		0xCE: {name: "ACI", op: func(c *CPU, v byte) { c.A = c.add8(c.A, v, carryBit(c.CY)) }},
		0xD6: {name: "SUI", op: func(c *CPU, v byte) { c.A = c.sub8(c.A, v, 0) }},
		0xDE: {name: "SBI", op: func(c *CPU, v byte) { c.A = c.sub8(c.A, v, carryBit(c.CY)) }},
		0xE6: {name: "ANI", op: func(c *CPU, v byte) { c.A = c.and8(c.A, v) }},
		0xEE: {name: "XRI", op: func(c *CPU, v byte) { c.A = c.orXor8(c.A, v, true) }},
		0xF6: {name: "ORI", op: func(c *CPU, v byte) { c.A = c.orXor8(c.A, v, false) }},
		0xFE: {name: "CPI", op: func(c *CPU, v byte) { c.sub8(c.A, v, 0) }},
	}
	for op, g := range immOps {
		g := g
		t[op] = Instruction{Size: 2, Mnemonic: g.name, action: func(c *CPU, b2, b3 byte) {
			g.op(c, b2)
		}}
	}

	inrOps := map[byte]byte{0x04: 0, 0x0C: 1, 0x14: 2, 0x1C: 3, 0x24: 4, 0x2C: 5, 0x34: 6, 0x3C: 7}
	for op, reg := range inrOps {
		reg := reg
		t[op] = Instruction{Size: 1, Mnemonic: "INR", action: func(c *CPU, b2, b3 byte) {
			c.writeReg8(reg, c.inc8(c.readReg8(reg)))
		}}
	}
	dcrOps := map[byte]byte{0x05: 0, 0x0D: 1, 0x15: 2, 0x1D: 3, 0x25: 4, 0x2D: 5, 0x35: 6, 0x3D: 7}
	for op, reg := range dcrOps {
		reg := reg
		t[op] = Instruction{Size: 1, Mnemonic: "DCR", action: func(c *CPU, b2, b3 byte) {
			c.writeReg8(reg, c.dec8(c.readReg8(reg)))
		}}
	}

	t[0x03] = Instruction{Size: 1, Mnemonic: "INX B", action: func(c *CPU, b2, b3 byte) { c.SetBC(c.BC() + 1) }}
	t[0x13] = Instruction{Size: 1, Mnemonic: "INX D", action: func(c *CPU, b2, b3 byte) { c.SetDE(c.DE() + 1) }}
	t[0x23] = Instruction{Size: 1, Mnemonic: "INX H", action: func(c *CPU, b2, b3 byte) { c.SetHL(c.HL() + 1) }}
	t[0x33] = Instruction{Size: 1, Mnemonic: "INX SP", action: func(c *CPU, b2, b3 byte) { c.SP++ }}

	t[0x0B] = Instruction{Size: 1, Mnemonic: "DCX B", action: func(c *CPU, b2, b3 byte) { c.SetBC(c.BC() - 1) }}
	t[0x1B] = Instruction{Size: 1, Mnemonic: "DCX D", action: func(c *CPU, b2, b3 byte) { c.SetDE(c.DE() - 1) }}
	t[0x2B] = Instruction{Size: 1, Mnemonic: "DCX H", action: func(c *CPU, b2, b3 byte) { c.SetHL(c.HL() - 1) }}
	t[0x3B] = Instruction{Size: 1, Mnemonic: "DCX SP", action: func(c *CPU, b2, b3 byte) { c.SP-- }}

	dad := func(get func(c *CPU) uint16) func(c *CPU, b2, b3 byte) {
		return func(c *CPU, b2, b3 byte) {
			sum := uint32(c.HL()) + uint32(get(c))
			c.SetHL(uint16(sum))
			c.CY = sum > 0xFFFF
		}
	}
	t[0x09] = Instruction{Size: 1, Mnemonic: "DAD B", action: dad((*CPU).BC)}
	t[0x19] = Instruction{Size: 1, Mnemonic: "DAD D", action: dad((*CPU).DE)}
	t[0x29] = Instruction{Size: 1, Mnemonic: "DAD H", action: dad((*CPU).HL)}
	t[0x39] = Instruction{Size: 1, Mnemonic: "DAD SP", action: dad(func(c *CPU) uint16 { return c.SP })}

	t[0x27] = Instruction{Size: 1, Mnemonic: "DAA", action: func(c *CPU, b2, b3 byte) {
		c.A = c.daa(c.A)
	}}
	t[0x2F] = Instruction{Size: 1, Mnemonic: "CMA", action: func(c *CPU, b2, b3 byte) {
		c.A = ^c.A
	}}
	t[0x37] = Instruction{Size: 1, Mnemonic: "STC", action: func(c *CPU, b2, b3 byte) {
		c.CY = true
	}}
	t[0x3F] = Instruction{Size: 1, Mnemonic: "CMC", action: func(c *CPU, b2, b3 byte) {
		c.CY = !c.CY
	}}

	t[0x07] = Instruction{Size: 1, Mnemonic: "RLC", action: func(c *CPU, b2, b3 byte) { c.A = c.rlc(c.A) }}
	t[0x0F] = Instruction{Size: 1, Mnemonic: "RRC", action: func(c *CPU, b2, b3 byte) { c.A = c.rrc(c.A) }}
	t[0x17] = Instruction{Size: 1, Mnemonic: "RAL", action: func(c *CPU, b2, b3 byte) { c.A = c.ral(c.A) }}
	t[0x1F] = Instruction{Size: 1, Mnemonic: "RAR", action: func(c *CPU, b2, b3 byte) { c.A = c.rar(c.A) }}
}

func carryBit(cy bool) byte {
	if cy {
		return 1
	}
	return 0
}
