// opcodes_branch.go - unconditional and conditional jump/call/return, RST

package i8080

// initBranchOps installs JMP/CALL/RET (unconditional and the eight
// conditional variants over NZ/Z, NC/C, PO/PE, P/M) and RST 0..7. PCHL is
// installed alongside the other transfer-of-control-via-register-pair
// opcodes in opcodes_transfer.go, since it shares no operand-fetch shape
// with this file's branches.
//
// For every conditional form the tested flag is evaluated before any
// PC/stack mutation; if false, the operand bytes are simply consumed
// (already done by the decoder's PC advance) and execution falls through.
func initBranchOps(t *opcodeTable) {
	t[0xC3] = Instruction{Size: 3, Mnemonic: "JMP a16", action: func(c *CPU, b2, b3 byte) {
		c.PC = word(b2, b3)
	}}
	t[0xCD] = Instruction{Size: 3, Mnemonic: "CALL a16", action: func(c *CPU, b2, b3 byte) {
		c.pushWord(c.PC)
		c.PC = word(b2, b3)
	}}
	t[0xC9] = Instruction{Size: 1, Mnemonic: "RET", action: func(c *CPU, b2, b3 byte) {
		c.PC = c.popWord()
	}}

	for cc := byte(0); cc < 8; cc++ {
		cc := cc

		jOp := 0xC2 + cc*8
		t[jOp] = Instruction{Size: 3, Mnemonic: "Jcc a16", action: func(c *CPU, b2, b3 byte) {
			if c.testCondition(cc) {
				c.PC = word(b2, b3)
			}
		}}

		callOp := 0xC4 + cc*8
		t[callOp] = Instruction{Size: 3, Mnemonic: "Ccc a16", action: func(c *CPU, b2, b3 byte) {
			if c.testCondition(cc) {
				c.pushWord(c.PC)
				c.PC = word(b2, b3)
			}
		}}

		retOp := 0xC0 + cc*8
		t[retOp] = Instruction{Size: 1, Mnemonic: "Rcc", action: func(c *CPU, b2, b3 byte) {
			if c.testCondition(cc) {
				c.PC = c.popWord()
			}
		}}

		rstOp := 0xC7 + cc*8
		t[rstOp] = Instruction{Size: 1, Mnemonic: "RST n", action: func(c *CPU, b2, b3 byte) {
			c.rst(cc)
		}}
	}
}
