// opcodes_stack.go - PUSH/POP of register pairs and the PSW

package i8080

// initStackOps installs PUSH/POP B, D, H and PSW. XTHL and SPHL are
// installed in opcodes_transfer.go alongside the other HL/SP transfer
// opcodes.
func initStackOps(t *opcodeTable) {
	t[0xC5] = Instruction{Size: 1, Mnemonic: "PUSH B", action: func(c *CPU, b2, b3 byte) {
		c.pushWord(c.BC())
	}}
	t[0xD5] = Instruction{Size: 1, Mnemonic: "PUSH D", action: func(c *CPU, b2, b3 byte) {
		c.pushWord(c.DE())
	}}
	t[0xE5] = Instruction{Size: 1, Mnemonic: "PUSH H", action: func(c *CPU, b2, b3 byte) {
		c.pushWord(c.HL())
	}}
	t[0xF5] = Instruction{Size: 1, Mnemonic: "PUSH PSW", action: func(c *CPU, b2, b3 byte) {
		c.pushWord(uint16(c.A)<<8 | uint16(c.Flags.pack()))
	}}

	t[0xC1] = Instruction{Size: 1, Mnemonic: "POP B", action: func(c *CPU, b2, b3 byte) {
		c.SetBC(c.popWord())
	}}
	t[0xD1] = Instruction{Size: 1, Mnemonic: "POP D", action: func(c *CPU, b2, b3 byte) {
		c.SetDE(c.popWord())
	}}
	t[0xE1] = Instruction{Size: 1, Mnemonic: "POP H", action: func(c *CPU, b2, b3 byte) {
		c.SetHL(c.popWord())
	}}
	t[0xF1] = Instruction{Size: 1, Mnemonic: "POP PSW", action: func(c *CPU, b2, b3 byte) {
		v := c.popWord()
		c.A = byte(v >> 8)
		c.Flags.unpack(byte(v))
	}}
}
