// opcodes_io.go - port I/O, interrupt control, and the two always-present opcodes

package i8080

// initControlOps installs IN/OUT, EI/DI, HLT and NOP. Every other byte
// already defaults to NOP from buildOpcodeTable; 0x00 is set explicitly
// here purely so its table entry carries the right mnemonic.
func initControlOps(t *opcodeTable) {
	t[0x00] = Instruction{Size: 1, Mnemonic: "NOP", action: actNOP}

	t[0xDB] = Instruction{Size: 2, Mnemonic: "IN d8", action: func(c *CPU, b2, b3 byte) {
		c.A = c.in(b2)
	}}
	t[0xD3] = Instruction{Size: 2, Mnemonic: "OUT d8", action: func(c *CPU, b2, b3 byte) {
		c.out(b2, c.A)
	}}

	t[0xFB] = Instruction{Size: 1, Mnemonic: "EI", action: func(c *CPU, b2, b3 byte) {
		c.interruptsEnabled = true
	}}
	t[0xF3] = Instruction{Size: 1, Mnemonic: "DI", action: func(c *CPU, b2, b3 byte) {
		c.interruptsEnabled = false
	}}

	t[0x76] = Instruction{Size: 1, Mnemonic: "HLT", action: func(c *CPU, b2, b3 byte) {
		c.halted = true
	}}
}
