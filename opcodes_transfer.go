// opcodes_transfer.go - data transfer instructions: MOV/MVI/LXI/LDA/STA/...

package i8080

// initTransferOps installs every data-transfer opcode: MOV r1,r2 (0x40-
// 0x7F, HLT at 0x76 excluded - opcodes_io.go owns it), MVI r,d8, LXI
// rp,d16, LDA/STA a16, LDAX/STAX B|D, LHLD/SHLD a16, XCHG, XTHL, SPHL,
// PCHL.
func initTransferOps(t *opcodeTable) {
	for op := 0x40; op <= 0x7F; op++ {
		if op == 0x76 {
			continue
		}
		dest := byte(op>>3) & 0x07
		src := byte(op) & 0x07
		t[op] = Instruction{Size: 1, Mnemonic: "MOV", action: func(c *CPU, b2, b3 byte) {
			c.writeReg8(dest, c.readReg8(src))
		}}
	}

	mviDests := map[byte]byte{0x06: 0, 0x0E: 1, 0x16: 2, 0x1E: 3, 0x26: 4, 0x2E: 5, 0x36: 6, 0x3E: 7}
	for op, dest := range mviDests {
		dest := dest
		t[op] = Instruction{Size: 2, Mnemonic: "MVI", action: func(c *CPU, b2, b3 byte) {
			c.writeReg8(dest, b2)
		}}
	}

	t[0x01] = Instruction{Size: 3, Mnemonic: "LXI B,d16", action: func(c *CPU, b2, b3 byte) {
		c.SetBC(word(b2, b3))
	}}
	t[0x11] = Instruction{Size: 3, Mnemonic: "LXI D,d16", action: func(c *CPU, b2, b3 byte) {
		c.SetDE(word(b2, b3))
	}}
	t[0x21] = Instruction{Size: 3, Mnemonic: "LXI H,d16", action: func(c *CPU, b2, b3 byte) {
		c.SetHL(word(b2, b3))
	}}
	t[0x31] = Instruction{Size: 3, Mnemonic: "LXI SP,d16", action: func(c *CPU, b2, b3 byte) {
		c.SP = word(b2, b3)
	}}

	t[0x3A] = Instruction{Size: 3, Mnemonic: "LDA a16", action: func(c *CPU, b2, b3 byte) {
		c.A = c.Mem.Read8(word(b2, b3))
	}}
	t[0x32] = Instruction{Size: 3, Mnemonic: "STA a16", action: func(c *CPU, b2, b3 byte) {
		c.Mem.Write8(word(b2, b3), c.A)
	}}

	t[0x0A] = Instruction{Size: 1, Mnemonic: "LDAX B", action: func(c *CPU, b2, b3 byte) {
		c.A = c.Mem.Read8(c.BC())
	}}
	t[0x1A] = Instruction{Size: 1, Mnemonic: "LDAX D", action: func(c *CPU, b2, b3 byte) {
		c.A = c.Mem.Read8(c.DE())
	}}
	t[0x02] = Instruction{Size: 1, Mnemonic: "STAX B", action: func(c *CPU, b2, b3 byte) {
		c.Mem.Write8(c.BC(), c.A)
	}}
	t[0x12] = Instruction{Size: 1, Mnemonic: "STAX D", action: func(c *CPU, b2, b3 byte) {
		c.Mem.Write8(c.DE(), c.A)
	}}

	t[0x2A] = Instruction{Size: 3, Mnemonic: "LHLD a16", action: func(c *CPU, b2, b3 byte) {
		c.SetHL(c.Mem.Read16(word(b2, b3)))
	}}
	t[0x22] = Instruction{Size: 3, Mnemonic: "SHLD a16", action: func(c *CPU, b2, b3 byte) {
		c.Mem.Write16(word(b2, b3), c.HL())
	}}

	t[0xEB] = Instruction{Size: 1, Mnemonic: "XCHG", action: func(c *CPU, b2, b3 byte) {
		c.D, c.H = c.H, c.D
		c.E, c.L = c.L, c.E
	}}
	t[0xE3] = Instruction{Size: 1, Mnemonic: "XTHL", action: func(c *CPU, b2, b3 byte) {
		lo := c.Mem.Read8(c.SP)
		hi := c.Mem.Read8(c.SP + 1)
		c.Mem.Write8(c.SP, c.L)
		c.Mem.Write8(c.SP+1, c.H)
		c.L = lo
		c.H = hi
	}}
	t[0xF9] = Instruction{Size: 1, Mnemonic: "SPHL", action: func(c *CPU, b2, b3 byte) {
		c.SP = c.HL()
	}}
	t[0xE9] = Instruction{Size: 1, Mnemonic: "PCHL", action: func(c *CPU, b2, b3 byte) {
		c.PC = c.HL()
	}}
}

// word combines an instruction's two immediate bytes into a 16-bit
// little-endian value (b2 is the low byte, b3 the high byte, matching how
// the decoder fetches 3-byte instructions).
func word(b2, b3 byte) uint16 {
	return uint16(b3)<<8 | uint16(b2)
}
