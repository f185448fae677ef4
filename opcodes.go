// opcodes.go - the 256-entry instruction descriptor table

package i8080

// Instruction describes one decoded 8080 opcode: its total length
// (including the opcode byte itself) and the action it performs. action
// receives the instruction's immediate operand bytes, already fetched and
// with PC already advanced past them — jumps/calls simply overwrite PC
// from inside action.
type Instruction struct {
	Size     int
	Mnemonic string
	action   func(c *CPU, b2, b3 byte)
}

// opcodeTable is a 256-entry direct-indexed dispatch table: O(1) lookup,
// cache-dense, and built once as shared, read-only data (every CPU
// instance points at the same table).
type opcodeTable [256]Instruction

// sharedOpcodeTable is built once at package init and never mutated
// afterwards, so it may safely be shared read-only across CPU instances.
var sharedOpcodeTable = buildOpcodeTable()

// buildOpcodeTable assembles the full 256-opcode table. Every entry
// defaults to a one-byte NOP (undefined 8080 opcodes - 0x08, 0x10, 0x18,
// 0x20, 0x28, 0x30, 0x38, 0xCB, 0xD9, 0xDD, 0xED, 0xFD - are treated as
// NOP, matching real 8080 hardware rather than faulting); each category
// init function then overwrites the opcodes it owns. Building the table
// exactly once here, split by category across this file's siblings,
// avoids the duplicated opcode listing the source this core is grounded
// on carries across two copies of its opcode table.
func buildOpcodeTable() opcodeTable {
	var t opcodeTable
	for i := range t {
		t[i] = Instruction{Size: 1, Mnemonic: "NOP", action: actNOP}
	}

	initTransferOps(&t)
	initArithmeticOps(&t)
	initBranchOps(&t)
	initStackOps(&t)
	initControlOps(&t)

	return t
}

func actNOP(c *CPU, b2, b3 byte) {}
