// memory.go - flat 64KiB address space for the 8080 core

package i8080

import "encoding/binary"

// memorySize is the 8080's entire address space: 64KiB, byte-addressable,
// shared by code, data, and the stack.
const memorySize = 0x10000

// Memory is a flat 64KiB byte array with little-endian 16-bit helpers.
// There is no bounds checking beyond the modular 16-bit address: the
// array IS 65,536 bytes, so every uint16 address is already in range.
type Memory struct {
	bytes [memorySize]byte
}

// Read8 returns the byte at addr.
func (m *Memory) Read8(addr uint16) byte {
	return m.bytes[addr]
}

// Write8 stores v at addr.
func (m *Memory) Write8(addr uint16, v byte) {
	m.bytes[addr] = v
}

// Read16 reads a little-endian 16-bit value: low byte at addr, high byte
// at addr+1. The addr+1 computation wraps modulo 2^16 like every other
// address in this core, so the access is done byte-at-a-time rather than
// via a two-byte slice that could straddle the end of the array.
func (m *Memory) Read16(addr uint16) uint16 {
	return binary.LittleEndian.Uint16([]byte{m.bytes[addr], m.bytes[addr+1]})
}

// Write16 stores v as a little-endian 16-bit value at addr/addr+1.
func (m *Memory) Write16(addr uint16, v uint16) {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	m.bytes[addr] = buf[0]
	m.bytes[addr+1] = buf[1]
}

// Slice returns a read-only copy of the whole address space, for
// introspection (tests, debug tooling); writing to it does not change
// memory.
func (m *Memory) Slice() []byte {
	s := make([]byte, memorySize)
	copy(s, m.bytes[:])
	return s
}

// Load copies src into memory starting at base, wrapping addresses modulo
// 2^16 the same way every other memory access does. The caller decides
// the load address; a headerless ROM image can be split across several
// calls at different bases (e.g. the four Space Invaders ROM segments).
func (m *Memory) Load(base uint16, src []byte) {
	for i, b := range src {
		m.bytes[base+uint16(i)] = b
	}
}

func (m *Memory) reset() {
	for i := range m.bytes {
		m.bytes[i] = 0
	}
}
