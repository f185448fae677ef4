// cpu_test.go - construction, reset, dispatch loop, halt and interrupt states

package i8080

import "testing"

func TestNewCPUStartsZeroedWithInterruptsDisabled(t *testing.T) {
	c := New()
	requireEqual16(t, "PC", c.PC, 0)
	requireEqual16(t, "SP", c.SP, 0)
	requireEqual8(t, "A", c.A, 0)
	requireBool(t, "halted", c.IsHalted(), false)
	requireBool(t, "interrupts enabled", c.InterruptsEnabled(), false)
}

func TestNOPAdvancesPCByOne(t *testing.T) {
	rig := newTestRig()
	rig.load(0x0100, []byte{0x00})
	rig.cpu.Step()
	requireEqual16(t, "PC", rig.cpu.PC, 0x0101)
}

func TestUndefinedOpcodeBehavesAsNOP(t *testing.T) {
	// 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38, 0xCB, 0xD9, 0xDD, 0xED, 0xFD
	// are undefined on real 8080 hardware and must not fault or otherwise
	// corrupt state; they advance PC by one like any other one-byte NOP.
	for _, op := range []byte{0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38, 0xCB, 0xD9, 0xDD, 0xED, 0xFD} {
		rig := newTestRig()
		rig.cpu.A = 0x55
		rig.load(0, []byte{op})
		rig.cpu.Step()
		requireEqual16(t, "PC", rig.cpu.PC, 1)
		requireEqual8(t, "A", rig.cpu.A, 0x55)
	}
}

func TestHLTHaltsAndStepBecomesNoOp(t *testing.T) {
	rig := newTestRig()
	rig.load(0, []byte{0x76, 0x3E, 0xFF}) // HLT ; MVI A,0xFF (never reached)
	rig.cpu.Step()
	requireBool(t, "halted", rig.cpu.IsHalted(), true)

	rig.cpu.Step() // no-op while halted
	requireEqual16(t, "PC", rig.cpu.PC, 1)
	requireEqual8(t, "A", rig.cpu.A, 0x00)
}

func TestInterruptIgnoredWhenDisabled(t *testing.T) {
	rig := newTestRig()
	rig.cpu.PC = 0x1234
	rig.cpu.Interrupt(3)
	requireEqual16(t, "PC", rig.cpu.PC, 0x1234)
	requireBool(t, "halted", rig.cpu.IsHalted(), false)
}

func TestInterruptPerformsRSTAndResumesFromHalt(t *testing.T) {
	rig := newTestRig()
	rig.load(0, []byte{0xFB, 0x76}) // EI ; HLT
	rig.cpu.SP = 0x2000

	rig.cpu.Step() // EI
	rig.cpu.Step() // HLT
	requireBool(t, "halted", rig.cpu.IsHalted(), true)
	requireBool(t, "interrupts enabled", rig.cpu.InterruptsEnabled(), true)

	rig.cpu.Interrupt(4) // RST 4 -> PC = 0x20
	requireBool(t, "halted", rig.cpu.IsHalted(), false)
	requireBool(t, "interrupts enabled", rig.cpu.InterruptsEnabled(), false)
	requireEqual16(t, "PC", rig.cpu.PC, 0x0020)
	requireEqual16(t, "SP", rig.cpu.SP, 0x1FFE)
	requireEqual16(t, "saved PC", rig.cpu.Mem.Read16(0x1FFE), 2)
}

func TestDIDisablesFutureInterrupts(t *testing.T) {
	rig := newTestRig()
	rig.load(0, []byte{0xFB, 0xF3}) // EI ; DI
	rig.cpu.Step()
	rig.cpu.Step()
	requireBool(t, "interrupts enabled", rig.cpu.InterruptsEnabled(), false)

	rig.cpu.Interrupt(1)
	requireEqual16(t, "PC", rig.cpu.PC, 2) // ignored, PC unchanged
}

func TestRunUntilStopsOnHaltedWithInterruptsDisabled(t *testing.T) {
	rig := newTestRig()
	rig.load(0, []byte{0x00, 0x00, 0x76, 0x00}) // NOP NOP HLT NOP
	rig.cpu.RunUntil(func(c *CPU) bool { return false })
	requireEqual16(t, "PC", rig.cpu.PC, 3)
	requireBool(t, "halted", rig.cpu.IsHalted(), true)
}
