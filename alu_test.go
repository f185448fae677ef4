// alu_test.go - ALU flag-derivation invariants

package i8080

import "testing"

func TestParityMatchesEvenBitCount(t *testing.T) {
	for v := 0; v < 256; v++ {
		bits := 0
		for b := 0; b < 8; b++ {
			if v&(1<<b) != 0 {
				bits++
			}
		}
		want := bits%2 == 0
		if got := parity8(byte(v)); got != want {
			t.Fatalf("parity8(0x%02X) = %v, want %v", v, got, want)
		}
	}
}

func TestRLCEightTimesIsIdentity(t *testing.T) {
	var f Flags
	a := byte(0xB7)
	// The eighth rotate moves the original bit 0 out of bit 7 into CY, so
	// CY returns to its start only when it starts equal to that bit.
	f.CY = a&0x01 != 0
	startA, startCY := a, f.CY
	for i := 0; i < 8; i++ {
		a = f.rlc(a)
	}
	requireEqual8(t, "A", a, startA)
	requireBool(t, "CY", f.CY, startCY)
}

func TestRRCEightTimesIsIdentity(t *testing.T) {
	var f Flags
	a := byte(0x4D)
	// The eighth rotate moves the original bit 7 out of bit 0 into CY, so
	// CY returns to its start only when it starts equal to that bit.
	f.CY = a&0x80 != 0
	startA, startCY := a, f.CY
	for i := 0; i < 8; i++ {
		a = f.rrc(a)
	}
	requireEqual8(t, "A", a, startA)
	requireBool(t, "CY", f.CY, startCY)
}

func TestINRThenDCRPreservesValueAndCarry(t *testing.T) {
	for _, start := range []byte{0x00, 0x0F, 0x7F, 0x80, 0xFF} {
		for _, cy := range []bool{false, true} {
			var f Flags
			f.CY = cy
			r := f.inc8(start)
			r = f.dec8(r)
			requireEqual8(t, "round-trip value", r, start)
			requireBool(t, "CY preserved", f.CY, cy)
		}
	}
}

func TestCMPLeavesAUnchangedAndSetsZAndCYCorrectly(t *testing.T) {
	cases := []struct{ a, v byte }{
		{0x10, 0x10}, {0x20, 0x10}, {0x10, 0x20}, {0x00, 0x01}, {0xFF, 0x00},
	}
	for _, tc := range cases {
		rig := newTestRig()
		rig.cpu.A = tc.a
		rig.load(0, []byte{0xFE, tc.v}) // CPI v

		rig.cpu.Step()

		requireEqual8(t, "A", rig.cpu.A, tc.a)
		requireBool(t, "Z", rig.cpu.Z, tc.a == tc.v)
		requireBool(t, "CY", rig.cpu.CY, tc.a < tc.v)
	}
}

func TestDAAAfterBCDAddition(t *testing.T) {
	// 0x29 + 0x18 in packed BCD = 47; binary sum is 0x41 with no carry out
	// of bit 7 but a half carry (9+8 in the low nibble sets AC).
	var f Flags
	sum := f.add8(0x29, 0x18, 0)
	result := f.daa(sum)
	requireEqual8(t, "result", result, 0x47)
	requireBool(t, "CY", f.CY, false)

	// A BCD add that overflows a decimal digit: 0x99 + 0x01 = 0x00 carry 1,
	// representing decimal 99+1=100.
	var f2 Flags
	sum2 := f2.add8(0x99, 0x01, 0)
	result2 := f2.daa(sum2)
	requireEqual8(t, "result", result2, 0x00)
	requireBool(t, "CY", f2.CY, true)
}

func TestANASetsACFromOredOperandsAndClearsCY(t *testing.T) {
	var f Flags
	f.CY = true
	result := f.and8(0x0F, 0x08)
	requireEqual8(t, "result", result, 0x08)
	requireBool(t, "AC", f.AC, true)
	requireBool(t, "CY", f.CY, false)
}

func TestORAAndXRAClearAC(t *testing.T) {
	var f Flags
	f.AC = true
	f.orXor8(0x0F, 0x08, false)
	requireBool(t, "AC after ORA", f.AC, false)

	f.AC = true
	f.orXor8(0x0F, 0x08, true)
	requireBool(t, "AC after XRA", f.AC, false)
}
