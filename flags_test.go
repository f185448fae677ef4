// flags_test.go - PSW pack/unpack format

package i8080

import "testing"

func TestFlagsPackSetsReservedBits(t *testing.T) {
	f := Flags{S: false, Z: false, AC: false, P: false, CY: false}
	packed := f.pack()
	requireEqual8(t, "packed", packed, 0x02) // only reserved bit 1 set
}

func TestFlagsPackAllSet(t *testing.T) {
	f := Flags{S: true, Z: true, AC: true, P: true, CY: true}
	packed := f.pack()
	// bit7 S, bit6 Z, bit5 0, bit4 AC, bit3 0, bit2 P, bit1 1, bit0 CY
	requireEqual8(t, "packed", packed, 0xD7)
}

func TestFlagsUnpackIgnoresReservedBits(t *testing.T) {
	var f Flags
	f.unpack(0xFF) // every bit set, including reserved 3 and 5
	requireBool(t, "S", f.S, true)
	requireBool(t, "Z", f.Z, true)
	requireBool(t, "AC", f.AC, true)
	requireBool(t, "P", f.P, true)
	requireBool(t, "CY", f.CY, true)
}

func TestFlagsPackUnpackRoundTrip(t *testing.T) {
	want := Flags{S: true, Z: false, AC: true, P: false, CY: true}
	var got Flags
	got.unpack(want.pack())
	if got != want {
		t.Fatalf("round trip = %+v, want %+v", got, want)
	}
}
