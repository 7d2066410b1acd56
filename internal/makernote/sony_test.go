package makernote

import "testing"

func TestDecipherTableFormula(t *testing.T) {
	cases := []struct{ b, want byte }{
		{0, 0},
		{1, 1},
		{2, byte((2 * 2 * 2) % 249)},
		{249, 249},
		{255, 255},
	}
	for _, tc := range cases {
		if got := decipherTable[tc.b]; got != tc.want {
			t.Errorf("decipherTable[%d] = %d, want %d", tc.b, got, tc.want)
		}
	}
}

func TestDetectDoubleCipherThreshold(t *testing.T) {
	allHigh := make([]byte, 16)
	for i := range allHigh {
		allHigh[i] = 0xFF
	}
	if !detectDoubleCipher(allHigh) {
		t.Error("expected double cipher detected for all-high-byte input")
	}

	allLow := make([]byte, 16)
	for i := range allLow {
		allLow[i] = 0x10
	}
	if detectDoubleCipher(allLow) {
		t.Error("expected single-pass for mostly-low-byte input")
	}
}

func TestIsEncipheredTagRanges(t *testing.T) {
	if !isEncipheredTag(0x2010) {
		t.Error("0x2010 should be enciphered")
	}
	if !isEncipheredTag(0x9050) {
		t.Error("0x9050 should be enciphered")
	}
	if isEncipheredTag(0x0010) {
		t.Error("0x0010 should not be enciphered")
	}
}
