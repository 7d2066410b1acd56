package value

import "testing"

func TestLooksNumeric(t *testing.T) {
	cases := map[string]bool{
		"123":        true,
		"-123":       true,
		"0.005":      true,
		"1.5e-10":    true,
		"007":        false, // leading zero, not single digit
		"0":          true,
		"":           false,
		"3.1.4":      false,
		"abc":        false,
		"123abc":     false,
	}
	for in, want := range cases {
		if got := LooksNumeric(in); got != want {
			t.Errorf("LooksNumeric(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestRationalSerialization(t *testing.T) {
	tests := []struct {
		num, den uint32
		want     string
	}{
		{1, 200, "0.005"},
		{5, 0, `"inf"`},
		{0, 0, `"undef"`},
	}
	for _, tc := range tests {
		v := NewRationalU(tc.num, tc.den)
		if got := v.SerializeJSON(); got != tc.want {
			t.Errorf("rational(%d,%d) = %s, want %s", tc.num, tc.den, got, tc.want)
		}
	}
}

func TestArithmeticPromotion(t *testing.T) {
	if got := Add(NewU16(2), NewU16(3)); got.Kind() != U32 {
		t.Errorf("unsigned+unsigned should widen to U32, got %v", got.Kind())
	}
	if got := Add(NewU16(2), NewF64(1.5)); got.Kind() != F64 {
		t.Errorf("mixing float should produce F64, got %v", got.Kind())
	}
	if got := Add(NewU16(2), NewI32(-1)); got.Kind() != I32 {
		t.Errorf("mixing signed should produce I32, got %v", got.Kind())
	}
}

func TestMapInsertionOrder(t *testing.T) {
	m := NewMap()
	m.Set("b", NewU8(1))
	m.Set("a", NewU8(2))
	keys := m.MapKeys()
	if len(keys) != 2 || keys[0] != "b" || keys[1] != "a" {
		t.Errorf("expected insertion order [b a], got %v", keys)
	}
}
