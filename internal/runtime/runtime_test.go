package runtime

import "testing"

func TestSprintfBasic(t *testing.T) {
	if got := Sprintf("%d/%d", int64(1), int64(200)); got != "1/200" {
		t.Errorf("got %q", got)
	}
	if got := Sprintf("%.1f mm", 35.0); got != "35.0 mm" {
		t.Errorf("got %q", got)
	}
}

func TestSprintfWithStringConcatRepeat(t *testing.T) {
	got := SprintfWithStringConcatRepeat("%s%s%s", "ab", 3)
	if got != "ababab" {
		t.Errorf("got %q", got)
	}
}

func TestSubstrNegativeOffset(t *testing.T) {
	if got := Substr("hello world", -5, 0, false); got != "world" {
		t.Errorf("got %q", got)
	}
}

func TestSubstrNegativeLength(t *testing.T) {
	if got := Substr("hello world", 0, -6, true); got != "hello" {
		t.Errorf("got %q", got)
	}
}

func TestIndexNotFound(t *testing.T) {
	if got := Index("abc", "z", 0, false); got != -1 {
		t.Errorf("expected -1, got %d", got)
	}
}

func TestTranslateExpandedRange(t *testing.T) {
	got := Translate("abcXYZ", "abc", "ABC")
	if got != "ABCXYZ" {
		t.Errorf("got %q", got)
	}
}

func TestUnpackBinaryMixed(t *testing.T) {
	data := []byte{0x00, 0x01, 'h', 'i', ' ', ' '}
	out, err := UnpackBinary("nA4", data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 || out[0] != uint32(1) || out[1] != "hi" {
		t.Errorf("got %v", out)
	}
}

func TestSafeDivisionByZero(t *testing.T) {
	if got := SafeDivision(5, 0); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
}
