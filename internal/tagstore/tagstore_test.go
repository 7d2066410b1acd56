package tagstore

import (
	"testing"

	"github.com/mmoretti/exifcore/internal/value"
)

func TestFirstWriterWins(t *testing.T) {
	s := New()
	s.Insert("EXIF", "ISO", value.NewU32(100), false)
	s.Insert("EXIF", "ISO", value.NewU32(200), false)
	v, _ := s.Get("EXIF", "ISO")
	got, _ := v.AsU32()
	if got != 100 {
		t.Errorf("expected first-writer-wins value 100, got %d", got)
	}
}

func TestOverridableWrite(t *testing.T) {
	s := New()
	s.Insert("EXIF", "ISO", value.NewU32(100), true)
	s.Insert("EXIF", "ISO", value.NewU32(200), true)
	v, _ := s.Get("EXIF", "ISO")
	got, _ := v.AsU32()
	if got != 200 {
		t.Errorf("expected override to win, got %d", got)
	}
}

func TestInsertionOrderPreserved(t *testing.T) {
	s := New()
	s.Insert("EXIF", "Make", value.NewString("Canon"), false)
	s.Insert("EXIF", "Model", value.NewString("X"), false)
	keys := s.Keys()
	if len(keys) != 2 || keys[0] != "EXIF:Make" || keys[1] != "EXIF:Model" {
		t.Errorf("unexpected key order: %v", keys)
	}
}

func TestFormatExposureTime(t *testing.T) {
	if got := FormatExposureTime(1, 200); got != "1/200" {
		t.Errorf("got %q", got)
	}
	if got := FormatExposureTime(2, 1); got != "2s" {
		t.Errorf("got %q", got)
	}
}
