package compat

import (
	"strings"
	"testing"

	"github.com/mmoretti/exifcore/internal/value"
)

func TestParseFilterQualified(t *testing.T) {
	f := ParseFilter("EXIF:Make")
	if f.Kind != FilterQualified || f.Group != "EXIF" || f.Name != "Make" {
		t.Fatalf("got %+v", f)
	}
	if !f.Matches("EXIF", "Make") {
		t.Error("expected match")
	}
}

func TestParseFilterExclude(t *testing.T) {
	f := ParseFilter("-Make")
	if !f.Exclude || f.Kind != FilterBare {
		t.Fatalf("got %+v", f)
	}
}

func TestParseFilterRawSuffix(t *testing.T) {
	f := ParseFilter("Orientation#")
	if f.Raw != true || f.Kind != FilterBare || f.Name != "Orientation" {
		t.Fatalf("got %+v", f)
	}
	if !f.Matches("EXIF", "Orientation") {
		t.Error("expected match")
	}
}

func TestParseFilterGlob(t *testing.T) {
	f := ParseFilter("GPS*")
	if f.Kind != FilterGlob {
		t.Fatalf("got %+v", f)
	}
	if !f.Matches("GPS", "GPSLatitude") {
		t.Error("expected glob match")
	}
}

func TestParseFilterGroupAll(t *testing.T) {
	f := ParseFilter("EXIF:All")
	if f.Kind != FilterGroupAll {
		t.Fatalf("got %+v", f)
	}
	if !f.Matches("EXIF", "AnyTagAtAll") {
		t.Error("expected group-all match")
	}
}

func TestConvertForDisplayRespectsRawSuffix(t *testing.T) {
	v := value.NewU16(8)
	if got := ConvertForDisplay("Orientation", v, false); got != "Rotate 270 CW" {
		t.Errorf("converted: got %q", got)
	}
	if got := ConvertForDisplay("Orientation", v, true); got != "8" {
		t.Errorf("raw: got %q", got)
	}
}

func TestVersionStringsDifferInShape(t *testing.T) {
	if VersionString() == LongVersionString() {
		t.Fatal("expected -ver and --version to print different shapes")
	}
	if strings.Contains(VersionString(), programName) {
		t.Error("bare version string must not contain the program name")
	}
	if !strings.HasPrefix(LongVersionString(), programName+" ") {
		t.Errorf("got %q, want prefix %q", LongVersionString(), programName+" ")
	}
}

func TestIsIgnoredFlag(t *testing.T) {
	if !IsIgnoredFlag("-fast") {
		t.Error("expected -fast to be an ignored-but-accepted flag")
	}
	if IsIgnoredFlag("-bogus") {
		t.Error("did not expect -bogus to be recognized")
	}
}
