package composite

import (
	"testing"

	"github.com/mmoretti/exifcore/internal/tagstore"
	"github.com/mmoretti/exifcore/internal/value"
)

func TestResolveChainsDependentComposites(t *testing.T) {
	store := tagstore.New()
	store.Insert("GPS", "GPSLatitude", value.NewF64(37.5), false)
	store.Insert("GPS", "GPSLatitudeRef", value.NewString("N"), false)
	store.Insert("GPS", "GPSLongitude", value.NewF64(122.2), false)
	store.Insert("GPS", "GPSLongitudeRef", value.NewString("W"), false)

	Resolve(store, Builtin())

	pos, ok := store.Get("Composite", "GPSPosition")
	if !ok {
		t.Fatal("expected GPSPosition to resolve via chained composites")
	}
	if pos.String() != "37.5 -122.2" {
		t.Errorf("got %q", pos.String())
	}
}

func TestResolveChainsCircleOfConfusionIntoHyperfocalDistance(t *testing.T) {
	store := tagstore.New()
	store.Insert("EXIF", "FocalLength", value.NewF64(50), false)
	store.Insert("EXIF", "FNumber", value.NewF64(2.8), false)
	store.Insert("Composite", "ScaleFactor35efl", value.NewF64(1.6), false)

	Resolve(store, Builtin())

	if !store.Has("Composite", "CircleOfConfusion") {
		t.Fatal("expected CircleOfConfusion to resolve from ScaleFactor35efl")
	}
	if !store.Has("Composite", "HyperfocalDistance") {
		t.Fatal("expected HyperfocalDistance to resolve from FocalLength/FNumber/CircleOfConfusion")
	}
}

func TestResolveSkipsMissingRequiredInputs(t *testing.T) {
	store := tagstore.New()
	Resolve(store, Builtin())
	if store.Has("Composite", "GPSPosition") {
		t.Error("expected GPSPosition to stay unresolved without inputs")
	}
}
