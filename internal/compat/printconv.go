package compat

import (
	"github.com/mmoretti/exifcore/internal/tagstore"
	"github.com/mmoretti/exifcore/internal/value"
)

// printConvByName dispatches the handful of closed-enum PrintConv tables
// internal/tagstore/convtables.go defines, keyed by bare tag name. This is
// the default (non-"#") emission path: a tag with an entry here prints its
// converted string unless the caller's filter requested the raw form.
var printConvByName = map[string]func(uint16) string{
	"Orientation":          tagstore.ParseOrientationValue,
	"ExposureProgram":      tagstore.ParseExposureProgram,
	"MeteringMode":         tagstore.ParseMeteringMode,
	"LightSource":          tagstore.ParseLightSource,
	"ColorSpace":           tagstore.ParseColourSpace,
	"Flash":                tagstore.ParseFlashValue,
	"SceneType":            tagstore.ParseSceneType,
	"Processing":           tagstore.ParseProcessing,
	"SubjectDistanceRange": tagstore.ParseSubjectDistanceRange,
	"CompositeImage":       tagstore.ParseCompositeImage,
}

// ConvertForDisplay renders v the way the CLI should print it by default:
// converted through the matching PrintConv table when one exists and v
// holds a plain numeric value, else v's JSON-numeric/string serialization
// (spec.md §4.C2). raw forces the unconverted form even when a PrintConv
// table matches, for the trailing-"#" filter suffix — e.g. "-Orientation#"
// yields the bare JSON number 8 instead of the PrintConv string.
func ConvertForDisplay(name string, v value.Value, raw bool) string {
	if !raw {
		if conv, ok := printConvByName[name]; ok {
			if n, ok := v.AsU32(); ok {
				return conv(uint16(n))
			}
		}
	}
	return v.SerializeJSON()
}
