package composite

import (
	"fmt"
	"math"

	"github.com/mmoretti/exifcore/internal/value"
)

// Builtin returns the composite definitions this implementation resolves
// out of the box: the handful of composites common enough across file
// formats to ground directly (GPS, image dimensions), the same set the
// teacher's dto.go assembled by hand before a generic composite resolver
// existed.
func Builtin() []Definition {
	return []Definition{
		{
			Group:    "Composite",
			Name:     "GPSLatitude",
			Required: []string{"GPS:GPSLatitude", "GPS:GPSLatitudeRef"},
			Compute: func(in map[string]value.Value) (value.Value, bool) {
				deg, ok := in["GPS:GPSLatitude"].AsF64()
				if !ok {
					return value.Value{}, false
				}
				if in["GPS:GPSLatitudeRef"].String() == "S" {
					deg = -deg
				}
				return value.NewF64(deg), true
			},
		},
		{
			Group:    "Composite",
			Name:     "GPSLongitude",
			Required: []string{"GPS:GPSLongitude", "GPS:GPSLongitudeRef"},
			Compute: func(in map[string]value.Value) (value.Value, bool) {
				deg, ok := in["GPS:GPSLongitude"].AsF64()
				if !ok {
					return value.Value{}, false
				}
				if in["GPS:GPSLongitudeRef"].String() == "W" {
					deg = -deg
				}
				return value.NewF64(deg), true
			},
		},
		{
			Group:    "Composite",
			Name:     "GPSPosition",
			Required: []string{"Composite:GPSLatitude", "Composite:GPSLongitude"},
			Compute: func(in map[string]value.Value) (value.Value, bool) {
				lat, _ := in["Composite:GPSLatitude"].AsF64()
				lon, _ := in["Composite:GPSLongitude"].AsF64()
				return value.NewString(fmt.Sprintf("%g %g", lat, lon)), true
			},
		},
		{
			Group:    "Composite",
			Name:     "ImageSize",
			Required: []string{"EXIF:ExifImageWidth", "EXIF:ExifImageHeight"},
			Compute: func(in map[string]value.Value) (value.Value, bool) {
				w, _ := in["EXIF:ExifImageWidth"].AsU32()
				h, _ := in["EXIF:ExifImageHeight"].AsU32()
				return value.NewString(fmt.Sprintf("%dx%d", w, h)), true
			},
		},
		// CircleOfConfusion: diagonal of the 35mm-equivalent frame (43.27mm)
		// divided by 1500 and by the scale factor to 35mm-equivalent focal
		// length, same constant exiftool's Composite.pm uses.
		{
			Group:    "Composite",
			Name:     "CircleOfConfusion",
			Required: []string{"Composite:ScaleFactor35efl"},
			Compute: func(in map[string]value.Value) (value.Value, bool) {
				scale, ok := in["Composite:ScaleFactor35efl"].AsF64()
				if !ok || scale == 0 {
					return value.Value{}, false
				}
				const diagonal35mm = 43.26661531
				return value.NewF64(diagonal35mm / 1500 / scale), true
			},
		},
		// HyperfocalDistance (metres): FocalLength^2/(FNumber*CircleOfConfusion)
		// plus FocalLength itself, both terms converted from mm to m. Depends
		// on the CircleOfConfusion composite resolved the pass before.
		{
			Group:    "Composite",
			Name:     "HyperfocalDistance",
			Required: []string{"EXIF:FocalLength", "EXIF:FNumber", "Composite:CircleOfConfusion"},
			Compute: func(in map[string]value.Value) (value.Value, bool) {
				focal, ok := in["EXIF:FocalLength"].AsF64()
				if !ok {
					return value.Value{}, false
				}
				fnum, ok := in["EXIF:FNumber"].AsF64()
				if !ok || fnum == 0 {
					return value.Value{}, false
				}
				coc, ok := in["Composite:CircleOfConfusion"].AsF64()
				if !ok || coc == 0 {
					return value.Value{}, false
				}
				mm := focal + math.Pow(focal, 2)/(fnum*coc)
				return value.NewF64(mm / 1000), true
			},
		},
	}
}
