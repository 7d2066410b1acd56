package tagstore

import (
	"fmt"
	"strings"
)

// PrintConv lookup tables for the small set of well-known EXIF tags this
// core hand-translates directly (the full reference-table corpus is a
// build-time code-generation concern handled by internal/emit + the AST
// pipeline for arbitrary expressions; these are the handful of fixed,
// closed-enum conversions common enough to ground directly, the same way
// the teacher repo hard-coded them before any AST pipeline existed).

func ParseOrientationValue(raw uint16) string {
	switch raw {
	case 1:
		return "Horizontal"
	case 2:
		return "Mirror horizontal"
	case 3:
		return "Rotate 180"
	case 4:
		return "Mirror vertical"
	case 5:
		return "Mirror horizontal and rotate 270 CW"
	case 6:
		return "Rotate 90 CW"
	case 7:
		return "Mirror horizontal and rotate 90 CW"
	case 8:
		return "Rotate 270 CW"
	default:
		return "Unknown"
	}
}

func ParseExposureProgram(raw uint16) string {
	switch raw {
	case 0:
		return "Not Defined"
	case 1:
		return "Manual"
	case 2:
		return "Program AE"
	case 3:
		return "Aperture-priority AE"
	case 4:
		return "Shutter speed priority AE"
	case 5:
		return "Creative (Slow speed)"
	case 6:
		return "Action (High speed)"
	case 7:
		return "Portrait"
	case 8:
		return "Landscape"
	case 9:
		return "Bulb"
	default:
		return "Unknown"
	}
}

func ParseComponentsConfiguration(components []uint8) string {
	var names []string
	for _, comp := range components {
		switch comp {
		case 0:
			names = append(names, "-")
		case 1:
			names = append(names, "Y")
		case 2:
			names = append(names, "Cb")
		case 3:
			names = append(names, "Cr")
		case 4:
			names = append(names, "R")
		case 5:
			names = append(names, "G")
		case 6:
			names = append(names, "B")
		default:
			names = append(names, "?")
		}
	}
	return strings.Join(names, "")
}

func ParseMeteringMode(raw uint16) string {
	switch raw {
	case 0:
		return "Unknown"
	case 1:
		return "Average"
	case 2:
		return "Center-weighted average"
	case 3:
		return "Spot"
	case 4:
		return "Multi-spot"
	case 5:
		return "Multi-segment"
	case 6:
		return "Partial"
	case 255:
		return "Other"
	default:
		return "Not Defined"
	}
}

func ParseLightSource(raw uint16) string {
	switch raw {
	case 0:
		return "Unknown"
	case 1:
		return "Daylight"
	case 2:
		return "Fluorescent"
	case 3:
		return "Tungsten (Incandescent)"
	case 4:
		return "Flash"
	case 9:
		return "Fine Weather"
	case 10:
		return "Cloudy"
	case 11:
		return "Shade"
	case 17:
		return "Standard Light A"
	case 18:
		return "Standard Light B"
	case 19:
		return "Standard Light C"
	case 20:
		return "D55"
	case 21:
		return "D65"
	case 22:
		return "D75"
	case 23:
		return "D50"
	case 24:
		return "ISO Studio Tungsten"
	case 255:
		return "Other"
	default:
		return "Not Defined"
	}
}

func ParseColourSpace(raw uint16) string {
	switch raw {
	case 0x1:
		return "sRGB"
	case 0x2:
		return "Adobe RGB"
	case 0xfffd:
		return "Wide Gamut RGB"
	case 0xfffe:
		return "ICC Profile"
	case 0xffff:
		return "Uncalibrated"
	default:
		return "None"
	}
}

func ParseFlashValue(raw uint16) string {
	switch raw {
	case 0x0:
		return "No Flash"
	case 0x1:
		return "Fired"
	case 0x5:
		return "Fired, Return not detected"
	case 0x7:
		return "Fired, Return detected"
	case 0x9:
		return "On, Fired"
	case 0x19:
		return "Auto, Fired"
	default:
		return "Unknown"
	}
}

func FormatExposureTime(num, den uint32) string {
	if den == 0 {
		return "Invalid"
	}
	if num >= den {
		seconds := float64(num) / float64(den)
		if seconds == float64(int(seconds)) {
			return fmt.Sprintf("%ds", int(seconds))
		}
		return fmt.Sprintf("%.1fs", seconds)
	}
	reciprocal := int((float64(den)/float64(num) + 0.5))
	return fmt.Sprintf("1/%d", reciprocal)
}

func ParseFileSource(raw uint8) string {
	switch raw {
	case 0x1:
		return "Film Scanner (Transparent Scanner)"
	case 0x2:
		return "Film Scanner (Reflection Print Scanner)"
	case 0x3:
		return "Digital Camera"
	default:
		return "Unknown"
	}
}

func ParseSceneType(raw uint16) string {
	switch raw {
	case 0:
		return "Standard"
	case 1:
		return "Landscape"
	case 2:
		return "Portrait"
	case 3:
		return "Night"
	default:
		return "Other"
	}
}

func ParseProcessing(raw uint16) string {
	switch raw {
	case 0:
		return "Normal"
	case 1:
		return "Low"
	case 2:
		return "High"
	default:
		return "Unknown or not set"
	}
}

func ParseSubjectDistanceRange(raw uint16) string {
	switch raw {
	case 0:
		return "Unknown"
	case 1:
		return "Macro"
	case 2:
		return "Close"
	case 3:
		return "Distant"
	default:
		return "Not defined"
	}
}

func ParseCompositeImage(raw uint16) string {
	switch raw {
	case 0:
		return "Unknown"
	case 1:
		return "Not a Composite Image"
	case 2:
		return "General Composite Image"
	case 3:
		return "Composite Image Captured While Shooting"
	default:
		return "Not defined"
	}
}
