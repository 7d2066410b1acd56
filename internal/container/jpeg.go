package container

import (
	"bytes"

	"github.com/mmoretti/exifcore/internal/detect"
	"github.com/mmoretti/exifcore/internal/xerrors"
)

const (
	markerSOI  = 0xFFD8
	markerSOS  = 0xFFDA
	markerEOI  = 0xFFD9
	app1Marker = 0xFFE1
	app2Marker = 0xFFE2
	app13Marker = 0xFFED
)

var exifSig = []byte("Exif\x00\x00")
var xmpSig = []byte("http://ns.adobe.com/xap/1.0/\x00")
var mpfSig = []byte("MPF\x00")
var iptcSig = []byte("Photoshop 3.0\x00")

// ExtractJPEGSegments walks every APPn marker in a JPEG and returns every
// EXIF/XMP/MPF/IPTC segment found, not just the first — a file can carry
// several (e.g. EXIF plus MPF plus XMP). Extended-XMP continuation segments
// ("http://ns.adobe.com/xmp/extension/") are not recognized. Scanning
// stops at the first SOS (start-of-scan) marker: metadata never follows
// compressed scan data in a well-formed JPEG, so continuing would mean
// scanning possibly-megabytes of entropy-coded data for nothing.
func ExtractJPEGSegments(data []byte) ([]Segment, error) {
	if len(data) < 4 || data[0] != 0xFF || data[1] != 0xD8 {
		return nil, xerrors.ErrBadMagic
	}

	var segments []Segment
	pos := 2
	for pos+4 <= len(data) {
		if data[pos] != 0xFF {
			// Not a marker boundary; malformed segment framing. Stop
			// scanning rather than risk reading garbage as a length.
			break
		}
		marker := int(data[pos])<<8 | int(data[pos+1])
		if marker == markerSOS || marker == markerEOI {
			break
		}
		if marker == 0xFF01 || (marker >= 0xFFD0 && marker <= 0xFFD7) {
			// TEM and RSTn are standalone markers with no length field.
			pos += 2
			continue
		}
		// Every other segment (APPn, DQT, SOF, DHT, COM, ...) carries a
		// length and is skipped whole below unless it is a metadata APPn.

		if pos+4 > len(data) {
			break
		}
		length := int(data[pos+2])<<8 | int(data[pos+3])
		if length < 2 || pos+2+length > len(data) {
			break
		}
		payload := data[pos+4 : pos+2+length]

		switch {
		case marker == app1Marker && bytes.HasPrefix(payload, exifSig):
			segments = append(segments, Segment{
				Bytes:        payload[len(exifSig):],
				OffsetInFile: int64(pos + 4 + len(exifSig)),
				SourceFormat: detect.JPEG,
				Kind:         KindEXIF,
			})
		case marker == app1Marker && bytes.HasPrefix(payload, xmpSig):
			segments = append(segments, Segment{
				Bytes:        payload[len(xmpSig):],
				OffsetInFile: int64(pos + 4 + len(xmpSig)),
				SourceFormat: detect.JPEG,
				Kind:         KindXMP,
			})
		case marker == app2Marker && bytes.HasPrefix(payload, mpfSig):
			segments = append(segments, Segment{
				Bytes:        payload[len(mpfSig):],
				OffsetInFile: int64(pos + 4 + len(mpfSig)),
				SourceFormat: detect.JPEG,
				Kind:         KindMPF,
			})
		case marker == app13Marker && bytes.HasPrefix(payload, iptcSig):
			segments = append(segments, Segment{
				Bytes:        payload[len(iptcSig):],
				OffsetInFile: int64(pos + 4 + len(iptcSig)),
				SourceFormat: detect.JPEG,
				Kind:         KindIPTC,
			})
		}

		pos += 2 + length
	}
	return segments, nil
}
