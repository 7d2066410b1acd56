package extract

import (
	"bytes"

	"github.com/mmoretti/exifcore/internal/detect"
	"github.com/mmoretti/exifcore/internal/hashengine"
)

// pixelRangesFor returns the byte ranges that carry actual pixel payload
// for formats simple enough to locate without a full decoder: JPEG (the
// compressed scan data between SOS and EOI) and PNG (the concatenation of
// every IDAT chunk's data, excluding length/type/CRC framing). Other
// formats report ok=false; hashing is skipped for them rather than
// guessing at a range that might include metadata.
func pixelRangesFor(format detect.FormatID, data []byte) ([]hashengine.ByteRange, bool) {
	switch format {
	case detect.JPEG:
		return jpegPixelRanges(data)
	case detect.PNG:
		return pngPixelRanges(data)
	default:
		return nil, false
	}
}

func jpegPixelRanges(data []byte) ([]hashengine.ByteRange, bool) {
	sos := bytes.Index(data, []byte{0xFF, 0xDA})
	if sos < 0 {
		return nil, false
	}
	// Skip the SOS marker's own header: 2 marker bytes + 2 length bytes +
	// length-2 header payload.
	if sos+4 > len(data) {
		return nil, false
	}
	segLen := int(data[sos+2])<<8 | int(data[sos+3])
	scanStart := sos + 2 + segLen
	eoi := bytes.LastIndex(data, []byte{0xFF, 0xD9})
	if eoi < 0 || eoi < scanStart {
		eoi = len(data)
	}
	return []hashengine.ByteRange{{Start: int64(scanStart), End: int64(eoi)}}, true
}

func pngPixelRanges(data []byte) ([]hashengine.ByteRange, bool) {
	const sigLen = 8
	if len(data) < sigLen {
		return nil, false
	}
	var ranges []hashengine.ByteRange
	pos := sigLen
	for pos+8 <= len(data) {
		length := int(data[pos])<<24 | int(data[pos+1])<<16 | int(data[pos+2])<<8 | int(data[pos+3])
		chunkType := string(data[pos+4 : pos+8])
		dataStart := pos + 8
		if dataStart+length+4 > len(data) {
			break
		}
		if chunkType == "IDAT" {
			ranges = append(ranges, hashengine.ByteRange{Start: int64(dataStart), End: int64(dataStart + length)})
		}
		pos = dataStart + length + 4
	}
	return ranges, len(ranges) > 0
}
