package container

import (
	"encoding/binary"

	"github.com/mmoretti/exifcore/internal/detect"
	"github.com/mmoretti/exifcore/internal/xerrors"
)

var pngSig = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// ExtractPNGSegments walks length|type|data|crc chunks, collecting eXIf and
// tEXt/zTXt/iTXt (the latter three are returned as raw bytes under
// KindIPTC-adjacent handling is out of scope; PNG has no native IPTC chunk,
// so only eXIf is surfaced as KindEXIF and XMP text chunks as KindXMP).
// Stops at IDAT: metadata always precedes image data in a conforming PNG.
func ExtractPNGSegments(data []byte) ([]Segment, error) {
	if len(data) < 8 || string(data[:8]) != string(pngSig) {
		return nil, xerrors.ErrBadMagic
	}

	var segments []Segment
	pos := 8
	for pos+8 <= len(data) {
		length := binary.BigEndian.Uint32(data[pos : pos+4])
		ctype := string(data[pos+4 : pos+8])
		dataStart := pos + 8
		dataEnd := dataStart + int(length)
		if dataEnd+4 > len(data) || dataEnd < dataStart {
			break
		}
		chunk := data[dataStart:dataEnd]

		switch ctype {
		case "IDAT":
			return segments, nil
		case "eXIf":
			segments = append(segments, Segment{
				Bytes:        chunk,
				OffsetInFile: int64(dataStart),
				SourceFormat: detect.PNG,
				Kind:         KindEXIF,
			})
		case "iTXt", "tEXt", "zTXt":
			if looksLikeXMPKeyword(chunk) {
				segments = append(segments, Segment{
					Bytes:        chunk,
					OffsetInFile: int64(dataStart),
					SourceFormat: detect.PNG,
					Kind:         KindXMP,
				})
			}
		}

		pos = dataEnd + 4 // skip CRC
	}
	return segments, nil
}

func looksLikeXMPKeyword(chunk []byte) bool {
	const keyword = "XML:com.adobe.xmp"
	if len(chunk) < len(keyword) {
		return false
	}
	return string(chunk[:len(keyword)]) == keyword
}
