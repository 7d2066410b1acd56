package container

import (
	"encoding/binary"

	"github.com/mmoretti/exifcore/internal/detect"
	"github.com/mmoretti/exifcore/internal/xerrors"
)

// ExtractQuickTimeSegments walks ISO-BMFF/QuickTime atoms (size|type|payload)
// looking for embedded EXIF item data under meta/ilst, descending into
// meta -> iloc/ilst boxes which is where HEIF/HEIC route their Exif item.
// Traversal stops the instant an "mdat" atom is reached: metadata atoms
// always precede media data in a conforming file, and mdat can be enormous.
func ExtractQuickTimeSegments(data []byte) ([]Segment, error) {
	if len(data) < 12 {
		return nil, xerrors.ErrBadMagic
	}
	var segments []Segment
	ok := walkAtoms(data, 0, &segments)
	if !ok && len(segments) == 0 {
		return nil, xerrors.ErrBadMagic
	}
	return segments, nil
}

// walkAtoms returns false if it never found a recognizable atom at all
// (meaning the bytes are not actually an ISO-BMFF file).
func walkAtoms(data []byte, depth int, out *[]Segment) bool {
	if depth > 16 {
		return true // recursion guard; treat as benign truncation
	}
	pos := 0
	found := false
	for pos+8 <= len(data) {
		size := int(binary.BigEndian.Uint32(data[pos : pos+4]))
		atype := string(data[pos+4 : pos+8])
		headerLen := 8
		if size == 1 {
			if pos+16 > len(data) {
				break
			}
			size = int(binary.BigEndian.Uint64(data[pos+8 : pos+16]))
			headerLen = 16
		}
		if size < headerLen || pos+size > len(data) {
			break
		}
		found = true
		payload := data[pos+headerLen : pos+size]

		switch atype {
		case "mdat":
			return found
		case "meta":
			// meta boxes carry a 4-byte version/flags field before children.
			if len(payload) > 4 {
				walkAtoms(payload[4:], depth+1, out)
			}
		case "moov", "udta", "ilst", "iloc":
			walkAtoms(payload, depth+1, out)
		case "Exif", "exif":
			*out = append(*out, Segment{Bytes: payload, OffsetInFile: int64(pos + headerLen), SourceFormat: detect.QuickTime, Kind: KindEXIF})
		case "XMP_", "xmp ":
			*out = append(*out, Segment{Bytes: payload, OffsetInFile: int64(pos + headerLen), SourceFormat: detect.QuickTime, Kind: KindXMP})
		}

		pos += size
	}
	return found
}
