package container

import (
	"encoding/binary"

	"github.com/mmoretti/exifcore/internal/detect"
	"github.com/mmoretti/exifcore/internal/xerrors"
)

// maxRIFFScan/maxAVIScan bound the container-parser workload per
// spec.md §5 ("maximum bytes scanned in container parsers: 100 MB for RIFF,
// 500 MB for AVI") to avoid pathological inputs driving unbounded work.
const (
	maxRIFFScan = 100 * 1024 * 1024
	maxAVIScan  = 500 * 1024 * 1024
)

// ExtractRIFFSegments walks fourcc|size|payload chunks in a RIFF container
// (WebP, AVI). AVI nests chunks inside LIST groups, so a LIST payload whose
// form type isn't a recognized leaf is itself walked recursively.
func ExtractRIFFSegments(data []byte) ([]Segment, error) {
	if len(data) < 12 || string(data[0:4]) != "RIFF" {
		return nil, xerrors.ErrBadMagic
	}
	form := string(data[8:12])

	limit := maxRIFFScan
	fmtID := detect.WEBP
	if form == "AVI " {
		limit = maxAVIScan
		fmtID = detect.AVI
	}
	if len(data) > limit {
		data = data[:limit]
	}

	var segments []Segment
	walkRIFFChunks(data, 12, fmtID, &segments)
	return segments, nil
}

func walkRIFFChunks(data []byte, pos int, fmtID detect.FormatID, out *[]Segment) {
	for pos+8 <= len(data) {
		fourcc := string(data[pos : pos+4])
		size := binary.LittleEndian.Uint32(data[pos+4 : pos+8])
		payloadStart := pos + 8
		payloadEnd := payloadStart + int(size)
		if payloadEnd > len(data) || payloadEnd < payloadStart {
			return
		}
		payload := data[payloadStart:payloadEnd]

		switch fourcc {
		case "LIST":
			if len(payload) >= 4 {
				walkRIFFChunks(payload, 4, fmtID, out)
			}
		case "EXIF":
			*out = append(*out, Segment{Bytes: payload, OffsetInFile: int64(payloadStart), SourceFormat: fmtID, Kind: KindEXIF})
		case "XMP ":
			*out = append(*out, Segment{Bytes: payload, OffsetInFile: int64(payloadStart), SourceFormat: fmtID, Kind: KindXMP})
		}

		pos = payloadEnd
		if size%2 == 1 {
			pos++ // RIFF chunks are word-aligned; skip the pad byte
		}
	}
}
