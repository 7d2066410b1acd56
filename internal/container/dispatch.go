package container

import (
	"github.com/mmoretti/exifcore/internal/detect"
	"github.com/mmoretti/exifcore/internal/xerrors"
)

// ExtractSegments routes to the format-specific walker based on the
// detected FormatID. TIFF-family formats (including the raw variants)
// return a single synthetic EXIF segment spanning the whole file, since
// their "segment" IS the TIFF structure itself rather than a sub-range.
func ExtractSegments(format detect.FormatID, data []byte) ([]Segment, error) {
	switch format {
	case detect.JPEG:
		return ExtractJPEGSegments(data)
	case detect.PNG:
		return ExtractPNGSegments(data)
	case detect.WEBP, detect.AVI:
		return ExtractRIFFSegments(data)
	case detect.QuickTime:
		return ExtractQuickTimeSegments(data)
	case detect.TIFF, detect.CR2, detect.CR3, detect.NEF, detect.ARW, detect.RW2, detect.ORF, detect.RAF, detect.PEF:
		return []Segment{{Bytes: data, OffsetInFile: 0, SourceFormat: format, Kind: KindEXIF}}, nil
	default:
		return nil, xerrors.ErrUnsupported
	}
}
