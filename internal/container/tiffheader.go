package container

import (
	"encoding/binary"

	"github.com/mmoretti/exifcore/internal/xerrors"
)

// TiffHeader is the decoded byte-order + first-IFD-offset pair every TIFF-
// family container (bare TIFF/DNG, the EXIF payload inside a JPEG, and the
// raw variants) exposes to internal/ifd.
type TiffHeader struct {
	Endian        binary.ByteOrder
	FirstIFDOffset uint32
}

// LocateTIFFHeader probes offset 0 of data for "II*\x00"/"MM\x00*" and
// returns the endianness plus first-IFD offset. Works equally for a bare
// TIFF file and for the payload directly following an "Exif\x00\x00" APP1
// signature, since both begin with the same 8-byte header.
func LocateTIFFHeader(data []byte) (TiffHeader, error) {
	if len(data) < 8 {
		return TiffHeader{}, xerrors.ErrShortRead
	}
	var endian binary.ByteOrder
	switch {
	case data[0] == 'I' && data[1] == 'I' && data[2] == 0x2a && data[3] == 0x00:
		endian = binary.LittleEndian
	case data[0] == 'I' && data[1] == 'I' && data[2] == 0x55 && data[3] == 0x00:
		endian = binary.LittleEndian // Panasonic RW2 magic byte variant
	case data[0] == 'M' && data[1] == 'M' && data[2] == 0x00 && data[3] == 0x2a:
		endian = binary.BigEndian
	default:
		return TiffHeader{}, xerrors.ErrBadMagic
	}
	offset := endian.Uint32(data[4:8])
	return TiffHeader{Endian: endian, FirstIFDOffset: offset}, nil
}
