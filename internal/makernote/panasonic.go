package makernote

import (
	"encoding/binary"
	"strings"

	"github.com/mmoretti/exifcore/internal/value"
)

// PanasonicParser strips the "Panasonic\0\0\0" 12-byte signature and reads
// the IFD that follows at +12, offsets relative to the MakerNote start.
type PanasonicParser struct{}

const panasonicSignature = "Panasonic\x00\x00\x00"

func (p *PanasonicParser) Matches(make string) bool {
	return strings.EqualFold(strings.TrimSpace(make), "Panasonic")
}

func (p *PanasonicParser) Parse(raw []byte, fileOffsetOfBody int, _ EncryptionKeys) (Result, error) {
	fields := map[string]value.Value{}
	if len(raw) < 12 || string(raw[0:12]) != panasonicSignature {
		return Result{Manufacturer: "Panasonic", Fields: fields}, errTooShort("Panasonic", len(raw), 12)
	}

	const ifdStart = 12
	if ifdStart+2 > len(raw) {
		return Result{Manufacturer: "Panasonic", Fields: fields}, errTooShort("Panasonic", len(raw), ifdStart+2)
	}

	endian := binary.LittleEndian
	entryCount := int(endian.Uint16(raw[ifdStart : ifdStart+2]))
	entriesStart := ifdStart + 2
	if entriesStart+entryCount*12 > len(raw) {
		entryCount = maxInt((len(raw)-entriesStart)/12, 0)
	}

	e := &extractor{Data: raw, InternalBase: 0, Endian: endian}
	for j := 0; j < entryCount; j++ {
		entryOffset := entriesStart + j*12
		en := parseEntry(raw, entryOffset, endian)
		switch en.Tag {
		case 0x0001: // Quality
			fields["MakerNotes:PanasonicQuality"] = value.NewU16(e.getUint16(entryOffset))
		case 0x0002: // FirmwareVersion
			fields["MakerNotes:PanasonicFirmwareVersion"] = value.NewString(e.getString(en, entryOffset))
		case 0x0003: // WhiteBalance
			fields["MakerNotes:PanasonicWhiteBalance"] = value.NewU16(e.getUint16(entryOffset))
		case 0x0007: // FocusMode
			fields["MakerNotes:PanasonicFocusMode"] = value.NewU16(e.getUint16(entryOffset))
		case 0x001c: // Contrast
			fields["MakerNotes:PanasonicContrast"] = value.NewU16(e.getUint16(entryOffset))
		case 0x0025: // InternalSerialNumber
			fields["MakerNotes:PanasonicInternalSerialNumber"] = value.NewString(e.getString(en, entryOffset))
		}
	}

	return Result{Manufacturer: "Panasonic", Fields: fields}, nil
}
