package makernote

import (
	"encoding/binary"
	"strings"

	"github.com/mmoretti/exifcore/internal/value"
)

// MinoltaParser handles Type 2 ("MINOL\0" signature, IFD-structured) and
// flags Type 3 (binary, not IFD-structured — e.g. the older DiMAGE bodies)
// as an opaque blob rather than parsing its layout, per spec.md's Non-goal
// on implementing every obscure legacy format.
type MinoltaParser struct{}

const minoltaType2Signature = "MINOL\x00"

func (p *MinoltaParser) Matches(make string) bool {
	return strings.EqualFold(strings.TrimSpace(make), "Minolta") ||
		strings.EqualFold(strings.TrimSpace(make), "KONICA MINOLTA")
}

func (p *MinoltaParser) Parse(raw []byte, fileOffsetOfBody int, _ EncryptionKeys) (Result, error) {
	fields := map[string]value.Value{}

	if len(raw) >= 6 && string(raw[0:6]) == minoltaType2Signature {
		return p.parseType2(raw, fields)
	}

	// Type 3 binary layout: not IFD-structured, surfaced as an opaque blob.
	fields["MakerNotes:MinoltaMakerNoteFormat"] = value.NewString("Type3-binary-unparsed")
	fields["MakerNotes:MinoltaRawSize"] = value.NewU32(uint32(len(raw)))
	return Result{Manufacturer: "Minolta", Fields: fields}, nil
}

func (p *MinoltaParser) parseType2(raw []byte, fields map[string]value.Value) (Result, error) {
	const ifdStart = 8 // "MINOL\0" + 2 version bytes
	if ifdStart+2 > len(raw) {
		return Result{Manufacturer: "Minolta", Fields: fields}, errTooShort("Minolta", len(raw), ifdStart+2)
	}

	endian := binary.BigEndian
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
		case 0x0000: // MakerNoteVersion
			fields["MakerNotes:MinoltaMakerNoteVersion"] = value.NewString(e.getString(en, entryOffset))
		case 0x0001: // CameraSettingsOld
			fields["MakerNotes:MinoltaCameraSettingsOffset"] = value.NewU32(en.ValueOrOffset)
		}
	}

	fields["MakerNotes:MinoltaMakerNoteFormat"] = value.NewString("Type2-IFD")
	return Result{Manufacturer: "Minolta", Fields: fields}, nil
}
