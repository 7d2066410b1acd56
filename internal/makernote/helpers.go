// Package makernote implements the MakerNote dispatcher of spec.md §4.C6:
// Make-tag-driven selection of a manufacturer parser, per-manufacturer
// offset-base handling, and the Nikon/Sony encryption-detection foundations.
package makernote

import (
	"encoding/binary"
	"strings"
	"unicode/utf16"
)

// extractor is a small TIFF-entry-value reader scoped to one MakerNote
// body, mirroring the shape of the generic IFD value extractor but kept
// local to this package the way the teacher kept a second copy of the same
// accessors in exif/valueextractor.go alongside dto.go's — MakerNote bodies
// have their own offset-base rules (internalBase) that don't fit the
// generic extractor's single TiffStart field.
type extractor struct {
	Data         []byte
	InternalBase int // base added to an entry's ValueOrOffset field
	Endian       binary.ByteOrder
}

type entry struct {
	Tag, Type    uint16
	Count        uint32
	ValueOrOffset uint32
	SelfOffset   int
}

func parseEntry(data []byte, offset int, endian binary.ByteOrder) entry {
	return entry{
		Tag:           endian.Uint16(data[offset : offset+2]),
		Type:          endian.Uint16(data[offset+2 : offset+4]),
		Count:         endian.Uint32(data[offset+4 : offset+8]),
		ValueOrOffset: endian.Uint32(data[offset+8 : offset+12]),
		SelfOffset:    offset,
	}
}

func (e *extractor) inBounds(off, n int) bool {
	return off >= 0 && n >= 0 && off+n <= len(e.Data)
}

func (e *extractor) getUint32(entryOffset int) uint32 {
	if !e.inBounds(entryOffset+8, 4) {
		return 0
	}
	return e.Endian.Uint32(e.Data[entryOffset+8 : entryOffset+12])
}

func (e *extractor) getUint16(entryOffset int) uint16 {
	if !e.inBounds(entryOffset+8, 2) {
		return 0
	}
	return e.Endian.Uint16(e.Data[entryOffset+8 : entryOffset+10])
}

func (e *extractor) getString(en entry, entryOffset int) string {
	var off, n int
	n = int(en.Count)
	if n <= 4 {
		off = entryOffset + 8
	} else {
		off = e.InternalBase + int(en.ValueOrOffset)
	}
	if !e.inBounds(off, n) {
		return ""
	}
	return strings.TrimRight(string(e.Data[off:off+n]), "\x00")
}

func (e *extractor) getByteArray(en entry) []byte {
	var off int
	n := int(en.Count)
	if n <= 4 {
		off = en.SelfOffset + 8
	} else {
		off = e.InternalBase + int(en.ValueOrOffset)
	}
	if !e.inBounds(off, n) {
		return nil
	}
	out := make([]byte, n)
	copy(out, e.Data[off:off+n])
	return out
}

func (e *extractor) getRational(off int, signed bool) float64 {
	if !e.inBounds(off, 8) {
		return 0
	}
	if signed {
		num := float64(int32(e.Endian.Uint32(e.Data[off : off+4])))
		den := float64(int32(e.Endian.Uint32(e.Data[off+4 : off+8])))
		if den == 0 {
			return 0
		}
		return num / den
	}
	num := float64(e.Endian.Uint32(e.Data[off : off+4]))
	den := float64(e.Endian.Uint32(e.Data[off+4 : off+8]))
	if den == 0 {
		return 0
	}
	return num / den
}

func (e *extractor) getRationalAt(en entry, nested int, signed bool) float64 {
	off := e.InternalBase + int(en.ValueOrOffset) + nested
	return e.getRational(off, signed)
}

func (e *extractor) getUint32Array(en entry, count int) []uint32 {
	off := e.InternalBase + int(en.ValueOrOffset)
	if !e.inBounds(off, count*4) {
		return nil
	}
	out := make([]uint32, count)
	for i := 0; i < count; i++ {
		out[i] = e.Endian.Uint32(e.Data[off+i*4 : off+i*4+4])
	}
	return out
}

func decodeUTF16LE(raw []byte) string {
	n := len(raw) / 2
	units := make([]uint16, n)
	for i := 0; i < n; i++ {
		units[i] = uint16(raw[i*2]) | uint16(raw[i*2+1])<<8
	}
	return strings.TrimRight(string(utf16.Decode(units)), "\x00")
}
