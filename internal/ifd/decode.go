package ifd

import (
	"strings"

	"golang.org/x/text/encoding/unicode"

	"github.com/mmoretti/exifcore/internal/bytesreader"
	"github.com/mmoretti/exifcore/internal/value"
)

// decodeValue interprets an already-typed-and-sized entry into a
// value.Value, resolving the inline-vs-offset discrimination from
// spec.md §4.C5 step 2: if size <= 4 the payload lives in the entry's own
// value_or_offset field, otherwise value_or_offset is an offset relative to
// tiffBase.
func decodeValue(r *bytesreader.Reader, tiffBase int, entry Entry, entryOffset, elemSize int) (value.Value, error) {
	total := elemSize * int(entry.Count)
	var base int
	if total <= 4 {
		base = entryOffset + 8
	} else {
		base = tiffBase + int(entry.ValueOrOffset)
	}

	if isXPTag(entry.Tag) {
		raw, err := r.Bytes(base, total)
		if err != nil {
			return value.Value{}, err
		}
		return value.NewString(DecodeUTF16LEWindowsTag(raw)), nil
	}

	switch entry.Type {
	case 2: // ASCII
		raw, err := r.Bytes(base, int(entry.Count))
		if err != nil {
			return value.Value{}, err
		}
		return value.NewString(strings.TrimRight(string(raw), "\x00")), nil

	case 1, 6: // BYTE, SBYTE
		if entry.Count == 1 {
			b, err := r.ReadU8(base)
			return value.NewU8(b), err
		}
		raw, err := r.Bytes(base, int(entry.Count))
		if err != nil {
			return value.Value{}, err
		}
		cp := make([]uint8, len(raw))
		copy(cp, raw)
		return value.NewArrayU8(cp), nil

	case 7: // UNDEFINED: raw bytes, reinterpreted downstream (MakerNote etc.)
		raw, err := r.Bytes(base, int(entry.Count))
		if err != nil {
			return value.Value{}, err
		}
		cp := make([]uint8, len(raw))
		copy(cp, raw)
		return value.NewBlob(cp), nil

	case 3: // SHORT
		if entry.Count == 1 {
			v, err := r.ReadU16(base)
			return value.NewU16(v), err
		}
		arr := make([]uint16, entry.Count)
		for i := range arr {
			v, err := r.ReadU16(base + i*2)
			if err != nil {
				return value.Value{}, err
			}
			arr[i] = v
		}
		return value.NewArrayU16(arr), nil

	case 8: // SSHORT
		if entry.Count == 1 {
			v, err := r.ReadI16(base)
			return value.NewI16(v), err
		}
		arr := make([]int16, entry.Count)
		for i := range arr {
			v, err := r.ReadI16(base + i*2)
			if err != nil {
				return value.Value{}, err
			}
			arr[i] = v
		}
		return value.NewArrayI16(arr), nil

	case 4, 13: // LONG, IFD
		if entry.Count == 1 {
			v, err := r.ReadU32(base)
			return value.NewU32(v), err
		}
		arr := make([]uint32, entry.Count)
		for i := range arr {
			v, err := r.ReadU32(base + i*4)
			if err != nil {
				return value.Value{}, err
			}
			arr[i] = v
		}
		return value.NewArrayU32(arr), nil

	case 9: // SLONG
		if entry.Count == 1 {
			v, err := r.ReadI32(base)
			return value.NewI32(v), err
		}
		arr := make([]int32, entry.Count)
		for i := range arr {
			v, err := r.ReadI32(base + i*4)
			if err != nil {
				return value.Value{}, err
			}
			arr[i] = v
		}
		return value.NewArrayI32(arr), nil

	case 11: // FLOAT
		if entry.Count == 1 {
			v, err := r.ReadF32(base)
			return value.NewF64(float64(v)), err
		}
		arr := make([]float64, entry.Count)
		for i := range arr {
			v, err := r.ReadF32(base + i*4)
			if err != nil {
				return value.Value{}, err
			}
			arr[i] = float64(v)
		}
		return value.NewArrayF64(arr), nil

	case 12: // DOUBLE
		if entry.Count == 1 {
			v, err := r.ReadF64(base)
			return value.NewF64(v), err
		}
		arr := make([]float64, entry.Count)
		for i := range arr {
			v, err := r.ReadF64(base + i*8)
			if err != nil {
				return value.Value{}, err
			}
			arr[i] = v
		}
		return value.NewArrayF64(arr), nil

	case 5: // RATIONAL (unsigned)
		if entry.Count == 1 {
			rat, err := r.ReadRationalU(base)
			return value.NewRationalU(rat.Num, rat.Den), err
		}
		arr := make([]value.RationalU, entry.Count)
		for i := range arr {
			rat, err := r.ReadRationalU(base + i*8)
			if err != nil {
				return value.Value{}, err
			}
			arr[i] = value.RationalU{Num: rat.Num, Den: rat.Den}
		}
		return value.NewArrayRationalU(arr), nil

	case 10: // SRATIONAL
		if entry.Count == 1 {
			rat, err := r.ReadRationalS(base)
			return value.NewRationalS(rat.Num, rat.Den), err
		}
		arr := make([]value.RationalS, entry.Count)
		for i := range arr {
			rat, err := r.ReadRationalS(base + i*8)
			if err != nil {
				return value.Value{}, err
			}
			arr[i] = value.RationalS{Num: rat.Num, Den: rat.Den}
		}
		return value.NewArrayRationalS(arr), nil

	case 16, 17, 18: // LONG8, SLONG8, IFD8 - read as 64-bit, surfaced as U64
		v, err := r.ReadU64(base)
		return value.NewU64(v), err

	default:
		raw, err := r.Bytes(base, total)
		if err != nil {
			return value.Value{}, err
		}
		cp := make([]uint8, len(raw))
		copy(cp, raw)
		return value.NewBlob(cp), nil
	}
}

// isXPTag reports whether tag is one of the Windows XP* string tags
// (XPTitle/XPComment/XPAuthor/XPKeywords/XPSubject), which EXIF stores as a
// BYTE/UNDEFINED array of UTF-16LE code units rather than ASCII, regardless
// of their declared TIFF type.
func isXPTag(tag uint16) bool {
	switch tag {
	case TagXPTitle, TagXPComment, TagXPAuthor, TagXPKeywords, TagXPSubject:
		return true
	default:
		return false
	}
}

// DecodeUTF16LEWindowsTag decodes the XP* Windows tags' raw UTF-16LE bytes
// using x/text's UTF-16 codec rather than a hand-rolled code-unit walk, so
// malformed surrogate pairs and BOM handling follow the same encoding
// package the rest of the ecosystem uses instead of a bespoke decode loop.
func DecodeUTF16LEWindowsTag(raw []byte) string {
	if len(raw) < 2 {
		return ""
	}
	decoded, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder().Bytes(raw)
	if err != nil {
		return ""
	}
	return strings.TrimRight(string(decoded), "\x00")
}
