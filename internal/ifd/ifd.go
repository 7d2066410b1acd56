// Package ifd implements the TIFF Image File Directory parser (spec.md
// §4.C5): entry-count and 12-byte entry decoding, value-vs-offset
// discrimination, sub-IFD recursion (ExifIFD/GPSIFD/InteropIFD), IFD
// chaining, and cycle protection. MakerNote dispatch itself lives in
// internal/makernote to avoid a package cycle; this package only captures
// the MakerNote's raw bytes and offset so the caller can hand them to the
// dispatcher together with the Make tag (0x010F) it reads from IFD0.
package ifd

import (
	"strings"

	"github.com/mmoretti/exifcore/internal/bytesreader"
	"github.com/mmoretti/exifcore/internal/value"
	"github.com/mmoretti/exifcore/internal/xerrors"
)

// Sub-IFD tag IDs recursed into automatically.
const (
	TagExifIFD    = 0x8769
	TagGPSIFD     = 0x8825
	TagInteropIFD = 0xA005
	TagMakerNote  = 0x927C
	TagMake       = 0x010F
)

// Windows XP* string tags: stored as UTF-16LE code units regardless of
// their declared TIFF type (see decode.go's isXPTag/DecodeUTF16LEWindowsTag).
const (
	TagXPTitle    = 0x9C9B
	TagXPComment  = 0x9C9C
	TagXPAuthor   = 0x9C9D
	TagXPKeywords = 0x9C9E
	TagXPSubject  = 0x9C9F
)

const (
	maxEntryCount  = 1000
	maxChainDepth  = 10
)

// Entry is the decoded (tag, type, count, value_or_offset) quadruple.
type Entry struct {
	Tag           uint16
	Type          uint16
	Count         uint32
	ValueOrOffset uint32
	SelfOffset    int // offset of this 12-byte entry within the reader's data
}

// typeSize returns the per-element byte size for a TIFF type, and false for
// an out-of-range type (caller logs and skips the entry).
func typeSize(t uint16) (int, bool) {
	switch t {
	case 1, 2, 6, 7: // BYTE, ASCII, SBYTE, UNDEFINED
		return 1, true
	case 3, 8: // SHORT, SSHORT
		return 2, true
	case 4, 9, 11, 13: // LONG, SLONG, FLOAT, IFD
		return 4, true
	case 5, 10, 12, 16, 17, 18: // RATIONAL, SRATIONAL, DOUBLE, LONG8, SLONG8, IFD8
		return 8, true
	default:
		return 0, false
	}
}

// ParsedIFD is one decoded directory: its tag->value map in first-seen
// order, recursed sub-IFDs keyed by the sub-IFD tag that pointed to them,
// and whatever follows (next IFD offset, captured MakerNote raw bytes).
type ParsedIFD struct {
	Tags         map[uint16]value.Value
	Order        []uint16
	SubIFDs      map[uint16]*ParsedIFD
	MakerNote    *MakerNoteCapture
	NextOffset   uint32
	Errors       []error
}

// MakerNoteCapture is everything internal/makernote needs to dispatch: the
// raw entry body, where it starts in the shared byte slice (base for
// internal offsets uses this), and the entry itself. It does not carry the
// Make string: the caller looks Make up in IFD0.
type MakerNoteCapture struct {
	Raw            []byte
	BodyOffset     int // offset within the shared data slice
	Entry          Entry
}

func newParsedIFD() *ParsedIFD {
	return &ParsedIFD{Tags: map[uint16]value.Value{}, SubIFDs: map[uint16]*ParsedIFD{}}
}

// Options tunes parsing depth/size limits per spec.md §5's resource model.
type Options struct {
	MetadataOnly      bool // skip value arrays larger than MaxInlineValueSize
	MaxInlineValueSize int
}

func DefaultOptions() Options { return Options{MetadataOnly: false, MaxInlineValueSize: 65536} }

// Parse decodes the single IFD at ifdOffset (an absolute offset into r's
// data) plus its declared sub-IFDs. It does not follow NextOffset; it only
// records it. Use ParseChain for the top-level entry point, which follows
// the IFD0/IFD1/... chain.
func Parse(r *bytesreader.Reader, tiffBase, ifdOffset int, visited map[int]bool, depth int, opts Options) (*ParsedIFD, error) {
	if depth > maxChainDepth {
		return nil, xerrors.ErrCycle
	}
	if visited[ifdOffset] {
		return nil, xerrors.ErrCycle
	}
	visited[ifdOffset] = true

	out := newParsedIFD()

	count, err := r.ReadU16(ifdOffset)
	if err != nil {
		return nil, xerrors.New(xerrors.KindTruncation, "ifd", int64(ifdOffset), err)
	}
	if int(count) > maxEntryCount {
		return nil, xerrors.New(xerrors.KindStructural, "ifd", int64(ifdOffset), xerrors.ErrEntryCountLimit)
	}

	var makeStr string
	for i := 0; i < int(count); i++ {
		entryOffset := ifdOffset + 2 + i*12
		entry, decodeErr := decodeEntry(r, entryOffset)
		if decodeErr != nil {
			out.Errors = append(out.Errors, xerrors.New(xerrors.KindTruncation, "ifd-entry", int64(entryOffset), decodeErr))
			continue
		}

		size, ok := typeSize(entry.Type)
		if !ok {
			out.Errors = append(out.Errors, xerrors.New(xerrors.KindStructural, "ifd-entry", int64(entryOffset), xerrors.ErrUnsupported))
			continue
		}
		totalSize := size * int(entry.Count)

		switch entry.Tag {
		case TagExifIFD, TagGPSIFD, TagInteropIFD:
			sub, subErr := Parse(r, tiffBase, tiffBase+int(entry.ValueOrOffset), visited, depth+1, opts)
			if subErr != nil {
				out.Errors = append(out.Errors, subErr)
				continue
			}
			out.SubIFDs[entry.Tag] = sub
			continue
		case TagMakerNote:
			bodyOffset := tiffBase + int(entry.ValueOrOffset)
			raw, berr := r.Bytes(bodyOffset, totalSize)
			if berr != nil {
				out.Errors = append(out.Errors, xerrors.New(xerrors.KindTruncation, "makernote", int64(bodyOffset), berr))
				continue
			}
			out.MakerNote = &MakerNoteCapture{Raw: raw, BodyOffset: bodyOffset, Entry: entry}
			continue
		}

		if opts.MetadataOnly && totalSize > opts.MaxInlineValueSize {
			out.Errors = append(out.Errors, xerrors.New(xerrors.KindUnsupported, "ifd-entry", int64(entryOffset), xerrors.ErrUnsupported))
			continue
		}

		val, decodeErr := decodeValue(r, tiffBase, entry, entryOffset, size)
		if decodeErr != nil {
			out.Errors = append(out.Errors, xerrors.New(xerrors.KindTruncation, "ifd-value", int64(entryOffset), decodeErr))
			continue
		}

		if _, exists := out.Tags[entry.Tag]; !exists {
			out.Order = append(out.Order, entry.Tag)
		}
		out.Tags[entry.Tag] = val

		if entry.Tag == TagMake {
			if s, ok := val.AsString(); ok {
				makeStr = strings.TrimSpace(s)
				_ = makeStr
			}
		}
	}

	nextOffset, err := r.ReadU32(ifdOffset + 2 + int(count)*12)
	if err == nil {
		out.NextOffset = nextOffset
	}

	return out, nil
}

// ParseChain follows NextOffset across IFD0/IFD1/... and returns every IFD
// found, in declaration order, bounded by maxChainDepth. firstOffset is
// relative to tiffBase, as are all chained NextOffset values per TIFF 6.0.
func ParseChain(r *bytesreader.Reader, tiffBase, firstOffset int, opts Options) ([]*ParsedIFD, error) {
	visited := map[int]bool{}
	var chain []*ParsedIFD
	relOffset := firstOffset
	for i := 0; i < maxChainDepth && relOffset != 0; i++ {
		ifd, err := Parse(r, tiffBase, tiffBase+relOffset, visited, 0, opts)
		if err != nil {
			return chain, err
		}
		chain = append(chain, ifd)
		if ifd.NextOffset == 0 {
			break
		}
		relOffset = int(ifd.NextOffset)
	}
	return chain, nil
}

func decodeEntry(r *bytesreader.Reader, entryOffset int) (Entry, error) {
	tag, err := r.ReadU16(entryOffset)
	if err != nil {
		return Entry{}, err
	}
	typ, err := r.ReadU16(entryOffset + 2)
	if err != nil {
		return Entry{}, err
	}
	count, err := r.ReadU32(entryOffset + 4)
	if err != nil {
		return Entry{}, err
	}
	voff, err := r.ReadU32(entryOffset + 8)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Tag: tag, Type: typ, Count: count, ValueOrOffset: voff, SelfOffset: entryOffset}, nil
}
