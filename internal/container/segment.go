// Package container implements the per-format segment extractors of
// spec.md §4.C4: each returns the raw EXIF/XMP/IPTC/MPF byte ranges found in
// a file, with enough provenance for internal/ifd to start parsing without
// re-scanning the container.
package container

import "github.com/mmoretti/exifcore/internal/detect"

// MetadataKind distinguishes the segments a container extractor may return.
type MetadataKind int

const (
	KindEXIF MetadataKind = iota
	KindXMP
	KindIPTC
	KindMPF
)

// Segment is a normalized metadata block plus enough context for the next
// stage to interpret it (offset_in_file matters for MakerNote offset-base
// arithmetic that some manufacturers compute relative to the whole file
// rather than the TIFF header).
type Segment struct {
	Bytes        []byte
	OffsetInFile int64
	SourceFormat detect.FormatID
	Kind         MetadataKind
}
