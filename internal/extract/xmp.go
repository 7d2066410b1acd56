package extract

import (
	"encoding/base64"
	"log/slog"
	"regexp"

	"github.com/mmoretti/exifcore/internal/container"
	"github.com/mmoretti/exifcore/internal/makernote"
	"github.com/mmoretti/exifcore/internal/tagstore"
	"github.com/mmoretti/exifcore/internal/value"
)

// hdrPlusAttrRe matches the base64 HdrPlusMakernote attribute Google's
// camera app embeds directly in the primary XMP packet. The HasExtendedXMP
// flag and payloads split into a second "extension" XMP segment are not
// matched.
var hdrPlusAttrRe = regexp.MustCompile(`HdrPlusMakernote="([A-Za-z0-9+/=\s]+)"`)

// parseXMPSegment extracts whatever this implementation currently
// understands from a raw XMP packet: Google's inline HDR+ MakerNote
// protobuf, base64-encoded and XOR-ciphered, then gzip- or raw-deflate-
// compressed (spec.md's Google HDR+ supplemented feature). General XMP
// property extraction (creator, rights, arbitrary namespaces) is left as
// an opaque blob under XMP:Raw since the reference tool's XMP handling
// covers a much larger namespace surface than this pipeline targets.
func parseXMPSegment(seg container.Segment, store *tagstore.Store) {
	store.Insert("XMP", "Raw", value.NewBlob(seg.Bytes), false)
	m := hdrPlusAttrRe.FindSubmatch(seg.Bytes)
	if m == nil {
		return
	}
	if err := decodeHDRPlusMakerNote(m[1], store); err != nil {
		slog.Debug("HDR+ makernote decode failed", "err", err)
	}
}

func decodeHDRPlusMakerNote(b64 []byte, store *tagstore.Store) error {
	raw, err := base64.StdEncoding.DecodeString(string(b64))
	if err != nil {
		// Google's embedded base64 sometimes carries incidental whitespace
		// from XML pretty-printing; retry with it stripped.
		cleaned := regexp.MustCompile(`\s+`).ReplaceAll(b64, nil)
		raw, err = base64.StdEncoding.DecodeString(string(cleaned))
		if err != nil {
			return err
		}
	}

	decrypted, err := makernote.DecryptHDRPBytes(raw)
	if err != nil {
		return err
	}
	inflated, err := makernote.ReadGzipContent(decrypted)
	if err != nil {
		return err
	}
	fields, err := makernote.ParseHDRPlusProtobuf(inflated)
	for name, v := range fields {
		store.Insert("MakerNotes", name, v, true)
	}
	return err
}
