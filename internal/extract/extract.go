// Package extract wires every component together into the single public
// entry point: detect the file's format, pull out its metadata-bearing
// segments, parse TIFF IFD chains (dispatching sub-IFDs and MakerNotes
// along the way), translate raw tags into named ones, resolve composites,
// and optionally hash pixel data. It is the orchestration layer spec.md's
// component table names but leaves to nothing else, since every other
// package stays generic and format-agnostic on purpose.
package extract

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/mmoretti/exifcore/internal/bytesreader"
	"github.com/mmoretti/exifcore/internal/composite"
	"github.com/mmoretti/exifcore/internal/config"
	"github.com/mmoretti/exifcore/internal/container"
	"github.com/mmoretti/exifcore/internal/detect"
	"github.com/mmoretti/exifcore/internal/hashengine"
	"github.com/mmoretti/exifcore/internal/ifd"
	"github.com/mmoretti/exifcore/internal/makernote"
	"github.com/mmoretti/exifcore/internal/tagstore"
	"github.com/mmoretti/exifcore/internal/value"
	"github.com/mmoretti/exifcore/internal/xerrors"
)

// Result is the fully resolved tag store plus the format that was detected,
// returned to the CLI for serialization.
type Result struct {
	Format detect.FormatID
	Store  *tagstore.Store
}

// Extract runs the full pipeline against a single in-memory file buffer.
// extHint is the filename's extension (without the dot, any case), used
// only to disambiguate TIFF-family raw formats that share a magic number.
func Extract(data []byte, extHint string, opts config.Options) (*Result, error) {
	head := data
	if len(head) > 32 {
		head = head[:32]
	}
	format := detect.Detect(head, extHint)
	if format == detect.Unknown {
		return nil, xerrors.New(xerrors.KindUnsupported, "extract", 0, fmt.Errorf("unrecognized file format"))
	}

	segments, err := container.ExtractSegments(format, data)
	if err != nil {
		return nil, xerrors.New(xerrors.KindStructural, "extract", 0, err)
	}

	store := tagstore.New()
	var keys makernote.EncryptionKeys

	for _, seg := range segments {
		switch seg.Kind {
		case container.KindEXIF:
			if err := parseTIFFSegment(seg, store, &keys); err != nil {
				slog.Warn("TIFF segment parse error", "offset", seg.OffsetInFile, "err", err)
			}
		case container.KindXMP:
			parseXMPSegment(seg, store)
		}
	}

	composite.Resolve(store, composite.Builtin())

	if opts.HashImageData {
		if ranges, ok := pixelRangesFor(format, data); ok {
			if digest, err := hashengine.HashRanges(data, ranges, hashengine.MD5); err == nil {
				store.Insert("Composite", "ImageDataHash", value.NewString(digest), false)
			}
		}
	}

	return &Result{Format: format, Store: store}, nil
}

func parseTIFFSegment(seg container.Segment, store *tagstore.Store, keys *makernote.EncryptionKeys) error {
	hdr, err := container.LocateTIFFHeader(seg.Bytes)
	if err != nil {
		return err
	}
	reader := bytesreader.New(seg.Bytes, hdr.Endian)

	chain, err := ifd.ParseChain(reader, 0, int(hdr.FirstIFDOffset), ifd.DefaultOptions())
	if err != nil && len(chain) == 0 {
		return err
	}

	for i, page := range chain {
		group := "IFD0"
		if i > 0 {
			group = fmt.Sprintf("IFD%d", i)
		}
		translateIFD(page, store, group)
		captureEncryptionKeys(page, keys)

		if exifIFD, ok := page.SubIFDs[ifd.TagExifIFD]; ok {
			translateIFD(exifIFD, store, "EXIF")
			captureEncryptionKeys(exifIFD, keys)
			if exifIFD.MakerNote != nil {
				dispatchMakerNote(exifIFD.MakerNote, store, page, *keys)
			}
			if interop, ok := exifIFD.SubIFDs[ifd.TagInteropIFD]; ok {
				translateIFD(interop, store, "EXIF")
			}
		}
		if gpsIFD, ok := page.SubIFDs[ifd.TagGPSIFD]; ok {
			translateGPSIFD(gpsIFD, store)
		}
	}
	return nil
}

func dispatchMakerNote(mn *ifd.MakerNoteCapture, store *tagstore.Store, ifd0 *ifd.ParsedIFD, keys makernote.EncryptionKeys) {
	makeVal, ok := ifd0.Tags[ifd.TagMake]
	if !ok {
		return
	}
	makeStr, _ := makeVal.AsString()
	makeStr = strings.TrimSpace(makeStr)

	result, handled, err := makernote.Dispatch(makeStr, mn.Raw, mn.BodyOffset, keys)
	if err != nil {
		slog.Debug("makernote dispatch error", "make", makeStr, "err", err)
		return
	}
	if !handled {
		store.Insert("MakerNotes", "Unknown", value.NewBlob(mn.Raw), false)
		return
	}
	for name, v := range result.Fields {
		store.Insert("MakerNotes", name, v, true)
	}
}

// captureEncryptionKeys pulls Nikon's serial-number/shutter-count tags out
// of whichever IFD they appear in (IFD0 or ExifIFD, depending on model) so
// they're available by the time the MakerNote entry in ExifIFD is reached.
func captureEncryptionKeys(page *ifd.ParsedIFD, keys *makernote.EncryptionKeys) {
	const (
		nikonSerial       = 0x001d
		nikonShutterCount = 0x00a7
	)
	if v, ok := page.Tags[nikonSerial]; ok {
		makernote.CaptureEncryptionKeys(nikonSerial, v, keys)
	}
	if v, ok := page.Tags[nikonShutterCount]; ok {
		makernote.CaptureEncryptionKeys(nikonShutterCount, v, keys)
	}
}
