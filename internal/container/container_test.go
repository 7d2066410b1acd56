package container

import (
	"encoding/binary"
	"testing"

	"github.com/mmoretti/exifcore/internal/detect"
)

func buildMinimalJPEGWithExif() []byte {
	tiff := []byte("II\x2a\x00\x08\x00\x00\x00\x00\x00")
	payload := append([]byte("Exif\x00\x00"), tiff...)
	seg := append([]byte{0xFF, 0xE1}, byte((len(payload)+2)>>8), byte((len(payload)+2)&0xFF))
	seg = append(seg, payload...)
	out := []byte{0xFF, 0xD8}
	out = append(out, seg...)
	out = append(out, 0xFF, 0xDA, 0, 0) // SOS stub terminates the scan
	return out
}

func TestExtractJPEGSegmentsFindsEXIF(t *testing.T) {
	data := buildMinimalJPEGWithExif()
	segs, err := ExtractJPEGSegments(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(segs) != 1 || segs[0].Kind != KindEXIF {
		t.Fatalf("expected one EXIF segment, got %+v", segs)
	}
}

func TestExtractPNGSegmentsStopsAtIDAT(t *testing.T) {
	var data []byte
	data = append(data, pngSig...)
	writeChunk := func(ctype string, payload []byte) {
		var lenBuf [4]byte
		binary.BigEndian.PutUint32(lenBuf[:], uint32(len(payload)))
		data = append(data, lenBuf[:]...)
		data = append(data, []byte(ctype)...)
		data = append(data, payload...)
		data = append(data, 0, 0, 0, 0) // fake CRC
	}
	writeChunk("eXIf", []byte("II\x2a\x00\x08\x00\x00\x00\x00\x00"))
	writeChunk("IDAT", []byte{1, 2, 3})
	writeChunk("eXIf", []byte("should not be reached"))

	segs, err := ExtractPNGSegments(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(segs) != 1 {
		t.Fatalf("expected exactly one segment before IDAT, got %d", len(segs))
	}
}

func TestLocateTIFFHeaderLittleEndian(t *testing.T) {
	data := []byte("II\x2a\x00\x08\x00\x00\x00")
	hdr, err := LocateTIFFHeader(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hdr.FirstIFDOffset != 8 {
		t.Errorf("expected first IFD offset 8, got %d", hdr.FirstIFDOffset)
	}
}

func TestExtractSegmentsUnknownFormat(t *testing.T) {
	if _, err := ExtractSegments(detect.Unknown, nil); err == nil {
		t.Error("expected error for unknown format")
	}
}
