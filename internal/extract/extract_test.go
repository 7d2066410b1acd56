package extract

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/mmoretti/exifcore/internal/config"
)

// buildMinimalJPEGWithExif constructs the smallest JPEG that carries an
// APP1/Exif segment with one IFD0 tag (Make), so Extract can be exercised
// end-to-end without a fixture file on disk.
func buildMinimalJPEGWithExif(t *testing.T) []byte {
	t.Helper()
	var tiff bytes.Buffer
	tiff.WriteString("II")
	binary.Write(&tiff, binary.LittleEndian, uint16(0x2a))
	binary.Write(&tiff, binary.LittleEndian, uint32(8))

	binary.Write(&tiff, binary.LittleEndian, uint16(1)) // 1 entry
	binary.Write(&tiff, binary.LittleEndian, uint16(0x010f))
	binary.Write(&tiff, binary.LittleEndian, uint16(2)) // ASCII
	binary.Write(&tiff, binary.LittleEndian, uint32(6)) // "Canon\0"
	strOffset := uint32(8 + 2 + 12 + 4)
	binary.Write(&tiff, binary.LittleEndian, strOffset)
	binary.Write(&tiff, binary.LittleEndian, uint32(0)) // next IFD offset
	tiff.WriteString("Canon\x00")

	var app1 bytes.Buffer
	app1.WriteString("Exif\x00\x00")
	app1.Write(tiff.Bytes())

	var out bytes.Buffer
	out.Write([]byte{0xFF, 0xD8})
	out.Write([]byte{0xFF, 0xE1})
	segLen := uint16(app1.Len() + 2)
	binary.Write(&out, binary.BigEndian, segLen)
	out.Write(app1.Bytes())
	out.Write([]byte{0xFF, 0xD9})
	return out.Bytes()
}

func TestExtractReadsMakeFromJPEG(t *testing.T) {
	data := buildMinimalJPEGWithExif(t)
	result, err := Extract(data, "jpg", config.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, ok := result.Store.Get("IFD0", "Make")
	if !ok {
		t.Fatal("expected IFD0:Make to be present")
	}
	got, _ := v.AsString()
	if got != "Canon" {
		t.Errorf("got %q", got)
	}
}

func TestExtractRejectsUnknownFormat(t *testing.T) {
	if _, err := Extract([]byte("not an image"), "", config.Default()); err == nil {
		t.Fatal("expected an error for an unrecognized format")
	}
}
