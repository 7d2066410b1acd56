package ifd

import (
	"encoding/binary"
	"testing"

	"github.com/mmoretti/exifcore/internal/bytesreader"
)

// buildMinimalIFD0 builds: header(8) + IFD0 with a single ASCII "Make" tag
// (0x010F) whose 6-byte value "Canon\0" is stored out-of-line, followed by
// next-IFD offset 0.
func buildMinimalIFD0() []byte {
	buf := make([]byte, 8)
	copy(buf, []byte("II\x2a\x00"))
	binary.LittleEndian.PutUint32(buf[4:], 8)

	entryCount := uint16(1)
	ifd := make([]byte, 2+12+4)
	binary.LittleEndian.PutUint16(ifd[0:], entryCount)

	valueOffset := uint32(8 + len(ifd))
	binary.LittleEndian.PutUint16(ifd[2:], TagMake)
	binary.LittleEndian.PutUint16(ifd[4:], 2) // ASCII
	binary.LittleEndian.PutUint32(ifd[6:], 6) // count incl NUL
	binary.LittleEndian.PutUint32(ifd[10:], valueOffset)
	binary.LittleEndian.PutUint32(ifd[14:], 0) // next IFD offset

	out := append(buf, ifd...)
	out = append(out, []byte("Canon\x00")...)
	return out
}

func TestParseChainDecodesASCIITag(t *testing.T) {
	data := buildMinimalIFD0()
	r := bytesreader.New(data, binary.LittleEndian)
	chain, err := ParseChain(r, 0, 8, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chain) != 1 {
		t.Fatalf("expected one IFD, got %d", len(chain))
	}
	v, ok := chain[0].Tags[TagMake]
	if !ok {
		t.Fatal("expected Make tag present")
	}
	s, ok := v.AsString()
	if !ok || s != "Canon" {
		t.Errorf("got %q, want Canon", s)
	}
}

// buildMinimalIFD0WithXPComment builds an IFD0 with a single XPComment
// (0x9C9C) tag holding "Hi" encoded as NUL-terminated UTF-16LE, stored
// out-of-line since its 6-byte payload exceeds the 4-byte inline limit.
func buildMinimalIFD0WithXPComment() []byte {
	buf := make([]byte, 8)
	copy(buf, []byte("II\x2a\x00"))
	binary.LittleEndian.PutUint32(buf[4:], 8)

	entryCount := uint16(1)
	ifd := make([]byte, 2+12+4)
	binary.LittleEndian.PutUint16(ifd[0:], entryCount)

	utf16Bytes := []byte{'H', 0x00, 'i', 0x00, 0x00, 0x00}
	valueOffset := uint32(8 + len(ifd))
	binary.LittleEndian.PutUint16(ifd[2:], TagXPComment)
	binary.LittleEndian.PutUint16(ifd[4:], 1) // BYTE
	binary.LittleEndian.PutUint32(ifd[6:], uint32(len(utf16Bytes)))
	binary.LittleEndian.PutUint32(ifd[10:], valueOffset)
	binary.LittleEndian.PutUint32(ifd[14:], 0) // next IFD offset

	out := append(buf, ifd...)
	out = append(out, utf16Bytes...)
	return out
}

func TestParseDecodesXPCommentAsUTF16(t *testing.T) {
	data := buildMinimalIFD0WithXPComment()
	r := bytesreader.New(data, binary.LittleEndian)
	chain, err := ParseChain(r, 0, 8, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, ok := chain[0].Tags[TagXPComment]
	if !ok {
		t.Fatal("expected XPComment tag present")
	}
	s, ok := v.AsString()
	if !ok || s != "Hi" {
		t.Errorf("got %q, want \"Hi\"", s)
	}
}

func TestParseRejectsEntryCountOverLimit(t *testing.T) {
	data := make([]byte, 2+1001*12+4)
	binary.LittleEndian.PutUint16(data, 1001)
	r := bytesreader.New(data, binary.LittleEndian)
	_, err := Parse(r, 0, 0, map[int]bool{}, 0, DefaultOptions())
	if err == nil {
		t.Error("expected entry-count-over-limit error")
	}
}

func TestParseCycleProtection(t *testing.T) {
	visited := map[int]bool{0: true}
	data := make([]byte, 16)
	r := bytesreader.New(data, binary.LittleEndian)
	_, err := Parse(r, 0, 0, visited, 0, DefaultOptions())
	if err == nil {
		t.Error("expected cycle error when offset already visited")
	}
}
