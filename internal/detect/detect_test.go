package detect

import "testing"

func TestDetectJPEG(t *testing.T) {
	head := []byte{0xff, 0xd8, 0xff, 0xe0, 0, 0}
	if got := Detect(head, "jpg"); got != JPEG {
		t.Errorf("got %v, want JPEG", got)
	}
}

func TestDetectPNG(t *testing.T) {
	head := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	if got := Detect(head, "png"); got != PNG {
		t.Errorf("got %v, want PNG", got)
	}
}

func TestDetectCR2ByMagicByte(t *testing.T) {
	head := make([]byte, 12)
	copy(head, []byte("II\x2a\x00"))
	head[8], head[9] = 'C', 'R'
	if got := Detect(head, "cr2"); got != CR2 {
		t.Errorf("got %v, want CR2", got)
	}
}

func TestDetectNEFByExtensionHint(t *testing.T) {
	head := []byte("II\x2a\x00\x08\x00\x00\x00\x00\x00")
	if got := Detect(head, "nef"); got != NEF {
		t.Errorf("got %v, want NEF", got)
	}
}

func TestDetectUnknown(t *testing.T) {
	if got := Detect([]byte("not a real file"), ""); got != Unknown {
		t.Errorf("got %v, want Unknown", got)
	}
}
