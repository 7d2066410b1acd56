package hashengine

import (
	"crypto/md5"
	"encoding/hex"
	"testing"
)

func TestHashRangesMatchesDirectMD5(t *testing.T) {
	data := []byte("metadata-bytes-should-be-excludedPIXELDATAHERE-more-metadata")
	pixelStart := int64(34)
	pixelEnd := int64(48)

	got, err := HashRanges(data, []ByteRange{{pixelStart, pixelEnd}}, MD5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := md5.Sum(data[pixelStart:pixelEnd])
	if got != hex.EncodeToString(want[:]) {
		t.Errorf("got %s, want %s", got, hex.EncodeToString(want[:]))
	}
}

func TestHashRangesOutOfBounds(t *testing.T) {
	if _, err := HashRanges([]byte("short"), []ByteRange{{0, 100}}, MD5); err == nil {
		t.Error("expected out-of-bounds error")
	}
}

func TestHashRangesUnsupportedDigest(t *testing.T) {
	if _, err := HashRanges([]byte("x"), nil, Digest("crc32")); err == nil {
		t.Error("expected unsupported digest error")
	}
}
