// Package hashengine implements spec.md §4.C14: opt-in image-data hashing
// scoped strictly to pixel bytes (never metadata segments), so the result
// matches the reference implementation's ImageDataHash composite tag
// byte-for-byte.
package hashengine

import (
	"crypto/md5"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
)

type Digest string

const (
	MD5    Digest = "md5"
	SHA256 Digest = "sha256"
	SHA512 Digest = "sha512"
)

func newHasher(d Digest) (hash.Hash, error) {
	switch d {
	case MD5:
		return md5.New(), nil
	case SHA256:
		return sha256.New(), nil
	case SHA512:
		return sha512.New(), nil
	default:
		return nil, fmt.Errorf("unsupported digest %q", d)
	}
}

// ByteRange is a half-open [Start, End) span of pixel-payload bytes within
// the original file buffer.
type ByteRange struct{ Start, End int64 }

// HashRanges feeds exactly the bytes named by ranges (in order) to the
// selected digest and returns its lowercase hex string. Ranges must already
// exclude APPn/chunk-metadata bytes — JPEG callers pass the SOI..EOI span
// minus APPn segments, PNG callers pass IDAT chunk data only, TIFF callers
// pass StripByteCounts/TileByteCounts-indicated ranges.
func HashRanges(data []byte, ranges []ByteRange, d Digest) (string, error) {
	h, err := newHasher(d)
	if err != nil {
		return "", err
	}
	for _, r := range ranges {
		if r.Start < 0 || r.End > int64(len(data)) || r.Start > r.End {
			return "", fmt.Errorf("byte range [%d,%d) out of bounds for %d-byte buffer", r.Start, r.End, len(data))
		}
		h.Write(data[r.Start:r.End])
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
