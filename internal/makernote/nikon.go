package makernote

import (
	"strings"

	"github.com/mmoretti/exifcore/internal/value"
)

// NikonParser captures the two encryption-key tags during the IFD walk and
// surfaces an encryption-status synthetic tag. Actual decryption of the
// encrypted sections (ShotInfo, ColorBalance, LensData) is out of scope —
// spec.md's design notes defer it deliberately — so this parser only
// reports whether the keys needed for decryption were captured.
type NikonParser struct{}

const (
	nikonTagSerialNumber  = 0x001d
	nikonTagShutterCount  = 0x00a7
)

func (p *NikonParser) Matches(make string) bool {
	return strings.EqualFold(strings.TrimSpace(make), "Nikon") || strings.EqualFold(strings.TrimSpace(make), "NIKON CORPORATION")
}

func (p *NikonParser) Parse(raw []byte, fileOffsetOfBody int, keys EncryptionKeys) (Result, error) {
	fields := map[string]value.Value{}

	// Nikon MakerNotes are themselves a small TIFF structure (signature
	// "Nikon\0" + version bytes + TIFF header at +10 for Type 3, or a bare
	// IFD at +0 for Type 2); this core surfaces only the encryption-status
	// synthetic tag from captured keys, not a full Nikon tag table, per
	// spec.md's "implementing every obscure legacy format" Non-goal — the
	// Nikon ShotInfo/LensData formats vary by firmware generation and are
	// exactly that kind of long tail.
	fields["MakerNotes:NikonEncryptionStatus"] = value.NewString(encryptionStatus(keys))

	if keys.HasSerial {
		fields["MakerNotes:NikonSerialNumberCaptured"] = value.NewString(keys.NikonSerial)
	}
	if keys.HasShutterCount {
		fields["MakerNotes:NikonShutterCountCaptured"] = value.NewU32(keys.NikonShutterCount)
	}

	return Result{Manufacturer: "Nikon", Fields: fields}, nil
}

func encryptionStatus(keys EncryptionKeys) string {
	if keys.Validate() {
		return "encrypted, keys captured"
	}
	return "encrypted, keys unavailable"
}

// CaptureEncryptionKeys is called by internal/extract while walking IFD0 (or
// Nikon's own preview IFD, where ExifTool documents the tags actually live)
// so the serial number and shutter count are available by the time the
// MakerNote itself is dispatched — mirroring
// original_source's nikon/encryption.rs NikonEncryptionKeys capture, which
// is populated from the same two tag IDs before any decrypt attempt.
func CaptureEncryptionKeys(tag uint16, v value.Value, keys *EncryptionKeys) {
	switch tag {
	case nikonTagSerialNumber:
		if s, ok := v.AsString(); ok && s != "" {
			keys.NikonSerial = s
			keys.HasSerial = true
		}
	case nikonTagShutterCount:
		if n, ok := v.AsU32(); ok {
			keys.NikonShutterCount = n
			keys.HasShutterCount = true
		}
	}
}
