package makernote

import (
	"testing"

	"github.com/mmoretti/exifcore/internal/value"
)

func TestCaptureEncryptionKeys(t *testing.T) {
	var keys EncryptionKeys
	CaptureEncryptionKeys(nikonTagSerialNumber, value.NewString("12345678"), &keys)
	CaptureEncryptionKeys(nikonTagShutterCount, value.NewU32(4200), &keys)

	if !keys.Validate() {
		t.Fatal("expected keys to validate once both are captured")
	}
	if keys.NikonSerial != "12345678" || keys.NikonShutterCount != 4200 {
		t.Errorf("unexpected captured keys: %+v", keys)
	}
}

func TestEncryptionStatusUnavailable(t *testing.T) {
	var keys EncryptionKeys
	if got := encryptionStatus(keys); got != "encrypted, keys unavailable" {
		t.Errorf("got %q", got)
	}
}

func TestDispatchUnknownMakeReturnsNotHandled(t *testing.T) {
	_, handled, err := Dispatch("SomeObscureBrand", []byte{0, 0}, 0, EncryptionKeys{})
	if handled {
		t.Error("expected unknown make to be unhandled")
	}
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
