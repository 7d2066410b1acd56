package makernote

import (
	"fmt"

	"github.com/mmoretti/exifcore/internal/value"
)

// Result is what a manufacturer parser hands back: the parsed fields plus
// any synthetic status tags (encryption detection, cipher-mode detection)
// that aren't really "parsed" values but need to reach the tag store.
type Result struct {
	Manufacturer string
	Fields       map[string]value.Value
}

// Parser is implemented once per manufacturer. Raw is the MakerNote entry's
// body bytes (already bounds-checked by internal/ifd); keys carries
// whatever encryption material internal/extract captured from IFD0 before
// handing control here (Nikon's serial/shutter-count tags must be read from
// the *main* IFD, not the MakerNote body, so they're threaded in rather than
// re-derived).
type Parser interface {
	Matches(make string) bool
	Parse(raw []byte, fileOffsetOfBody int, keys EncryptionKeys) (Result, error)
}

// EncryptionKeys holds manufacturer encryption material captured while
// walking IFD0, per spec.md §4.C6's "Encryption foundation" note.
type EncryptionKeys struct {
	NikonSerial       string
	NikonShutterCount uint32
	HasSerial         bool
	HasShutterCount   bool
}

func (k EncryptionKeys) Validate() bool {
	return k.HasSerial && k.HasShutterCount && k.NikonSerial != ""
}

var registeredParsers = []Parser{
	&AppleParser{},
	&GoogleParser{},
	&NikonParser{},
	&SonyParser{},
	&PanasonicParser{},
	&MinoltaParser{},
}

// Dispatch selects a parser by the Make tag captured from IFD0 (per
// spec.md §4.C6, "keyed on the Make tag ... before the MakerNote entry is
// parsed") and runs it. An unmatched Make is not an error: the MakerNote is
// simply surfaced as an opaque blob by the caller.
func Dispatch(make string, raw []byte, fileOffsetOfBody int, keys EncryptionKeys) (Result, bool, error) {
	for _, p := range registeredParsers {
		if p.Matches(make) {
			res, err := p.Parse(raw, fileOffsetOfBody, keys)
			return res, true, err
		}
	}
	return Result{}, false, nil
}

func errTooShort(manufacturer string, got, min int) error {
	return fmt.Errorf("%s MakerNote too short: got %d bytes, need at least %d", manufacturer, got, min)
}
