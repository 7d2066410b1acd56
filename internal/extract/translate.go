package extract

import (
	"fmt"

	"github.com/mmoretti/exifcore/internal/ifd"
	"github.com/mmoretti/exifcore/internal/tagstore"
)

// translateIFD copies every tag in page into store under group, renaming
// known tag IDs to their exiftool-compatible name and falling back to the
// "0xNNNN" form for anything tagNames doesn't cover, so nothing parsed is
// ever silently dropped for lack of a name.
func translateIFD(page *ifd.ParsedIFD, store *tagstore.Store, group string) {
	for _, tag := range page.Order {
		v := page.Tags[tag]
		name, ok := tagName(tag)
		if !ok {
			name = fmt.Sprintf("0x%04x", tag)
		}
		store.Insert(group, name, v, false)
	}
}

// translateGPSIFD is translateIFD's GPS-specific twin: the GPS sub-IFD's
// tag numbering restarts at 0 and overlaps IFD0/EXIF's numbering, so it
// needs its own name table rather than sharing tagNames.
func translateGPSIFD(page *ifd.ParsedIFD, store *tagstore.Store) {
	for _, tag := range page.Order {
		v := page.Tags[tag]
		name, ok := gpsTagName(tag)
		if !ok {
			name = fmt.Sprintf("0x%04x", tag)
		}
		store.Insert("GPS", name, v, false)
	}
}
