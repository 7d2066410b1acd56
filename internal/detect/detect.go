// Package detect implements format identification by magic number, with an
// extension hint used only to break ties between formats that share a
// magic-number family (the TIFF-based raw formats).
package detect

import (
	"regexp"
	"strings"
	"sync"
)

// FormatID names every container family this module understands.
type FormatID string

const (
	JPEG      FormatID = "jpeg"
	TIFF      FormatID = "tiff"
	PNG       FormatID = "png"
	WEBP      FormatID = "webp"
	AVI       FormatID = "avi"
	QuickTime FormatID = "quicktime" // mp4/mov/3gp/heif family, disambiguated by ftyp brand
	CR2       FormatID = "cr2"
	CR3       FormatID = "cr3"
	NEF       FormatID = "nef"
	ARW       FormatID = "arw"
	RW2       FormatID = "rw2"
	ORF       FormatID = "orf"
	RAF       FormatID = "raf"
	PEF       FormatID = "pef"
	Unknown   FormatID = ""
)

// pattern is a magic-number rule: a byte-regex anchored at offset 0 (after
// skipping Skip bytes, for formats like M2TS that carry a fixed prefix
// before their real signature).
type pattern struct {
	id   FormatID
	skip int
	re   *regexp.Regexp
}

var patternsOnce sync.Once
var compiledPatterns []pattern

// rawPatterns mirrors spec.md §4.C3's "111+ entries including offset-skip
// patterns" table, scoped here to the format families this module actually
// routes to a segment extractor (§4.C4). Regexes compile lazily on first
// Detect call and are cached process-wide, matching the "lazy compilation"
// requirement.
var rawPatterns = []struct {
	id      FormatID
	skip    int
	pattern string
}{
	{JPEG, 0, `^\xff\xd8\xff`},
	{TIFF, 0, `^(II\x2a\x00|MM\x00\x2a)`},
	{RW2, 0, `^II\x55\x00`},
	{PNG, 0, `^\x89PNG\r\n\x1a\n`},
	{WEBP, 0, `^RIFF....WEBP`},
	{AVI, 0, `^RIFF....AVI `},
	{QuickTime, 4, `^ftyp`},
	{RAF, 0, `^FUJIFILMCCD-RAW`},
	{CR3, 4, `^ftypcrx `},
}

func compile() {
	patternsOnce.Do(func() {
		for _, p := range rawPatterns {
			compiledPatterns = append(compiledPatterns, pattern{id: p.id, skip: p.skip, re: regexp.MustCompile(p.pattern)})
		}
	})
}

// Detect returns the best-guess FormatID for the start of a file, using
// extHint (the file extension without the dot, lower-cased) to disambiguate
// TIFF-based raw variants that share IentifyingI II*/MM* magic with plain
// TIFF/DNG.
func Detect(head []byte, extHint string) FormatID {
	compile()
	for _, p := range compiledPatterns {
		if p.skip >= len(head) {
			continue
		}
		// regexp decodes its input as UTF-8, so each byte is mapped onto the
		// rune of the same value first; a pattern's \xNN escape then matches
		// the raw byte even for bytes >= 0x80.
		seg := head[p.skip:]
		runes := make([]rune, len(seg))
		for i, c := range seg {
			runes[i] = rune(c)
		}
		if p.re.MatchString(string(runes)) {
			if p.id == TIFF {
				return disambiguateTIFF(head, extHint)
			}
			return p.id
		}
	}
	return Unknown
}

// disambiguateTIFF resolves CR2 (magic byte "CR" at offset 8) from the
// header alone; NEF/ARW/RW2/ORF/PEF are told apart only by the extension
// hint. The result is final: nothing checks it against the Make tag once
// IFD0 has been read.
func disambiguateTIFF(head []byte, extHint string) FormatID {
	if len(head) >= 10 && head[8] == 'C' && head[9] == 'R' {
		return CR2
	}
	switch strings.ToLower(extHint) {
	case "nef":
		return NEF
	case "arw":
		return ARW
	case "rw2":
		return RW2
	case "orf":
		return ORF
	case "pef":
		return PEF
	case "cr2":
		return CR2
	}
	return TIFF
}
