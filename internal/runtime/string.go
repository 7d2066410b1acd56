package runtime

import "strings"

// Substr mirrors Perl's substr(EXPR, OFFSET, LENGTH): negative offsets count
// from the end of the string, negative lengths trim from the end rather
// than extending from offset, and out-of-range requests clamp instead of
// panicking (Perl returns undef/warns; callers here get an empty string).
func Substr(s string, offset, length int, hasLength bool) string {
	runes := []rune(s)
	n := len(runes)

	if offset < 0 {
		offset = n + offset
		if offset < 0 {
			offset = 0
		}
	}
	if offset > n {
		return ""
	}

	end := n
	if hasLength {
		if length < 0 {
			end = n + length
		} else {
			end = offset + length
		}
	}
	if end > n {
		end = n
	}
	if end < offset {
		return ""
	}
	return string(runes[offset:end])
}

// Index mirrors Perl's index(STR, SUBSTR, POSITION): returns -1 (not 0) on
// no match, and searching starts at POSITION (clamped into range) when given.
func Index(s, substr string, position int, hasPosition bool) int {
	runes := []rune(s)
	start := 0
	if hasPosition {
		start = position
		if start < 0 {
			start = 0
		}
		if start > len(runes) {
			start = len(runes)
		}
	}
	idx := strings.Index(string(runes[start:]), substr)
	if idx < 0 {
		return -1
	}
	// convert byte offset within the substring back to a rune offset
	sub := string(runes[start:])
	runeIdx := len([]rune(sub[:idx]))
	return start + runeIdx
}

// Translate implements a restricted tr/// covering the direct
// character-range substitution form (no modifiers) that generated
// ValueConv bodies rely on — e.g. tr/a-z/A-Z/. from and to must already be
// expanded (no embedded "-" ranges left) by the caller/normalizer.
func Translate(s, from, to string) string {
	if len(from) == 0 {
		return s
	}
	table := make(map[rune]rune, len(from))
	fr := []rune(from)
	tr := []rune(to)
	for i, c := range fr {
		switch {
		case len(tr) == 0:
			// delete character
			table[c] = -1
		case i < len(tr):
			table[c] = tr[i]
		default:
			table[c] = tr[len(tr)-1]
		}
	}
	var b strings.Builder
	for _, c := range s {
		if r, ok := table[c]; ok {
			if r != -1 {
				b.WriteRune(r)
			}
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}
