// Package compat implements the reference tool's small surface-compatible
// conventions this implementation mirrors: the tag-filter mini-language
// accepted on the command line, and the handful of flags that are accepted
// and silently ignored for drop-in compatibility rather than rejected.
package compat

import (
	"path/filepath"
	"strings"
)

// FilterKind distinguishes the shapes a filter argument can take.
type FilterKind int

const (
	FilterBare      FilterKind = iota // "Make"
	FilterQualified                   // "EXIF:Make"
	FilterGroupAll                    // "EXIF:All"
	FilterGlob                        // "GPS*" or "EXIF:GPS*"
)

// Filter is one parsed -TAG argument.
type Filter struct {
	Kind    FilterKind
	Group   string // empty if unqualified
	Name    string // tag name or glob pattern
	Exclude bool   // leading "-" before the tag name, e.g. "--Make"
	Raw     bool   // trailing "#", e.g. "-Orientation#": emit raw value, not PrintConv
}

// ParseFilter parses a single command-line tag argument, e.g. "-EXIF:Make",
// "-GPS*", "-EXIF:All", "-Orientation#". The leading "-" that introduces the
// flag itself is assumed already stripped by the caller's flag scanner; a
// second leading "-" here means "exclude this tag" rather than "extract only
// this tag", matching the reference tool's `-ExcludeTag` shorthand. A
// trailing "#" requests raw-over-converted emission (spec.md §4.C15) and is
// stripped before the group/name split so it never ends up part of Name.
func ParseFilter(arg string) Filter {
	f := Filter{}
	if strings.HasPrefix(arg, "-") {
		f.Exclude = true
		arg = arg[1:]
	}
	if strings.HasSuffix(arg, "#") {
		f.Raw = true
		arg = arg[:len(arg)-1]
	}

	group, name := "", arg
	if idx := strings.IndexByte(arg, ':'); idx >= 0 {
		group, name = arg[:idx], arg[idx+1:]
	}
	f.Group = group

	switch {
	case strings.EqualFold(name, "All"):
		f.Kind = FilterGroupAll
		f.Name = name
	case strings.ContainsAny(name, "*?["):
		f.Kind = FilterGlob
		f.Name = name
	case group == "":
		f.Kind = FilterBare
		f.Name = name
	default:
		f.Kind = FilterQualified
		f.Name = name
	}
	return f
}

// Matches reports whether f selects the given "Group:Name" tag key.
func (f Filter) Matches(group, name string) bool {
	switch f.Kind {
	case FilterGroupAll:
		return strings.EqualFold(f.Group, group)
	case FilterBare:
		return strings.EqualFold(f.Name, name)
	case FilterQualified:
		return strings.EqualFold(f.Group, group) && strings.EqualFold(f.Name, name)
	case FilterGlob:
		ok, _ := filepath.Match(f.Name, name)
		if f.Group != "" {
			return ok && strings.EqualFold(f.Group, group)
		}
		return ok
	}
	return false
}
