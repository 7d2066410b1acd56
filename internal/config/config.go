// Package config holds the small set of run-time options the CLI and the
// extraction pipeline both read. The teacher never used a flags library,
// so this mirrors that: a plain struct populated by cmd/exifcore's manual
// argument scan, not a third-party CLI framework (see DESIGN.md for why).
package config

import "log/slog"

// Options controls one extraction run.
type Options struct {
	// Filters holds -TAG arguments as strings. cmd/exifcore does not fill
	// it (it keeps its parsed []compat.Filter separately) and extraction
	// does not read it.
	Filters []string

	// MetadataOnly mirrors internal/ifd.Options.MetadataOnly (skip values
	// larger than MaxInlineValueSize). extract.Extract does not pass it on:
	// it always parses with ifd.DefaultOptions(), where it is off.
	MetadataOnly bool

	// HashImageData turns on internal/hashengine for the file's pixel
	// payload and stores the digest as a synthetic composite tag.
	HashImageData bool

	// LogLevel is a verbosity for the default slog handler. Neither the CLI
	// nor extraction applies it; -q/-quiet are in internal/compat's
	// ignored-flag set.
	LogLevel slog.Level
}

func Default() Options {
	return Options{LogLevel: slog.LevelWarn}
}
