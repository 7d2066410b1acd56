package compat

// ignoredFlags are flags accepted for drop-in command-line compatibility
// but which this implementation has no behavior for (output formatting
// choices the reference tool supports that don't change the extracted
// data, only its presentation). Accepting and ignoring them means a
// caller's existing invocation doesn't fail outright.
var ignoredFlags = map[string]bool{
	"-q":       true, // quiet
	"-quiet":   true,
	"-s":       true, // short tag names, already the default here
	"-fast":    true,
	"-fast2":   true,
	"-G":       true, // group names in output, already the default here
	"-n":       true, // numeric values instead of PrintConv strings
	"-charset": true,
	"-j":       true, // JSON output, already the default here
	"-struct":  true,
}

// IsIgnoredFlag reports whether flag is accepted-but-no-op for
// compatibility rather than unrecognized.
func IsIgnoredFlag(flag string) bool { return ignoredFlags[flag] }

// programName is prefixed onto the "--version" form only; "-ver" prints the
// bare version string with no program name (spec.md §6 scenario 9).
const programName = "exifcore"

// VersionString is returned for "-ver": a bare version number, one line, no
// program name. Kept as a dedicated function rather than a package-level
// const so future version bumps have one place to change in lockstep with
// go.mod.
func VersionString() string { return "12.76-compat" }

// LongVersionString is returned for "--version": program name plus version,
// a different shape from VersionString's bare "-ver" form.
func LongVersionString() string { return programName + " " + VersionString() }
