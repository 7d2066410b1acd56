// Command exifcore reads image/video files and prints their metadata from
// this module's own tag store: per file a "<path>:" line, a "Format:" line,
// then one "Group:Name = value" line per tag that passes the -TAG filters.
// The output is plain text, not JSON.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mmoretti/exifcore/internal/compat"
	"github.com/mmoretti/exifcore/internal/config"
	"github.com/mmoretti/exifcore/internal/extract"
)

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		slog.Error("usage: exifcore [-TAG ...] [-hash] <file> [<file> ...]")
		os.Exit(1)
	}

	opts := config.Default()
	var filters []compat.Filter
	var files []string

	for _, arg := range args {
		switch {
		case arg == "-ver":
			fmt.Println(compat.VersionString())
			return
		case arg == "--version":
			fmt.Println(compat.LongVersionString())
			return
		case arg == "-hash":
			opts.HashImageData = true
		case compat.IsIgnoredFlag(arg):
			slog.Debug("ignoring compatibility flag", "flag", arg)
		case strings.HasPrefix(arg, "-") && len(arg) <= 2:
			fmt.Fprintf(os.Stderr, "Unknown option %s\n", arg)
			os.Exit(1)
		case strings.HasPrefix(arg, "-"):
			filters = append(filters, compat.ParseFilter(arg[1:]))
		default:
			files = append(files, arg)
		}
	}

	if len(files) == 0 {
		slog.Error("no input files given")
		os.Exit(1)
	}

	exitCode := 0
	for _, file := range files {
		if err := processFile(file, opts, filters); err != nil {
			slog.Error("failed to process file", "file", file, "error", err)
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

func processFile(path string, opts config.Options, filters []compat.Filter) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	result, err := extract.Extract(data, ext, opts)
	if err != nil {
		return err
	}

	printResult(path, result, filters)
	return nil
}

func printResult(path string, result *extract.Result, filters []compat.Filter) {
	fmt.Printf("%s:\n", path)
	fmt.Printf("  Format: %s\n", result.Format)
	for _, key := range result.Store.Keys() {
		group, name := splitGroupKey(key)
		if !keyPasses(filters, group, name) {
			continue
		}
		v, _ := result.Store.GetKey(key)
		raw := rawRequested(filters, group, name)
		fmt.Printf("  %s = %s\n", key, compat.ConvertForDisplay(name, v, raw))
	}
}

// rawRequested reports whether any include filter matching this tag carried
// the trailing "#" raw-emission suffix (spec.md §4.C15).
func rawRequested(filters []compat.Filter, group, name string) bool {
	for _, f := range filters {
		if !f.Exclude && f.Raw && f.Matches(group, name) {
			return true
		}
	}
	return false
}

func splitGroupKey(key string) (group, name string) {
	for i := 0; i < len(key); i++ {
		if key[i] == ':' {
			return key[:i], key[i+1:]
		}
	}
	return "", key
}

// keyPasses applies the parsed -TAG filters: no filters means "print
// everything"; any exclude filter that matches drops the tag regardless of
// include filters (exclusion always wins, matching the reference tool).
func keyPasses(filters []compat.Filter, group, name string) bool {
	if len(filters) == 0 {
		return true
	}
	matchedInclude := false
	hasInclude := false
	for _, f := range filters {
		if f.Exclude {
			if f.Matches(group, name) {
				return false
			}
			continue
		}
		hasInclude = true
		if f.Matches(group, name) {
			matchedInclude = true
		}
	}
	if !hasInclude {
		return true
	}
	return matchedInclude
}
