package ioutils

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// JSONIndent is the indentation used for exported JSON files.
const JSONIndent = "    "

// WriteJSON serializes v as indented JSON and writes it to path.
//
// The output uses JSONIndent, keeps non-ASCII characters as UTF-8 and
// does not escape <, > or &. No trailing newline is written. An existing
// file is truncated without warning.
//
// Returns ctx.Err() if the context is already done; the write itself is
// not interruptible and a failure midway may leave a truncated file.
//
// Example:
//
//	err := WriteJSON(ctx, "tom-jobim.json", songs)
func WriteJSON(ctx context.Context, path string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", JSONIndent)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return WriteFile(ctx, path, bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}

// WriteFile writes data to path with mode 0644, truncating an existing
// file. Nothing is written once ctx is done.
func WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// JSONPath returns the path of the JSON file for name inside dir.
//
// An empty dir means the current directory:
//
//	JSONPath("", "tom-jobim")      // "tom-jobim.json"
//	JSONPath("out", "tom-jobim")   // "out/tom-jobim.json"
func JSONPath(dir, name string) string {
	fileName := name + ".json"
	if dir == "" {
		return fileName
	}
	return filepath.Join(dir, fileName)
}

// SanitizeFileName removes or replaces characters that are invalid in file/folder names.
//
// This function ensures filenames are valid across different operating systems,
// particularly Windows which has the most restrictive naming rules.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars 0x00-0x1f) → underscore
//   - Trailing dots → removed (Windows limitation)
//   - Multiple whitespace → single space
//   - Trailing whitespace → removed
//
// Example:
//
//	SanitizeFileName("Song: Part 1/2")     // Returns "Song_ Part 1_2"
//	SanitizeFileName("Track...")           // Returns "Track"
//	SanitizeFileName("Name   with  spaces") // Returns "Name with spaces"
func SanitizeFileName(name string) string {
	name = invalidChars.ReplaceAllString(name, "_")

	// Windows doesn't allow filenames ending with dots
	name = trailingDots.ReplaceAllString(name, "")

	name = whitespaceRuns.ReplaceAllString(name, " ")

	return strings.TrimRight(name, " ")
}

var (
	invalidChars   = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDots   = regexp.MustCompile(`\.+$`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
)

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
// An empty path is a no-op.
func EnsureDir(path string) error {
	if path == "" {
		return nil
	}
	return os.MkdirAll(path, 0755)
}
