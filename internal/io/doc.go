// Package ioutils provides file system utilities.
//
// # JSON Output
//
//	path := ioutils.JSONPath(outputDir, "tom-jobim")
//	err := ioutils.WriteJSON(ctx, path, songs)
//
// Files are written with a four-space indent, UTF-8 text and no HTML
// escaping, overwriting any existing file.
//
// # Filename Sanitization
//
// Use SanitizeFileName to remove invalid characters from filenames:
//
//	safe := ioutils.SanitizeFileName("Song: Part 1/2") // Returns "Song_ Part 1_2"
//
// # Directories
//
//	err := ioutils.EnsureDir("/path/to/new/directory")
package ioutils
