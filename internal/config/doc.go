// Package config provides configuration management for letras-scraper.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Conversion to a letras.Parser and a fetch mode
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Sequential fetching
//	// Worker pool of min(32, NumCPU+4) when concurrent
//	// Flattened lyrics
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Saving Settings
//
//	settings.Concurrent = true
//	err := settings.Save("/path/to/config.json")
//
// # Configuration Options
//
// Settings includes options for:
//   - Catalog page path and request User-Agent/timeout
//   - Sequential or concurrent fetching and the worker pool size
//   - Keeping line breaks in lyrics
//   - Output directory
package config
