package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/handiism/letras-scraper/internal/letras"
	"github.com/handiism/letras-scraper/internal/model"
)

// Settings holds all configuration options.
type Settings struct {
	// Source settings
	CatalogPath    string  `json:"catalog_path"`
	UserAgent      string  `json:"user_agent"`
	RequestTimeout float64 `json:"request_timeout"` // seconds

	// Fetch settings
	Concurrent           bool `json:"concurrent"`
	MaxConcurrentFetches int  `json:"max_concurrent_fetches"` // <= 0 means DefaultMaxConcurrentFetches

	// Lyrics settings
	PreserveLineBreaks bool `json:"preserve_line_breaks"`

	// Output settings
	OutputDir string `json:"output_dir"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		CatalogPath:    letras.DefaultCatalogPath,
		UserAgent:      "LetrasScraper",
		RequestTimeout: 30,

		Concurrent:           false,
		MaxConcurrentFetches: DefaultMaxConcurrentFetches(),

		PreserveLineBreaks: false,

		OutputDir: "",
	}
}

// DefaultMaxConcurrentFetches returns the default worker pool size:
// the number of CPUs plus four, capped at 32.
func DefaultMaxConcurrentFetches() int {
	return min(32, runtime.NumCPU()+4)
}

// Load reads settings from a JSON file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Mode returns the fetch mode selected by the Concurrent flag.
func (s *Settings) Mode() model.Mode {
	if s.Concurrent {
		return model.ModeConcurrent
	}
	return model.ModeSequential
}

// Workers returns the worker pool size, falling back to the default when
// MaxConcurrentFetches is not positive.
func (s *Settings) Workers() int {
	if s.MaxConcurrentFetches <= 0 {
		return DefaultMaxConcurrentFetches()
	}
	return s.MaxConcurrentFetches
}

// Timeout returns RequestTimeout as a time.Duration.
func (s *Settings) Timeout() time.Duration {
	return time.Duration(s.RequestTimeout * float64(time.Second))
}

// ToParser creates a letras.Parser from the settings.
func (s *Settings) ToParser() *letras.Parser {
	return letras.NewParser(s.CatalogPath, s.PreserveLineBreaks)
}
