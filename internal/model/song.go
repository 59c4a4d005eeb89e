package model

import (
	"fmt"
	"strings"
)

// Song represents a single song scraped from letras.com.
//
// Song holds everything written to the output file:
//   - Name as shown in the page heading
//   - Lyrics, normalized into a single string
//   - URL of the song page it was extracted from
//
// A Song is created once by the page parser and is not modified afterwards.
// Field order matches the keys of the exported JSON objects.
//
// Example:
//
//	song := NewSong("Garota de Ipanema", "Olha que coisa mais linda ", url)
//	// {"name": "Garota de Ipanema", "lyrics": "...", "url": "..."}
type Song struct {
	// Name is the song title, taken verbatim from the page.
	Name string `json:"name"`

	// Lyrics is the normalized lyrics text. It may be empty.
	Lyrics string `json:"lyrics"`

	// URL is the song page address, echoed back unchanged.
	URL string `json:"url"`
}

// NewSong creates a new Song.
func NewSong(name, lyrics, url string) *Song {
	return &Song{
		Name:   name,
		Lyrics: lyrics,
		URL:    url,
	}
}

// Mode selects how song pages are fetched.
type Mode int

const (
	// ModeSequential fetches one song page at a time, in catalog order.
	ModeSequential Mode = iota

	// ModeConcurrent fetches song pages through a bounded worker pool.
	// Results keep catalog order.
	ModeConcurrent
)

// String returns the name used for the mode in flags and config files.
func (m Mode) String() string {
	switch m {
	case ModeSequential:
		return "sequential"
	case ModeConcurrent:
		return "concurrent"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a mode name into a Mode.
//
// Accepted values are "sequential" and "concurrent" (case-insensitive).
// The short forms "seq" and "conc" are also accepted.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sequential", "seq":
		return ModeSequential, nil
	case "concurrent", "conc":
		return ModeConcurrent, nil
	}
	return ModeSequential, fmt.Errorf("unknown mode %q", s)
}
