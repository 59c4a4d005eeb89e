// Package model defines the core data structures used throughout
// the letras-scraper application.
//
// # Song
//
// Song is the record produced for every song page:
//
//	song := model.NewSong("Name", "lyrics text", "https://www.letras.com/artist/123/")
//	data, _ := json.Marshal(song) // {"name":...,"lyrics":...,"url":...}
//
// # Mode
//
// Mode selects between sequential and concurrent fetching:
//
//	mode, err := model.ParseMode("concurrent")
package model
