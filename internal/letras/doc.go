// Package letras provides functionality to parse letras.com HTML pages
// and extract song information.
//
// The package handles two main use cases:
//
//  1. Parsing an artist's "most accessed" page to list song URLs
//  2. Parsing a song page to extract its title and lyrics
//
// # Catalog Parsing
//
// Use the Parser to list the songs of an artist:
//
//	parser := letras.NewParser(letras.DefaultCatalogPath, false)
//	page, _ := client.Get(ctx, parser.CatalogURL("https://www.letras.com/tom-jobim/"))
//	urls, err := parser.ParseCatalogPage(page)
//
// # Song Parsing
//
//	song, err := parser.ParseSongPage(songURL, page)
//	if errors.Is(err, letras.ErrLookup) {
//	    // the page is missing the title or lyrics container
//	}
//
// # Lyrics Normalization
//
// Lyrics are stored as a set of <p> elements separated by <br> tags.
// NormalizeLyrics turns them into a single string, either keeping line
// breaks or flattening everything into one space-separated line.
package letras
