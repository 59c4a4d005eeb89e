package letras

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/handiism/letras-scraper/internal/model"
)

// ErrLookup is returned when an expected element or attribute is missing
// from a page.
//
// This typically occurs when:
//   - The URL is not a letras.com song page
//   - A catalog row had no song URL
//   - The HTML structure has changed unexpectedly
var ErrLookup = errors.New("element not found")

// DefaultCatalogPath is appended to an artist URL to reach the page listing
// the artist's most accessed songs.
const DefaultCatalogPath = "mais_acessadas.html"

const (
	titleSelector      = "div.cnt-head_title"
	lyricsSelector     = "div.cnt-letra"
	catalogRowSelector = "li.cnt-list-row"
	shareURLAttr       = "data-shareurl"
)

// Parser extracts song information from letras.com HTML pages.
//
// A Parser holds no per-page state and is safe for concurrent use.
//
// Example usage:
//
//	parser := NewParser(DefaultCatalogPath, false)
//
//	page, _ := client.Get(ctx, parser.CatalogURL(artistURL))
//	urls, _ := parser.ParseCatalogPage(page)
//
//	for _, url := range urls {
//	    page, _ := client.Get(ctx, url)
//	    song, err := parser.ParseSongPage(url, page)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(song.Name)
//	}
type Parser struct {
	catalogPath   string
	preserveLines bool
}

// NewParser creates a new Parser.
//
// Parameters:
//   - catalogPath: Path appended to artist URLs; empty means DefaultCatalogPath
//   - preserveLines: Keep line breaks in lyrics instead of flattening them
func NewParser(catalogPath string, preserveLines bool) *Parser {
	if catalogPath == "" {
		catalogPath = DefaultCatalogPath
	}
	return &Parser{
		catalogPath:   catalogPath,
		preserveLines: preserveLines,
	}
}

// CatalogURL returns the address of the artist's catalog page.
//
// The path is appended by plain concatenation, so artistURL is expected
// to end with a slash:
//
//	parser.CatalogURL("https://www.letras.com/tom-jobim/")
//	// "https://www.letras.com/tom-jobim/mais_acessadas.html"
func (p *Parser) CatalogURL(artistURL string) string {
	return artistURL + p.catalogPath
}

// ParseCatalogPage extracts the song URLs from an artist's catalog page.
//
// Every <li class="cnt-list-row"> contributes its data-shareurl attribute,
// in document order. Rows without the attribute contribute an empty
// string at their position instead of failing; fetching that entry later
// fails with ErrLookup. Duplicates are kept.
//
// A page with no rows yields an empty slice and no error.
func (p *Parser) ParseCatalogPage(page []byte) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	rows := doc.Find(catalogRowSelector)
	urls := make([]string, 0, rows.Length())
	rows.Each(func(_ int, row *goquery.Selection) {
		shareURL, _ := row.Attr(shareURLAttr)
		urls = append(urls, shareURL)
	})

	return urls, nil
}

// ParseSongPage extracts a Song from a letras.com song page.
//
// This method performs the following steps:
//  1. Reads the title from the <h1> inside div.cnt-head_title
//  2. Collects the <p> elements inside div.cnt-letra
//  3. Normalizes them with NormalizeLyrics
//
// The title is used verbatim. songURL is stored on the Song unchanged.
//
// Returns an error wrapping ErrLookup if the title or the lyrics container
// is missing.
func (p *Parser) ParseSongPage(songURL string, page []byte) (*model.Song, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	title := doc.Find(titleSelector).First().Find("h1").First()
	if title.Length() == 0 {
		return nil, fmt.Errorf("%w: %s h1", ErrLookup, titleSelector)
	}

	container := doc.Find(lyricsSelector).First()
	if container.Length() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrLookup, lyricsSelector)
	}

	lyrics := NormalizeLyrics(container.Find("p"), p.preserveLines)

	return model.NewSong(title.Text(), lyrics, songURL), nil
}

// ArtistSlug returns the last non-empty path segment of an artist URL,
// which letras.com uses as the artist identifier.
//
//	ArtistSlug("https://www.letras.com/tom-jobim/") // "tom-jobim"
//
// Returns an empty string if the URL has no path.
func ArtistSlug(artistURL string) string {
	u, err := url.Parse(artistURL)
	if err != nil {
		return ""
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	return segments[len(segments)-1]
}
