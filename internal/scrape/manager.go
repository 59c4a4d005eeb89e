package scrape

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/handiism/letras-scraper/internal/config"
	"github.com/handiism/letras-scraper/internal/http"
	ioutils "github.com/handiism/letras-scraper/internal/io"
	"github.com/handiism/letras-scraper/internal/letras"
	"github.com/handiism/letras-scraper/internal/model"
	"golang.org/x/sync/errgroup"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a scrape progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Fetcher retrieves the raw bytes of a page.
//
// *http.Client implements Fetcher. Implementations must be safe for
// concurrent use.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// byteCounter is implemented by fetchers that count received bytes.
type byteCounter interface {
	BytesReceived() int64
}

// Manager coordinates catalog listing, song fetching and export.
type Manager struct {
	settings *config.Settings
	fetcher  Fetcher
	parser   *letras.Parser

	totalSongs   atomic.Int32
	fetchedSongs atomic.Int32

	onProgress func(ProgressEvent)
}

// NewManager creates a new Manager fetching pages over HTTP.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) *Manager {
	client := http.NewClient(settings.UserAgent, settings.Timeout())
	return NewManagerWithFetcher(settings, client, onProgress)
}

// NewManagerWithFetcher creates a new Manager using fetcher to retrieve pages.
func NewManagerWithFetcher(settings *config.Settings, fetcher Fetcher, onProgress func(ProgressEvent)) *Manager {
	return &Manager{
		settings:   settings,
		fetcher:    fetcher,
		parser:     settings.ToParser(),
		onProgress: onProgress,
	}
}

// ListSongURLs fetches the artist's catalog page and returns its song URLs
// in page order.
//
// Rows without a URL show up as empty strings; see letras.Parser.ParseCatalogPage.
func (m *Manager) ListSongURLs(ctx context.Context, artistURL string) ([]string, error) {
	catalogURL := m.parser.CatalogURL(artistURL)
	m.progress(ProgressEvent{Message: fmt.Sprintf("Fetching catalog: %s", catalogURL), Level: LevelVerbose})

	page, err := m.fetcher.Get(ctx, catalogURL)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog %s: %w", catalogURL, err)
	}

	urls, err := m.parser.ParseCatalogPage(page)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", catalogURL, err)
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Found %d songs", len(urls)), Level: LevelInfo})
	return urls, nil
}

// FetchSong fetches a single song page and extracts its Song.
//
// An empty songURL fails with letras.ErrLookup without touching the network.
func (m *Manager) FetchSong(ctx context.Context, songURL string) (*model.Song, error) {
	if songURL == "" {
		return nil, fmt.Errorf("%w: catalog row without song URL", letras.ErrLookup)
	}

	page, err := m.fetcher.Get(ctx, songURL)
	if err != nil {
		return nil, fmt.Errorf("fetch song %s: %w", songURL, err)
	}

	song, err := m.parser.ParseSongPage(songURL, page)
	if err != nil {
		return nil, fmt.Errorf("parse song %s: %w", songURL, err)
	}

	m.fetchedSongs.Add(1)
	m.progress(ProgressEvent{Message: fmt.Sprintf("Fetched: %s", song.Name), Level: LevelVerbose})
	return song, nil
}

// FetchSongs fetches every song in urls and returns them in the same order.
//
// In ModeSequential songs are fetched one after another and the first
// failure stops the run. In ModeConcurrent up to Settings.Workers() songs
// are fetched at once; already started fetches run to completion and the
// first failure is returned. Either way a failure yields no songs.
func (m *Manager) FetchSongs(ctx context.Context, urls []string, mode model.Mode) ([]*model.Song, error) {
	m.totalSongs.Store(int32(len(urls)))
	m.fetchedSongs.Store(0)

	switch mode {
	case model.ModeConcurrent:
		return m.fetchConcurrent(ctx, urls)
	default:
		return m.fetchSequential(ctx, urls)
	}
}

func (m *Manager) fetchSequential(ctx context.Context, urls []string) ([]*model.Song, error) {
	songs := make([]*model.Song, 0, len(urls))
	for _, songURL := range urls {
		song, err := m.FetchSong(ctx, songURL)
		if err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}
	return songs, nil
}

func (m *Manager) fetchConcurrent(ctx context.Context, urls []string) ([]*model.Song, error) {
	// Plain Group: a failure does not cancel fetches already in flight.
	var g errgroup.Group
	g.SetLimit(m.settings.Workers())

	songs := make([]*model.Song, len(urls))
	for i, songURL := range urls {
		i, songURL := i, songURL
		g.Go(func() error {
			song, err := m.FetchSong(ctx, songURL)
			if err != nil {
				return err
			}
			songs[i] = song
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return songs, nil
}

// Save writes songs as a JSON array to <outputName>.json inside
// Settings.OutputDir, replacing any existing file. It returns the path
// written.
func (m *Manager) Save(ctx context.Context, outputName string, songs []*model.Song) (string, error) {
	if err := ioutils.EnsureDir(m.settings.OutputDir); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	if songs == nil {
		songs = []*model.Song{}
	}

	path := ioutils.JSONPath(m.settings.OutputDir, outputName)
	if err := ioutils.WriteJSON(ctx, path, songs); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Saved %d songs to %s", len(songs), path), Level: LevelSuccess})
	return path, nil
}

// Export lists the artist's songs, fetches all of them in the given mode
// and writes them to <outputName>.json. It returns the number of songs
// written.
//
// Any failure aborts the export before the file is written.
func (m *Manager) Export(ctx context.Context, artistURL, outputName string, mode model.Mode) (int, error) {
	urls, err := m.ListSongURLs(ctx, artistURL)
	if err != nil {
		return 0, err
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Fetching %d songs (%s)", len(urls), mode), Level: LevelInfo})
	songs, err := m.FetchSongs(ctx, urls, mode)
	if err != nil {
		return 0, err
	}

	if _, err := m.Save(ctx, outputName, songs); err != nil {
		return 0, err
	}
	return len(songs), nil
}

// GetProgress returns how many songs have been fetched out of the current batch.
func (m *Manager) GetProgress() (fetched, total int32) {
	return m.fetchedSongs.Load(), m.totalSongs.Load()
}

// BytesReceived returns the page bytes received so far, or 0 when the
// fetcher does not count them.
func (m *Manager) BytesReceived() int64 {
	if c, ok := m.fetcher.(byteCounter); ok {
		return c.BytesReceived()
	}
	return 0
}

// OutputName derives an output file name from an artist URL, falling back
// to "songs" when the URL carries no usable name.
//
//	OutputName("https://www.letras.com/tom-jobim/") // "tom-jobim"
func OutputName(artistURL string) string {
	name := ioutils.SanitizeFileName(letras.ArtistSlug(artistURL))
	if name == "" {
		return "songs"
	}
	return name
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
