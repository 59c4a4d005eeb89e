package letras

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const songPage = `<html><body>
	<div class="cnt-head cnt-head_title"><h1>Garota de Ipanema</h1><h2>Tom Jobim</h2></div>
	<div class="cnt-letra p402237">
		<p>Olha que coisa mais linda<br>Mais cheia de graça</p>
		<p>Moça do corpo dourado<br/>Do sol de Ipanema</p>
	</div>
</body></html>`

func TestParser_CatalogURL(t *testing.T) {
	p := NewParser("", false)
	assert.Equal(t, "https://www.letras.com/tom-jobim/mais_acessadas.html", p.CatalogURL("https://www.letras.com/tom-jobim/"))

	custom := NewParser("top.html", false)
	assert.Equal(t, "https://www.letras.com/x/top.html", custom.CatalogURL("https://www.letras.com/x/"))
}

func TestParser_ParseCatalogPage(t *testing.T) {
	tests := []struct {
		name string
		html string
		want []string
	}{
		{
			name: "rows in document order",
			html: `<ul>
				<li class="cnt-list-row -song" data-shareurl="https://www.letras.com/a/1/"><a>One</a></li>
				<li class="cnt-list-row -song" data-shareurl="https://www.letras.com/a/2/"><a>Two</a></li>
				<li class="cnt-list-row -song" data-shareurl="https://www.letras.com/a/3/"><a>Three</a></li>
			</ul>`,
			want: []string{"https://www.letras.com/a/1/", "https://www.letras.com/a/2/", "https://www.letras.com/a/3/"},
		},
		{
			name: "missing attribute keeps an empty placeholder",
			html: `<ul>
				<li class="cnt-list-row" data-shareurl="https://www.letras.com/a/1/"></li>
				<li class="cnt-list-row"></li>
				<li class="cnt-list-row" data-shareurl="https://www.letras.com/a/3/"></li>
			</ul>`,
			want: []string{"https://www.letras.com/a/1/", "", "https://www.letras.com/a/3/"},
		},
		{
			name: "duplicates kept",
			html: `<ul>
				<li class="cnt-list-row" data-shareurl="https://www.letras.com/a/1/"></li>
				<li class="cnt-list-row" data-shareurl="https://www.letras.com/a/1/"></li>
			</ul>`,
			want: []string{"https://www.letras.com/a/1/", "https://www.letras.com/a/1/"},
		},
		{
			name: "other list items ignored",
			html: `<ul><li class="menu" data-shareurl="https://www.letras.com/menu/"></li></ul>`,
			want: []string{},
		},
	}

	p := NewParser("", false)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			urls, err := p.ParseCatalogPage([]byte(tt.html))
			require.NoError(t, err)
			assert.Equal(t, tt.want, urls)
		})
	}
}

func TestParser_ParseSongPage(t *testing.T) {
	url := "https://www.letras.com/tom-jobim/49/"

	song, err := NewParser("", false).ParseSongPage(url, []byte(songPage))
	require.NoError(t, err)

	assert.Equal(t, "Garota de Ipanema", song.Name)
	assert.Equal(t, url, song.URL)
	assert.Equal(t, "Olha que coisa mais linda Mais cheia de graça Moça do corpo dourado Do sol de Ipanema ", song.Lyrics)
}

func TestParser_ParseSongPagePreserveLines(t *testing.T) {
	song, err := NewParser("", true).ParseSongPage("u", []byte(songPage))
	require.NoError(t, err)

	assert.Equal(t, "Olha que coisa mais linda\nMais cheia de graça\n\nMoça do corpo dourado\nDo sol de Ipanema", song.Lyrics)
}

func TestParser_ParseSongPageLookupErrors(t *testing.T) {
	tests := []struct {
		name string
		html string
	}{
		{
			name: "missing title container",
			html: `<div class="cnt-letra"><p>la</p></div>`,
		},
		{
			name: "title container without h1",
			html: `<div class="cnt-head_title"><h2>Artist</h2></div><div class="cnt-letra"><p>la</p></div>`,
		},
		{
			name: "missing lyrics container",
			html: `<div class="cnt-head_title"><h1>Song</h1></div>`,
		},
	}

	p := NewParser("", false)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.ParseSongPage("u", []byte(tt.html))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrLookup), "expected ErrLookup, got %v", err)
		})
	}
}

func TestParser_ParseSongPageEmptyLyrics(t *testing.T) {
	html := `<div class="cnt-head_title"><h1>Instrumental</h1></div><div class="cnt-letra"></div>`

	song, err := NewParser("", false).ParseSongPage("u", []byte(html))
	require.NoError(t, err)
	assert.Equal(t, "Instrumental", song.Name)
	assert.Empty(t, song.Lyrics)
}

func TestArtistSlug(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"https://www.letras.com/tom-jobim/", "tom-jobim"},
		{"https://www.letras.com/tom-jobim", "tom-jobim"},
		{"https://www.letras.com/", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ArtistSlug(tt.input))
		})
	}
}
