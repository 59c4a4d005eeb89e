package letras

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

// lineBreakReplacer turns paragraph markup into plain text with newlines.
var lineBreakReplacer = strings.NewReplacer(
	"<br>", "\n",
	"<br/>", "\n",
	"</br>", "",
	"<p>", "",
	"</p>", "\n",
)

// quoteUnescaper undoes the quote and carriage return escapes added by the
// HTML renderer. &amp;, &lt; and &gt; stay escaped.
var quoteUnescaper = strings.NewReplacer(
	"&#39;", "'",
	"&#34;", `"`,
	"&#13;", "\r",
)

var multipleSpaces = regexp.MustCompile(` {2,}`)

// NormalizeLyrics converts the paragraphs of a lyrics container into a
// single string.
//
// With preserveLines set, the markup of every paragraph is kept line by
// line: <br> becomes a newline, each paragraph ends with a blank line, and
// the last two bytes of the result are dropped. Quotes are written as is,
// while &, < and > keep their entity form. The trim is a fixed width
// and does not look at what it removes.
//
// Otherwise the rendered text of every paragraph is passed through
// SplitCamelCase, followed by a single space, and runs of spaces are
// collapsed. The result never contains two consecutive spaces.
//
// An empty selection yields an empty string in both modes.
//
// Example:
//
//	doc, _ := goquery.NewDocumentFromReader(strings.NewReader(`<div><p>HelloWorld</p></div>`))
//	NormalizeLyrics(doc.Find("p"), false) // "Hello World "
func NormalizeLyrics(paragraphs *goquery.Selection, preserveLines bool) string {
	if preserveLines {
		return joinLines(paragraphs)
	}
	return flatten(paragraphs)
}

func joinLines(paragraphs *goquery.Selection) string {
	var sb strings.Builder
	paragraphs.Each(func(_ int, p *goquery.Selection) {
		// Rendering into memory only fails on a broken node tree.
		markup, err := goquery.OuterHtml(p)
		if err != nil {
			return
		}
		sb.WriteString(quoteUnescaper.Replace(lineBreakReplacer.Replace(markup)))
		sb.WriteString("\n")
	})
	return trimLast(sb.String(), 2)
}

func flatten(paragraphs *goquery.Selection) string {
	var sb strings.Builder
	paragraphs.Each(func(_ int, p *goquery.Selection) {
		sb.WriteString(SplitCamelCase(p.Text()))
		sb.WriteString(" ")
	})
	return CollapseSpaces(sb.String())
}

// trimLast removes the final n bytes of s, or everything if s is shorter.
func trimLast(s string, n int) string {
	if len(s) < n {
		return ""
	}
	return s[:len(s)-n]
}

// SplitCamelCase inserts a space before every ASCII uppercase letter that
// directly follows a word character (a letter, a number or an underscore).
//
// The source pages glue lines together when their <br> tags are dropped,
// producing words like "amorDesce". This splits them back apart:
//
//	SplitCamelCase("HelloWorld")  // "Hello World"
//	SplitCamelCase("éAgora")      // "é Agora"
//	SplitCamelCase("one Two")     // "one Two" (already separated)
//	SplitCamelCase("ABC")         // "A B C"
//
// Only A-Z trigger a split; accented capitals such as "É" do not.
func SplitCamelCase(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	var prev rune
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' && isWordRune(prev) {
			sb.WriteByte(' ')
		}
		sb.WriteRune(r)
		prev = r
	}
	return sb.String()
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// CollapseSpaces replaces every run of space characters with a single
// space. Other whitespace (tabs, newlines) is left untouched.
func CollapseSpaces(s string) string {
	return multipleSpaces.ReplaceAllString(s, " ")
}
