// ABOUTME: HTML utilities for turning rich text bodies into plain text
// ABOUTME: Used to build search text, summaries of imported items and reading times

package html

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	nethtml "golang.org/x/net/html"
)

// wordsPerMinute is the reading speed used by ReadingTime
const wordsPerMinute = 200

// StripHTML returns the text content of an HTML fragment with entities decoded
// and whitespace collapsed. Script and style contents are dropped.
func StripHTML(s string) string {
	if !strings.Contains(s, "<") && !strings.Contains(s, "&") {
		return collapseSpace(s)
	}

	z := nethtml.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	skip := 0
	for {
		switch z.Next() {
		case nethtml.ErrorToken:
			// io.EOF or a malformed tail; keep what was read
			return collapseSpace(b.String())
		case nethtml.StartTagToken:
			name, _ := z.TagName()
			if isRawTextTag(string(name)) {
				skip++
			}
			b.WriteByte(' ')
		case nethtml.EndTagToken:
			name, _ := z.TagName()
			if isRawTextTag(string(name)) && skip > 0 {
				skip--
			}
			b.WriteByte(' ')
		case nethtml.SelfClosingTagToken:
			b.WriteByte(' ')
		case nethtml.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		}
	}
}

func isRawTextTag(name string) bool {
	return name == "script" || name == "style"
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Excerpt returns the first paragraph of an HTML body as plain text,
// cut at a word boundary to at most maxRunes runes plus an ellipsis.
func Excerpt(body string, maxRunes int) string {
	text := ""
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(body)); err == nil {
		doc.Find("script, style").Remove()
		doc.Find("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
			text = collapseSpace(p.Text())
			return text == ""
		})
		if text == "" {
			text = collapseSpace(doc.Text())
		}
	} else {
		text = StripHTML(body)
	}

	if maxRunes <= 0 || utf8.RuneCountInString(text) <= maxRunes {
		return text
	}
	runes := []rune(text)
	cut := string(runes[:maxRunes])
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "..."
}

// ReadingTime estimates the minutes needed to read an HTML body, at least 1
func ReadingTime(body string) int {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return 1
	}
	doc.Find("script, style").Remove()
	words := len(strings.Fields(doc.Text()))
	minutes := int(math.Ceil(float64(words) / wordsPerMinute))
	if minutes < 1 {
		return 1
	}
	return minutes
}
