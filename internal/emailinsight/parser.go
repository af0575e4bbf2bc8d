package emailinsight

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ParseResult holds everything extracted from a single parse of an email body.
type ParseResult struct {
	Anchors []Anchor
	Text    string
}

// Anchor is an <a> element carrying a non-empty href.
type Anchor struct {
	Href string
	Text string
}

// nonVisibleSelector matches elements whose text is never rendered.
const nonVisibleSelector = "script, style, template"

// Parse builds the document tree and extracts, in document order, every
// anchor with a non-empty href and the concatenated text of all visible text
// nodes. Hrefs are returned verbatim; they are never resolved against a base URL.
func Parse(body io.Reader) (*ParseResult, error) {
	root, err := html.Parse(body)
	if err != nil {
		return nil, err
	}

	doc := goquery.NewDocumentFromNode(root)
	result := &ParseResult{}

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if href == "" {
			return
		}
		result.Anchors = append(result.Anchors, Anchor{
			Href: href,
			Text: strings.TrimSpace(s.Text()),
		})
	})

	// Anchors are collected first so links inside <template> still count.
	doc.Find(nonVisibleSelector).Remove()
	result.Text = doc.Text()

	return result, nil
}
