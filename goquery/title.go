// Package goquery implements titlefetch extractors on top of goquery.
package goquery

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/titlefetch"
	"golang.org/x/net/html"
)

// TitleExtractorName is the registry name of TitleExtractor.
const TitleExtractorName = "title"

// Ensure TitleExtractor implements titlefetch.Extractor at compile time.
var _ titlefetch.Extractor = (*TitleExtractor)(nil)

// TitleExtractor returns the text of the first <title> element.
type TitleExtractor struct{}

// NewTitleExtractor creates a new TitleExtractor.
func NewTitleExtractor() *TitleExtractor {
	return &TitleExtractor{}
}

// Name implements titlefetch.Extractor.
func (e *TitleExtractor) Name() string {
	return TitleExtractorName
}

// Extract parses body leniently as HTML and returns the text nodes of the
// first title element joined by single spaces. Invalid UTF-8 sequences are
// replaced rather than rejected.
func (e *TitleExtractor) Extract(body []byte) (string, error) {
	if !utf8.Valid(body) {
		body = bytes.ToValidUTF8(body, []byte("\uFFFD"))
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", titlefetch.IOError(err)
	}

	sel := doc.Find("title").First()
	if sel.Length() == 0 {
		return "", titlefetch.NoTitleFound()
	}

	title := strings.Join(textNodes(sel.Get(0)), " ")
	if title == "" {
		return "", titlefetch.NoTitleFound()
	}
	return title, nil
}

// textNodes collects the text of every text node below n in document order.
func textNodes(n *html.Node) []string {
	var texts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				texts = append(texts, c.Data)
				continue
			}
			walk(c)
		}
	}
	walk(n)
	return texts
}
