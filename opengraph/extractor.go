// Package opengraph implements a titlefetch extractor reading the og:title
// meta property.
package opengraph

import (
	"bytes"

	"github.com/dyatlov/go-opengraph/opengraph"
	"github.com/fwojciec/titlefetch"
)

// ExtractorName is the registry name of Extractor.
const ExtractorName = "opengraph"

// Ensure Extractor implements titlefetch.Extractor at compile time.
var _ titlefetch.Extractor = (*Extractor)(nil)

// Extractor returns the og:title of a page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Name implements titlefetch.Extractor.
func (e *Extractor) Name() string {
	return ExtractorName
}

// Extract returns the og:title property, or ENOTITLE when the page has none.
func (e *Extractor) Extract(body []byte) (string, error) {
	og := opengraph.NewOpenGraph()
	if err := og.ProcessHTML(bytes.NewReader(body)); err != nil {
		return "", titlefetch.IOError(err)
	}
	if og.Title == "" {
		return "", titlefetch.NoTitleFound()
	}
	return og.Title, nil
}
