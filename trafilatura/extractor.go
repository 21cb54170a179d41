// Package trafilatura implements a titlefetch extractor that reads the title
// from page metadata (meta tags, JSON-LD) using go-trafilatura.
package trafilatura

import (
	"bytes"

	"github.com/fwojciec/titlefetch"
	"github.com/markusmobius/go-trafilatura"
)

// ExtractorName is the registry name of Extractor.
const ExtractorName = "metadata"

// Ensure Extractor implements titlefetch.Extractor at compile time.
var _ titlefetch.Extractor = (*Extractor)(nil)

// Extractor returns the title trafilatura derives from page metadata.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Name implements titlefetch.Extractor.
func (e *Extractor) Name() string {
	return ExtractorName
}

// Extract returns the metadata title. Pages trafilatura cannot process are
// reported as ENOTITLE so that a Registry moves on to the next extractor.
func (e *Extractor) Extract(body []byte) (string, error) {
	if len(body) == 0 {
		return "", titlefetch.NoTitleFound()
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(bytes.NewReader(body), opts)
	if err != nil || result == nil || result.Metadata.Title == "" {
		return "", titlefetch.NoTitleFound()
	}
	return result.Metadata.Title, nil
}
