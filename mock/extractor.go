package mock

import "github.com/fwojciec/titlefetch"

var _ titlefetch.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of titlefetch.Extractor.
type Extractor struct {
	NameFn    func() string
	ExtractFn func(body []byte) (string, error)
}

func (e *Extractor) Name() string {
	return e.NameFn()
}

func (e *Extractor) Extract(body []byte) (string, error) {
	return e.ExtractFn(body)
}
