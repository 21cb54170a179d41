// Package fetch provides the bounded fetch-and-extract pipeline.
// It coordinates the HTTP fetcher, the bounded body read and title
// extraction for a single URL.
package fetch

import (
	"context"

	"github.com/fwojciec/titlefetch"
)

// Ensure Service implements titlefetch.TitleService at compile time.
var _ titlefetch.TitleService = (*Service)(nil)

// Service runs the fetch pipeline. All fields are read-only once the
// Service is in use, so one Service may serve any number of concurrent
// fetches.
type Service struct {
	Fetcher   titlefetch.Fetcher
	Extractor titlefetch.Extractor

	// MaxContentLength caps the number of body bytes read.
	MaxContentLength int64

	// RateLimiter, if set, is waited on per host before each request.
	RateLimiter titlefetch.DomainLimiter
}

// NewService returns a Service using the given fetcher and extractor,
// bounded by cfg.MaxContentLength.
func NewService(fetcher titlefetch.Fetcher, extractor titlefetch.Extractor, cfg titlefetch.HTTPConfig) *Service {
	return &Service{
		Fetcher:          fetcher,
		Extractor:        extractor,
		MaxContentLength: cfg.MaxContentLength,
	}
}

// FetchTitle validates rawURL, fetches it, reads at most MaxContentLength
// body bytes and extracts the title. Steps run in order and the first
// failure is returned as is.
func (s *Service) FetchTitle(ctx context.Context, rawURL string) (*titlefetch.Document, error) {
	req, err := titlefetch.NewFetchRequest(rawURL)
	if err != nil {
		return nil, err
	}

	if s.RateLimiter != nil {
		if err := s.RateLimiter.Wait(ctx, req.URL.Hostname()); err != nil {
			return nil, titlefetch.NetworkError(err)
		}
	}

	resp, err := s.Fetcher.Fetch(ctx, req.URL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := titlefetch.ReadBounded(resp.Body, resp.ContentLength, s.MaxContentLength)
	if err != nil {
		return nil, err
	}

	title, err := s.Extractor.Extract(body)
	if err != nil {
		return nil, err
	}

	doc := &titlefetch.Document{
		Title:     title,
		BytesRead: int64(len(body)),
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}
