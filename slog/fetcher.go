// Package slog provides log/slog decorators for titlefetch services.
package slog

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/fwojciec/titlefetch"
)

// Ensure LoggingFetcher implements titlefetch.Fetcher.
var _ titlefetch.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   titlefetch.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next titlefetch.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the response status and declared length and delegates to the
// wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, u *url.URL) (resp *titlefetch.Response, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", u.String(),
			"duration", time.Since(begin),
		}
		if resp != nil {
			attrs = append(attrs,
				"status", resp.StatusCode,
				"final_url", resp.URL,
				"content_length", resp.ContentLength,
			)
		}
		attrs = append(attrs, "err", err)
		f.logger.Debug("http get", attrs...)
	}(time.Now())
	return f.next.Fetch(ctx, u)
}
