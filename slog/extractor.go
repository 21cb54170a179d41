package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/titlefetch"
)

// Ensure LoggingExtractor implements titlefetch.Extractor.
var _ titlefetch.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   titlefetch.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next titlefetch.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Name delegates to the wrapped extractor.
func (e *LoggingExtractor) Name() string {
	return e.next.Name()
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(body []byte) (title string, err error) {
	defer func(begin time.Time) {
		e.logger.Debug("extract",
			"extractor", e.next.Name(),
			"bytes", len(body),
			"found", err == nil,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.Extract(body)
}
