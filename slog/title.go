package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/titlefetch"
)

// Ensure LoggingTitleService implements titlefetch.TitleService.
var _ titlefetch.TitleService = (*LoggingTitleService)(nil)

// LoggingTitleService wraps a TitleService with logging.
type LoggingTitleService struct {
	next   titlefetch.TitleService
	logger *slog.Logger
}

// NewLoggingTitleService creates a new LoggingTitleService.
func NewLoggingTitleService(next titlefetch.TitleService, logger *slog.Logger) *LoggingTitleService {
	return &LoggingTitleService{next: next, logger: logger}
}

// FetchTitle delegates to the wrapped service and logs the outcome.
func (s *LoggingTitleService) FetchTitle(ctx context.Context, rawURL string) (doc *titlefetch.Document, err error) {
	defer func(begin time.Time) {
		var bytes int64
		if doc != nil {
			bytes = doc.BytesRead
		}
		s.logger.Info("fetch title",
			"url", rawURL,
			"bytes", bytes,
			"code", titlefetch.ErrorCode(err),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchTitle(ctx, rawURL)
}
