package mock

import (
	"context"

	"github.com/fwojciec/titlefetch"
)

var _ titlefetch.TitleService = (*TitleService)(nil)

// TitleService is a mock implementation of titlefetch.TitleService.
type TitleService struct {
	FetchTitleFn func(ctx context.Context, rawURL string) (*titlefetch.Document, error)
}

func (s *TitleService) FetchTitle(ctx context.Context, rawURL string) (*titlefetch.Document, error) {
	return s.FetchTitleFn(ctx, rawURL)
}
