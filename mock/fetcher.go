package mock

import (
	"context"
	"net/url"

	"github.com/fwojciec/titlefetch"
)

var _ titlefetch.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of titlefetch.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, u *url.URL) (*titlefetch.Response, error)
}

func (f *Fetcher) Fetch(ctx context.Context, u *url.URL) (*titlefetch.Response, error) {
	return f.FetchFn(ctx, u)
}
