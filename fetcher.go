package titlefetch

import (
	"context"
	"io"
	"net/url"
)

// Response is an open HTTP response whose body has not been read yet.
type Response struct {
	// URL is the final URL after redirects.
	URL         string
	StatusCode  int
	ContentType string

	// ContentLength is the length declared by the server, or -1 when the
	// server did not declare one. It is untrusted.
	ContentLength int64

	// Body streams the (decoded) response body. The caller must close it.
	Body io.ReadCloser
}

// Fetcher issues a single GET request and hands back the response stream.
// Implementations enforce timeout, redirect and decompression policy and
// must be safe for concurrent use.
type Fetcher interface {
	// Fetch issues a GET for u. Transport failures are reported as
	// ENETWORK errors.
	Fetch(ctx context.Context, u *url.URL) (*Response, error)
}
