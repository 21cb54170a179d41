// Package http provides the net/http implementations of titlefetch: an
// outbound Fetcher with timeout, redirect and gzip policy, and the inbound
// API Server.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/titlefetch"
	"github.com/klauspost/compress/gzip"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = titlefetch.DefaultTimeout

// Ensure Fetcher implements titlefetch.Fetcher at compile time.
var _ titlefetch.Fetcher = (*Fetcher)(nil)

// Fetcher issues bounded GET requests. A single Fetcher is meant to be
// created at startup and shared by all requests.
type Fetcher struct {
	client       *http.Client
	transport    http.RoundTripper
	timeout      time.Duration
	userAgent    string
	maxRedirects int
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for the whole exchange, body included.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxRedirects sets the number of redirect hops followed.
func WithMaxRedirects(n int) Option {
	return func(f *Fetcher) {
		f.maxRedirects = n
	}
}

// WithTransport replaces the underlying round tripper.
func WithTransport(rt http.RoundTripper) Option {
	return func(f *Fetcher) {
		f.transport = rt
	}
}

// WithConfig applies timeout, user agent and redirect limit from cfg.
func WithConfig(cfg titlefetch.HTTPConfig) Option {
	return func(f *Fetcher) {
		f.timeout = cfg.Timeout
		f.userAgent = cfg.UserAgent
		f.maxRedirects = cfg.MaxRedirects
	}
}

// NewFetcher creates a new Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:      DefaultFetchTimeout,
		userAgent:    titlefetch.DefaultUserAgent,
		maxRedirects: titlefetch.DefaultMaxRedirects,
	}
	for _, opt := range opts {
		opt(f)
	}

	transport := f.transport
	if transport == nil {
		t := http.DefaultTransport.(*http.Transport).Clone()
		// Compression is negotiated and decoded by Fetch itself.
		t.DisableCompression = true
		transport = t
	}

	f.client = &http.Client{
		Transport:     transport,
		Timeout:       f.timeout,
		CheckRedirect: f.checkRedirect,
	}

	return f
}

func (f *Fetcher) checkRedirect(req *http.Request, via []*http.Request) error {
	if len(via) > f.maxRedirects {
		return fmt.Errorf("stopped after %d redirects", f.maxRedirects)
	}
	return nil
}

// Fetch issues a GET for u and returns the open response. The body is
// transparently gunzipped when the server compressed it.
func (f *Fetcher) Fetch(ctx context.Context, u *url.URL) (*titlefetch.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, titlefetch.InvalidURL(err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept-Encoding", "gzip")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, titlefetch.NetworkError(err)
	}

	out := &titlefetch.Response{
		URL:           resp.Request.URL.String(),
		StatusCode:    resp.StatusCode,
		ContentType:   resp.Header.Get("Content-Type"),
		ContentLength: resp.ContentLength,
		Body:          resp.Body,
	}

	if strings.EqualFold(strings.TrimSpace(resp.Header.Get("Content-Encoding")), "gzip") {
		// The declared length describes the compressed stream.
		out.ContentLength = -1
		out.Body = &gzipBody{body: resp.Body}
	}

	return out, nil
}

// gzipBody decodes a gzip stream and closes both the decoder and the
// underlying connection body. The header is read on the first Read, so
// header failures surface from the body read like any other stream error
// and an empty body reads as zero bytes.
type gzipBody struct {
	body io.ReadCloser
	zr   *gzip.Reader
	err  error
}

func (b *gzipBody) Read(p []byte) (int, error) {
	if b.zr == nil {
		if b.err == nil {
			b.zr, b.err = gzip.NewReader(b.body)
		}
		if b.err != nil {
			return 0, b.err
		}
	}
	return b.zr.Read(p)
}

func (b *gzipBody) Close() error {
	var zerr error
	if b.zr != nil {
		zerr = b.zr.Close()
	}
	if err := b.body.Close(); err != nil {
		return err
	}
	return zerr
}
