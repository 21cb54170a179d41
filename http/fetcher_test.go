package http_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/fwojciec/titlefetch"
	tfhttp "github.com/fwojciec/titlefetch/http"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func gzipped(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns streaming body and declared length", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body>Hello World</body></html>"))
		}))
		defer server.Close()

		fetcher := tfhttp.NewFetcher()

		resp, err := fetcher.Fetch(context.Background(), mustParse(t, server.URL))
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "<html><body>Hello World</body></html>", string(body))
		assert.Equal(t, int64(len(body)), resp.ContentLength)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "text/html", resp.ContentType)
	})

	t.Run("sends configured user agent", func(t *testing.T) {
		t.Parallel()

		ua := make(chan string, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ua <- r.Header.Get("User-Agent")
		}))
		defer server.Close()

		fetcher := tfhttp.NewFetcher(tfhttp.WithUserAgent("titlefetch-test/1.0"))

		resp, err := fetcher.Fetch(context.Background(), mustParse(t, server.URL))
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, "titlefetch-test/1.0", <-ua)
	})

	t.Run("sends default user agent", func(t *testing.T) {
		t.Parallel()

		ua := make(chan string, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ua <- r.Header.Get("User-Agent")
		}))
		defer server.Close()

		resp, err := tfhttp.NewFetcher().Fetch(context.Background(), mustParse(t, server.URL))
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, titlefetch.DefaultUserAgent, <-ua)
	})

	t.Run("decodes gzip bodies and drops compressed length", func(t *testing.T) {
		t.Parallel()

		payload := gzipped(t, "<title>Compressed</title>")
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "gzip", r.Header.Get("Accept-Encoding"))
			w.Header().Set("Content-Encoding", "gzip")
			w.Header().Set("Content-Length", strconv.Itoa(len(payload)))
			_, _ = w.Write(payload)
		}))
		defer server.Close()

		resp, err := tfhttp.NewFetcher().Fetch(context.Background(), mustParse(t, server.URL))
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "<title>Compressed</title>", string(body))
		assert.Equal(t, int64(-1), resp.ContentLength)
	})

	t.Run("reports corrupt gzip stream as io error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Encoding", "gzip")
			_, _ = w.Write([]byte("definitely not gzip"))
		}))
		defer server.Close()

		resp, err := tfhttp.NewFetcher().Fetch(context.Background(), mustParse(t, server.URL))
		require.NoError(t, err)
		defer resp.Body.Close()

		_, err = titlefetch.ReadBounded(resp.Body, resp.ContentLength, 1024)

		require.Error(t, err)
		assert.Equal(t, titlefetch.EIO, titlefetch.ErrorCode(err))
	})

	t.Run("reports stalled gzip header as network error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Encoding", "gzip")
			w.WriteHeader(http.StatusOK)
			w.(http.Flusher).Flush()
			time.Sleep(500 * time.Millisecond)
		}))
		defer server.Close()

		fetcher := tfhttp.NewFetcher(tfhttp.WithTimeout(100 * time.Millisecond))

		resp, err := fetcher.Fetch(context.Background(), mustParse(t, server.URL))
		require.NoError(t, err)
		defer resp.Body.Close()

		_, err = titlefetch.ReadBounded(resp.Body, resp.ContentLength, 1024)

		require.Error(t, err)
		assert.Equal(t, titlefetch.ENETWORK, titlefetch.ErrorCode(err))
	})

	t.Run("reads empty gzip body as zero bytes", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Encoding", "gzip")
			w.Header().Set("Content-Length", "0")
		}))
		defer server.Close()

		resp, err := tfhttp.NewFetcher().Fetch(context.Background(), mustParse(t, server.URL))
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Empty(t, body)
	})

	t.Run("follows redirects up to the limit", func(t *testing.T) {
		t.Parallel()

		server := redirectServer(t, 3)
		defer server.Close()

		fetcher := tfhttp.NewFetcher(tfhttp.WithMaxRedirects(3))

		resp, err := fetcher.Fetch(context.Background(), mustParse(t, server.URL+"/hop/3"))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, server.URL+"/hop/0", resp.URL)
	})

	t.Run("fails with network error past the redirect limit", func(t *testing.T) {
		t.Parallel()

		server := redirectServer(t, 6)
		defer server.Close()

		fetcher := tfhttp.NewFetcher(tfhttp.WithMaxRedirects(5))

		_, err := fetcher.Fetch(context.Background(), mustParse(t, server.URL+"/hop/6"))

		require.Error(t, err)
		assert.Equal(t, titlefetch.ENETWORK, titlefetch.ErrorCode(err))
		assert.Contains(t, err.Error(), "stopped after 5 redirects")
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := tfhttp.NewFetcher(tfhttp.WithTimeout(10 * time.Millisecond))

		_, err := fetcher.Fetch(context.Background(), mustParse(t, server.URL))

		require.Error(t, err)
		assert.Equal(t, titlefetch.ENETWORK, titlefetch.ErrorCode(err))
	})

	t.Run("applies config", func(t *testing.T) {
		t.Parallel()

		ua := make(chan string, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ua <- r.Header.Get("User-Agent")
		}))
		defer server.Close()

		cfg := titlefetch.DefaultHTTPConfig()
		cfg.UserAgent = "from-config"

		resp, err := tfhttp.NewFetcher(tfhttp.WithConfig(cfg)).Fetch(context.Background(), mustParse(t, server.URL))
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, "from-config", <-ua)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := tfhttp.NewFetcher().Fetch(ctx, mustParse(t, server.URL))

		require.Error(t, err)
		assert.Equal(t, titlefetch.ENETWORK, titlefetch.ErrorCode(err))
	})

	t.Run("returns network error for non-existent host", func(t *testing.T) {
		t.Parallel()

		fetcher := tfhttp.NewFetcher(tfhttp.WithTimeout(100 * time.Millisecond))

		_, err := fetcher.Fetch(context.Background(), mustParse(t, "http://non-existent-host.invalid/page"))

		require.Error(t, err)
		assert.Equal(t, titlefetch.ENETWORK, titlefetch.ErrorCode(err))
	})

	t.Run("does not fail on non-200 status codes", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("<title>Not Found</title>"))
		}))
		defer server.Close()

		resp, err := tfhttp.NewFetcher().Fetch(context.Background(), mustParse(t, server.URL))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

// redirectServer serves /hop/N by redirecting to /hop/N-1 until /hop/0.
func redirectServer(t *testing.T, hops int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var n int
		if _, err := fmt.Sscanf(r.URL.Path, "/hop/%d", &n); err != nil {
			http.NotFound(w, r)
			return
		}
		if n == 0 {
			_, _ = w.Write([]byte("<title>Arrived</title>"))
			return
		}
		http.Redirect(w, r, fmt.Sprintf("/hop/%d", n-1), http.StatusFound)
	}))
}

// Compile-time verification that Fetcher implements titlefetch.Fetcher
var _ titlefetch.Fetcher = (*tfhttp.Fetcher)(nil)
