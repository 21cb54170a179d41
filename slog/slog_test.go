package slog_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"testing"

	"github.com/fwojciec/titlefetch"
	"github.com/fwojciec/titlefetch/mock"
	tfslog "github.com/fwojciec/titlefetch/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingTitleService_FetchTitle(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.TitleService{
			FetchTitleFn: func(ctx context.Context, rawURL string) (*titlefetch.Document, error) {
				return &titlefetch.Document{Title: "Hello", BytesRead: 42}, nil
			},
		}

		svc := tfslog.NewLoggingTitleService(inner, newLogger(&buf))
		doc, err := svc.FetchTitle(context.Background(), "https://example.com/docs")

		require.NoError(t, err)
		assert.Equal(t, "Hello", doc.Title)
		output := buf.String()
		assert.Contains(t, output, "fetch title")
		assert.Contains(t, output, "url=https://example.com/docs")
		assert.Contains(t, output, "bytes=42")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error code on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.TitleService{
			FetchTitleFn: func(ctx context.Context, rawURL string) (*titlefetch.Document, error) {
				return nil, titlefetch.NoTitleFound()
			},
		}

		svc := tfslog.NewLoggingTitleService(inner, newLogger(&buf))
		_, err := svc.FetchTitle(context.Background(), "https://example.com")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "code=no_title")
	})
}

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs status and declared length", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, u *url.URL) (*titlefetch.Response, error) {
				return &titlefetch.Response{
					URL:           u.String(),
					StatusCode:    200,
					ContentLength: 123,
					Body:          io.NopCloser(strings.NewReader("")),
				}, nil
			},
		}
		u, _ := url.Parse("https://example.com/")

		resp, err := tfslog.NewLoggingFetcher(inner, newLogger(&buf)).Fetch(context.Background(), u)

		require.NoError(t, err)
		resp.Body.Close()
		output := buf.String()
		assert.Contains(t, output, "http get")
		assert.Contains(t, output, "status=200")
		assert.Contains(t, output, "content_length=123")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, u *url.URL) (*titlefetch.Response, error) {
				return nil, titlefetch.NetworkError(io.ErrUnexpectedEOF)
			},
		}
		u, _ := url.Parse("https://example.com/")

		_, err := tfslog.NewLoggingFetcher(inner, newLogger(&buf)).Fetch(context.Background(), u)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "code=network")
		assert.NotContains(t, buf.String(), "status=")
	})
}

func TestLoggingExtractor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.Extractor{
		NameFn:    func() string { return "title" },
		ExtractFn: func(body []byte) (string, error) { return "T", nil },
	}

	e := tfslog.NewLoggingExtractor(inner, newLogger(&buf))
	title, err := e.Extract([]byte("<title>T</title>"))

	require.NoError(t, err)
	assert.Equal(t, "T", title)
	assert.Equal(t, "title", e.Name())
	assert.Contains(t, buf.String(), "extractor=title")
	assert.Contains(t, buf.String(), "found=true")
}
