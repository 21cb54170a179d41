package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/titlefetch"
	tfslog "github.com/fwojciec/titlefetch/slog"
	"golang.org/x/sync/errgroup"
)

// fetchResult is one line of output.
type fetchResult struct {
	URL       string `json:"url"`
	Title     string `json:"title,omitempty"`
	BytesRead int64  `json:"bytesRead,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Run executes the fetch command. Each URL is fetched independently and
// results are written as JSON lines in argument order.
func (c *FetchCmd) Run(deps *Dependencies) error {
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	// The API server logs its own requests, so only this command decorates
	// the service.
	titles := deps.Titles
	if deps.Logger != nil {
		titles = tfslog.NewLoggingTitleService(titles, deps.Logger)
	}

	results := make([]fetchResult, len(c.URLs))

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(concurrency)
	for i, u := range c.URLs {
		g.Go(func() error {
			results[i].URL = u
			doc, err := titles.FetchTitle(ctx, u)
			if err != nil {
				results[i].Error = titlefetch.ErrorMessage(err)
				return nil
			}
			results[i].Title = doc.Title
			results[i].BytesRead = doc.BytesRead
			return nil
		})
	}
	_ = g.Wait()

	enc := json.NewEncoder(deps.Stdout)
	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
		}
		if err := enc.Encode(r); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d fetches failed", failed, len(results))
	}
	return nil
}
