package titlefetch

import (
	"errors"
	"net/url"
)

// FetchRequest is a validated absolute URL for a single fetch.
type FetchRequest struct {
	URL *url.URL
}

// NewFetchRequest parses raw and requires both a scheme and a host.
func NewFetchRequest(raw string) (*FetchRequest, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, InvalidURL(err)
	}
	if !u.IsAbs() {
		return nil, InvalidURL(errors.New("missing scheme"))
	}
	if u.Host == "" {
		return nil, InvalidURL(errors.New("missing host"))
	}
	return &FetchRequest{URL: u}, nil
}
