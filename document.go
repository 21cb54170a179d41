package titlefetch

import "context"

// Document is the result of a successful title fetch.
type Document struct {
	Title     string `json:"title"`
	BytesRead int64  `json:"bytesRead"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Title == "" {
		return NoTitleFound()
	}
	return nil
}

// TitleService fetches a page and extracts its title.
type TitleService interface {
	// FetchTitle runs one bounded fetch of rawURL. It returns either a
	// Document with a non-empty title or an error, never both.
	FetchTitle(ctx context.Context, rawURL string) (*Document, error)
}
