package titlefetch

// Extractor derives a title from raw response bytes.
type Extractor interface {
	// Name identifies the extractor in a Registry.
	Name() string

	// Extract returns the title found in body. An ENOTITLE error means the
	// extractor does not apply to this body.
	Extract(body []byte) (string, error)
}
