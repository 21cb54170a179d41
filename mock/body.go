package mock

import "io"

// Body is a mock response body that records reads and closes.
type Body struct {
	ReadFn func(p []byte) (int, error)

	Reads  int
	Closed bool
}

var _ io.ReadCloser = (*Body)(nil)

func (b *Body) Read(p []byte) (int, error) {
	b.Reads++
	return b.ReadFn(p)
}

func (b *Body) Close() error {
	b.Closed = true
	return nil
}
