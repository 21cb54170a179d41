package titlefetch

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"os"
)

// ReadBounded reads at most max bytes from body.
//
// A declared length (-1 when unknown) that is not less than max is rejected
// with ContentTooLarge before anything is read. Otherwise the body is read
// up to and including max bytes; bytes beyond the cap are never consumed and
// truncation is not an error.
func ReadBounded(body io.Reader, declared, max int64) ([]byte, error) {
	if declared >= 0 && declared >= max {
		return nil, ContentTooLarge(declared)
	}

	var buf bytes.Buffer
	if declared > 0 {
		buf.Grow(int(declared))
	}
	if _, err := buf.ReadFrom(io.LimitReader(body, max)); err != nil {
		return nil, readError(err)
	}
	return buf.Bytes(), nil
}

// readError classifies a mid-stream failure. Deadlines and cancellation are
// transport failures; everything else is an I/O error.
func readError(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, os.ErrDeadlineExceeded) {
		return NetworkError(err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return NetworkError(err)
	}
	return IOError(err)
}
