package titlefetch

import (
	"errors"
	"fmt"
)

// Error codes. Each failure of the fetch pipeline maps to exactly one code.
const (
	EINVALIDURL = "invalid_url"
	ENETWORK    = "network"
	ETOOLARGE   = "content_too_large"
	ENOTITLE    = "no_title"
	EIO         = "io"
	EINVALID    = "invalid"
	EINTERNAL   = "internal"
)

// Error represents an application-specific error. Message is the stable text
// exposed to callers; Err holds the underlying cause for diagnostics.
type Error struct {
	Code    string
	Message string

	// Length is the declared content length for ETOOLARGE errors.
	Length int64

	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("titlefetch error: code=%s message=%s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("titlefetch error: code=%s message=%s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// InvalidURL returns the error reported for caller input that is not an
// absolute URL.
func InvalidURL(cause error) *Error {
	return &Error{Code: EINVALIDURL, Message: "URI parse error", Err: cause}
}

// NetworkError wraps a transport failure: DNS, TLS, connection refused,
// timeout or redirect limit.
func NetworkError(cause error) *Error {
	return &Error{Code: ENETWORK, Message: "http client error", Err: cause}
}

// ContentTooLarge returns the error reported when a response declares a
// length that does not fit under the configured cap.
func ContentTooLarge(length int64) *Error {
	return &Error{
		Code:    ETOOLARGE,
		Message: fmt.Sprintf("Content-Length exceeds limit: %d", length),
		Length:  length,
	}
}

// NoTitleFound returns the error reported when no non-empty title exists.
func NoTitleFound() *Error {
	return &Error{Code: ENOTITLE, Message: "No valid title found"}
}

// IOError wraps a read failure during body transfer.
func IOError(cause error) *Error {
	return &Error{Code: EIO, Message: "I/O error", Err: cause}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "internal error"
}

// ContentLength returns the declared length carried by an ETOOLARGE error.
func ContentLength(err error) (int64, bool) {
	var e *Error
	if errors.As(err, &e) && e.Code == ETOOLARGE {
		return e.Length, true
	}
	return 0, false
}
