package titlefetch

import "time"

// Defaults applied when the operator supplies no configuration.
const (
	DefaultUserAgent        = "Mozilla/5.0 (X11; Linux x86_64; rv:71.0) Gecko/20100101 Firefox/71.0"
	DefaultMaxContentLength = 4 * 1024 * 1024
	DefaultMaxRedirects     = 5
	DefaultTimeout          = 10 * time.Second
)

// Config is the process-wide configuration. It is loaded once at startup
// and treated as read-only thereafter.
type Config struct {
	HTTP HTTPConfig
}

// HTTPConfig bounds every outbound fetch.
type HTTPConfig struct {
	// MaxContentLength is the number of body bytes processed before the
	// response is cut off.
	MaxContentLength int64

	// UserAgent is sent with each request.
	UserAgent string

	// MaxRedirects is the number of redirect hops followed before the
	// request fails.
	MaxRedirects int

	// Timeout bounds the whole exchange, body transfer included.
	Timeout time.Duration
}

// DefaultConfig returns a Config populated with defaults.
func DefaultConfig() Config {
	return Config{HTTP: DefaultHTTPConfig()}
}

// DefaultHTTPConfig returns an HTTPConfig populated with defaults.
func DefaultHTTPConfig() HTTPConfig {
	return HTTPConfig{
		MaxContentLength: DefaultMaxContentLength,
		UserAgent:        DefaultUserAgent,
		MaxRedirects:     DefaultMaxRedirects,
		Timeout:          DefaultTimeout,
	}
}

// Validate returns an error if the configuration contains invalid fields.
func (c *HTTPConfig) Validate() error {
	if c.MaxContentLength <= 0 {
		return Errorf(EINVALID, "max content length must be positive")
	}
	if c.MaxRedirects < 0 {
		return Errorf(EINVALID, "max redirects must not be negative")
	}
	if c.Timeout <= 0 {
		return Errorf(EINVALID, "timeout must be positive")
	}
	return nil
}
