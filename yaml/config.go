// Package yaml loads titlefetch configuration from YAML documents.
package yaml

import (
	"errors"
	"io"
	"math"
	"os"
	"time"

	"github.com/fwojciec/titlefetch"
	"gopkg.in/yaml.v3"
)

// config mirrors the on-disk layout. Keys left out of the document keep the
// defaults they were initialised with.
type config struct {
	HTTP httpConfig `yaml:"http"`
}

type httpConfig struct {
	MaxContentLength int64  `yaml:"max_content_length"`
	UserAgent        string `yaml:"user_agent"`
	MaxRedirects     int    `yaml:"max_redirects"`
	Timeout          int64  `yaml:"timeout"` // seconds
}

// Load decodes a configuration document from r. An empty document yields
// the defaults. Unknown keys are rejected.
func Load(r io.Reader) (titlefetch.Config, error) {
	def := titlefetch.DefaultHTTPConfig()
	c := config{HTTP: httpConfig{
		MaxContentLength: def.MaxContentLength,
		UserAgent:        def.UserAgent,
		MaxRedirects:     def.MaxRedirects,
		Timeout:          int64(def.Timeout / time.Second),
	}}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return titlefetch.Config{}, titlefetch.Errorf(titlefetch.EINVALID, "invalid config: %v", err)
	}

	if c.HTTP.Timeout > math.MaxInt64/int64(time.Second) {
		return titlefetch.Config{}, titlefetch.Errorf(titlefetch.EINVALID, "timeout too large: %d seconds", c.HTTP.Timeout)
	}

	out := titlefetch.Config{HTTP: titlefetch.HTTPConfig{
		MaxContentLength: c.HTTP.MaxContentLength,
		UserAgent:        c.HTTP.UserAgent,
		MaxRedirects:     c.HTTP.MaxRedirects,
		Timeout:          time.Duration(c.HTTP.Timeout) * time.Second,
	}}
	if err := out.HTTP.Validate(); err != nil {
		return titlefetch.Config{}, err
	}
	return out, nil
}

// LoadFile reads the configuration file at path.
func LoadFile(path string) (titlefetch.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return titlefetch.Config{}, err
	}
	defer f.Close()
	return Load(f)
}
