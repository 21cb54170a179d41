package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/titlefetch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Titles titlefetch.TitleService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config     string   `type:"path" env:"TITLEFETCH_CONFIG" help:"YAML configuration file"`
	Verbose    bool     `short:"v" help:"Enable debug logging"`
	Extractors []string `name:"extractor" short:"e" default:"title" help:"Extractors to try in order (title, opengraph, metadata)"`
	RPS        float64  `name:"rps" default:"0" help:"Requests per second allowed per host (0 disables limiting)"`

	Fetch FetchCmd `cmd:"" help:"Fetch titles for one or more URLs"`
	Serve ServeCmd `cmd:"" help:"Serve the title fetch API over HTTP"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URLs        []string `arg:"" name:"url" help:"URLs to fetch"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8000" help:"Listen address"`
}
