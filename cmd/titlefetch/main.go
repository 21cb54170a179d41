package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/titlefetch"
	"github.com/fwojciec/titlefetch/fetch"
	"github.com/fwojciec/titlefetch/goquery"
	tfhttp "github.com/fwojciec/titlefetch/http"
	"github.com/fwojciec/titlefetch/opengraph"
	tfslog "github.com/fwojciec/titlefetch/slog"
	"github.com/fwojciec/titlefetch/trafilatura"
	"github.com/fwojciec/titlefetch/yaml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config is the loaded configuration. Populated by Run.
	Config titlefetch.Config

	// Registry holds the extractors selected on the command line.
	Registry *titlefetch.Registry
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Config: titlefetch.DefaultConfig(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("titlefetch"),
		kong.Description("Fetch web pages under strict bounds and extract their titles"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'titlefetch --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.Config != "" {
		if m.Config, err = yaml.LoadFile(cli.Config); err != nil {
			fmt.Fprintln(stderr, "Hint: Set TITLEFETCH_CONFIG or --config to a valid YAML file")
			return fmt.Errorf("failed to load config from %q: %w", cli.Config, err)
		}
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if m.Registry, err = newRegistry(cli.Extractors, logger); err != nil {
		return err
	}

	fetcher := tfhttp.NewFetcher(tfhttp.WithConfig(m.Config.HTTP))
	service := fetch.NewService(tfslog.NewLoggingFetcher(fetcher, logger), m.Registry, m.Config.HTTP)
	if cli.RPS > 0 {
		service.RateLimiter = fetch.NewHostLimiter(cli.RPS, 1)
	}

	deps.Logger = logger
	deps.Titles = service

	return kongCtx.Run(deps)
}

// newRegistry builds the extractor registry from the names given on the
// command line, in order.
func newRegistry(names []string, logger *slog.Logger) (*titlefetch.Registry, error) {
	registry := titlefetch.NewRegistry()
	for _, name := range names {
		var e titlefetch.Extractor
		switch name {
		case goquery.TitleExtractorName:
			e = goquery.NewTitleExtractor()
		case opengraph.ExtractorName:
			e = opengraph.NewExtractor()
		case trafilatura.ExtractorName:
			e = trafilatura.NewExtractor()
		default:
			return nil, fmt.Errorf("unknown extractor %q", name)
		}
		registry.Register(tfslog.NewLoggingExtractor(e, logger))
	}
	return registry, nil
}
