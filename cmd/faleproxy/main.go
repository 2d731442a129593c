package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/faleproxy"
	"github.com/fwojciec/faleproxy/fs"
	"github.com/fwojciec/faleproxy/goquery"
	"github.com/fwojciec/faleproxy/htmltomarkdown"
	fphttp "github.com/fwojciec/faleproxy/http"
	"github.com/fwojciec/faleproxy/proxy"
	"github.com/fwojciec/faleproxy/rod"
	fpslog "github.com/fwojciec/faleproxy/slog"
	"github.com/fwojciec/faleproxy/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher used for network retrieval. When nil, Run creates one from
	// the parsed flags. Set before calling Run() to avoid real network I/O.
	Fetcher faleproxy.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
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
		kong.Name("faleproxy"),
		kong.Description("Fetch web pages and replace Yale with Fale in their text"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, cli.LogFormat, cli.LogLevel)

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher, err = newFetcher(cli)
		if err != nil {
			return err
		}
	}
	defer fetcher.Close()

	override := faleproxy.Override{
		HTML: cli.TestHTML,
		File: cli.TestHTMLFile,
		Host: cli.TestHost,
	}
	resolver := proxy.NewResolver(fpslog.NewLoggingFetcher(fetcher, deps.Logger), override)
	source := fpslog.NewLoggingSource(resolver, deps.Logger)
	transformer := fpslog.NewLoggingTransformer(goquery.NewTransformer(), deps.Logger)
	deps.Proxy = proxy.NewService(source, transformer, deps.Logger)

	switch cli.Fetch.Format {
	case "article":
		deps.Extractor = trafilatura.NewExtractor()
		fallthrough
	case "markdown":
		deps.Converter = htmltomarkdown.NewConverter(htmltomarkdown.WithDomain(domainOf(cli.Fetch.URL)))
	}
	if cli.Fetch.Output != "" {
		deps.Writer = fs.NewWriter(cli.Fetch.Output)
	}

	return kongCtx.Run(deps)
}

// newFetcher builds the network fetcher selected by the flags.
func newFetcher(cli *CLI) (faleproxy.Fetcher, error) {
	if cli.Render {
		f, err := rod.NewFetcher(rod.WithFetchTimeout(cli.Timeout))
		if err != nil {
			return nil, fmt.Errorf("failed to start browser (Chrome or Chromium must be installed): %w", err)
		}
		return f, nil
	}
	return fphttp.NewFetcher(fphttp.WithTimeout(cli.Timeout)), nil
}

// domainOf returns scheme://host for raw, or "" when raw is not a URL.
func domainOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

func newLogger(w io.Writer, format, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}

	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
