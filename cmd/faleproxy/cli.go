package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/faleproxy"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Proxy     faleproxy.ProxyService
	Converter faleproxy.Converter
	Extractor faleproxy.Extractor
	Writer    PageWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	LogFormat string        `enum:"text,json" default:"text" env:"FALEPROXY_LOG_FORMAT" help:"Log output format (text, json)"`
	LogLevel  string        `enum:"debug,info,warn,error" default:"info" env:"FALEPROXY_LOG_LEVEL" help:"Minimum log level"`
	Timeout   time.Duration `short:"t" default:"10s" env:"FALEPROXY_FETCH_TIMEOUT" help:"Upstream fetch timeout"`
	Render    bool          `env:"FALEPROXY_RENDER" help:"Render pages in headless Chrome before rewriting"`

	TestHTML     string `name:"test-html" env:"FALEPROXY_TEST_HTML" hidden:"" help:"Override HTML served for the test host"`
	TestHTMLFile string `name:"test-html-file" env:"FALEPROXY_TEST_HTML_FILE" hidden:"" help:"File with override HTML served for the test host"`
	TestHost     string `name:"test-host" env:"FALEPROXY_TEST_HOST" default:"example.com" hidden:"" help:"Host served from the override"`

	Serve ServeCmd `cmd:"" default:"withargs" help:"Run the HTTP proxy server"`
	Fetch FetchCmd `cmd:"" help:"Fetch a single URL and print the rewritten page"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Port  int    `short:"p" default:"3001" env:"PORT" help:"Port to listen on"`
	Host  string `default:"" env:"HOST" help:"Interface to bind (all by default)"`
	Debug bool   `env:"FALEPROXY_DEBUG" help:"Run gin in debug mode"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URL    string `arg:"" optional:"" help:"URL to fetch"`
	Format string `short:"f" enum:"html,json,markdown,article" default:"html" help:"Output format (html, json, markdown, article)"`
	Output string `short:"o" type:"path" help:"Save output below this directory instead of printing it"`
}
