package main

import (
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	fpgin "github.com/fwojciec/faleproxy/gin"
	"golang.org/x/sync/errgroup"
)

// Run executes the serve command. It blocks until the context is cancelled
// or the process receives SIGINT/SIGTERM.
func (c *ServeCmd) Run(deps *Dependencies) error {
	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := fpgin.NewServer(fpgin.Config{
		Addr:  net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Debug: c.Debug,
	}, deps.Logger)
	server.ProxyService = deps.Proxy

	if err := server.Listen(); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(server.Serve)
	g.Go(func() error {
		<-ctx.Done()
		return server.Close()
	})

	return g.Wait()
}
