// Package gin exposes the proxy pipeline over HTTP using the Gin router.
package gin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/faleproxy"
	"github.com/gin-gonic/gin"
)

// Default server settings.
const (
	DefaultAddr            = ":3001"
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
)

// Config holds HTTP server settings.
type Config struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	Debug           bool
}

// SetDefaults fills zero values with defaults.
func (c *Config) SetDefaults() {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = DefaultReadTimeout
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = DefaultWriteTimeout
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = DefaultShutdownTimeout
	}
}

// Server serves the proxy over HTTP.
type Server struct {
	router *gin.Engine
	server *http.Server
	ln     net.Listener
	logger *slog.Logger
	config Config

	// Services used by the handlers.
	ProxyService faleproxy.ProxyService
}

// NewServer creates a new Server. Handlers read ProxyService at request
// time, so it may be assigned after construction.
func NewServer(cfg Config, logger *slog.Logger) *Server {
	cfg.SetDefaults()

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		router: gin.New(),
		logger: logger,
		config: cfg,
	}

	// Recovery first so panics in later middleware are caught.
	s.router.Use(RecoveryMiddleware(logger))
	s.router.Use(RequestIDMiddleware())
	s.router.Use(LoggerMiddleware(logger))

	s.registerRoutes()

	s.server = &http.Server{
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return s
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Listen binds the configured address.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.config.Addr, err)
	}
	s.ln = ln
	return nil
}

// Serve handles connections on the bound listener until Close is called.
// It returns nil after a graceful shutdown.
func (s *Server) Serve() error {
	s.logger.Info("faleproxy server running", "addr", s.Addr())

	if err := s.server.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Open binds the listen address and serves in the background.
func (s *Server) Open() error {
	if err := s.Listen(); err != nil {
		return err
	}

	go func() {
		if err := s.Serve(); err != nil {
			s.logger.Error("server error", "err", err)
		}
	}()

	return nil
}

// Addr returns the bound address, or the configured one before Open.
func (s *Server) Addr() string {
	if s.ln == nil {
		return s.config.Addr
	}
	return s.ln.Addr().String()
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}
