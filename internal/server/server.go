package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

// Server is an HTTP server bound to a listener
type Server struct {
	listener        net.Listener
	server          *http.Server
	shutdownTimeout time.Duration
	logger          *slog.Logger
}

// Config configures a Server
type Config struct {
	// Addr is the host:port to listen on
	Addr string
	// Handler is the HTTP handler to delegate requests to
	Handler http.Handler

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	// ShutdownTimeout is the grace period for in-flight requests once
	// serving stops
	ShutdownTimeout time.Duration
}

// New binds the listener immediately so that the caller learns about a busy
// port before Serve is called.
func New(cfg Config, logger *slog.Logger) (*Server, error) {
	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", cfg.Addr, err)
	}

	return &Server{
		listener: ln,
		server: &http.Server{
			Addr:         cfg.Addr,
			Handler:      cfg.Handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
		},
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}, nil
}

// Serve the http server. On context cancellation the server stops accepting
// connections and in flight requests get up to ShutdownTimeout to finish.
func (s *Server) Serve(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		<-ctx.Done()
		s.logger.Info("shutting down server...")

		cctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := s.server.Shutdown(cctx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		s.logger.Info("server listening", "address", s.Addr())
		err := s.server.Serve(s.listener)
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	return g.Wait()
}

// Addr is the bound address, useful when listening on port 0
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}
