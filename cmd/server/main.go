package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/devops-lab/mini-api-server/internal/config"
	"github.com/devops-lab/mini-api-server/internal/handlers"
	"github.com/devops-lab/mini-api-server/internal/repository"
	"github.com/devops-lab/mini-api-server/internal/router"
	"github.com/devops-lab/mini-api-server/internal/routes"
	"github.com/devops-lab/mini-api-server/internal/server"
	"github.com/devops-lab/mini-api-server/internal/service"
	"github.com/devops-lab/mini-api-server/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.NewWithFormat(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	slog.SetDefault(log)

	log.Info("starting mini api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
		"cors", cfg.CORS.Enabled(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server failed", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	srv, err := newServer(ctx, cfg, log)
	if err != nil {
		// a signal during startup is a clean exit, not a failure
		if errors.Is(err, context.Canceled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return srv.Serve(ctx)
}

// newServer wires repository, handlers, route table and router into a bound server
func newServer(ctx context.Context, cfg *config.Config, log *slog.Logger) (*server.Server, error) {
	// Initialize repositories and services
	orderRepo := repository.NewStaticOrderRepository()
	orderService := service.NewOrderService(orderRepo)

	// Initialize handlers
	orderHandler, err := handlers.NewOrderHandler(ctx, orderService)
	if err != nil {
		return nil, err
	}

	table, err := routes.Default(handlers.NewHealthHandler(), orderHandler, handlers.NewIndexHandler())
	if err != nil {
		return nil, fmt.Errorf("build route table: %w", err)
	}

	r := router.New(table, router.Options{
		RequestTimeout: cfg.Server.RequestTimeout,
		CORS:           cfg.CORS,
	}, log)

	return server.New(server.Config{
		Addr:            cfg.Server.Addr(),
		Handler:         r,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		IdleTimeout:     cfg.Server.IdleTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, log)
}
