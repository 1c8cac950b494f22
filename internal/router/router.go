package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/devops-lab/mini-api-server/internal/config"
	"github.com/devops-lab/mini-api-server/internal/handlers"
	"github.com/devops-lab/mini-api-server/internal/middleware"
	"github.com/devops-lab/mini-api-server/internal/routes"
)

// Options tune the middleware stack around the route table
type Options struct {
	// RequestTimeout bounds handler execution; zero disables it
	RequestTimeout time.Duration
	CORS           config.CORSConfig
}

// New builds the dispatcher for table. Paths are matched exactly; unknown
// paths get the router's default 404. Every response, including 404s and
// CORS preflights, carries exactly the security header set.
func New(table *routes.Table, opts Options, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.CanonicalMethod)
	r.Use(middleware.Logger(logger))
	r.Use(chimiddleware.Recoverer)
	if opts.RequestTimeout > 0 {
		r.Use(chimiddleware.Timeout(opts.RequestTimeout))
	}

	if opts.CORS.Enabled() {
		// Preflights pass through to the route, which answers non-GET with 405.
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:     opts.CORS.AllowedOrigins,
			AllowedMethods:     []string{http.MethodGet},
			AllowedHeaders:     []string{"Accept", "Content-Type", middleware.RequestIDHeader},
			ExposedHeaders:     []string{middleware.RequestIDHeader},
			AllowCredentials:   false,
			OptionsPassthrough: true,
			MaxAge:             300,
		}))
		// cors appends its own Vary values; restore the exact policy.
		r.Use(middleware.SecurityHeaders)
	}

	for _, route := range table.Routes() {
		r.HandleFunc(route.Path, handlers.HTTP(route.Handler, logger))
		logger.Debug("route registered", "path", route.Path)
	}

	// chi sends methods it does not know here before matching the path, so
	// hand known paths back to their handler for the route's own 405 body.
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		if h, ok := table.Lookup(req.URL.Path); ok {
			handlers.HTTP(h, logger).ServeHTTP(w, req)
			return
		}
		http.NotFound(w, req)
	})

	return r
}
