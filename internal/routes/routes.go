package routes

import (
	"errors"
	"fmt"
	"strings"

	"github.com/devops-lab/mini-api-server/internal/handlers"
)

var (
	ErrInvalidPath   = errors.New("route path must start with /")
	ErrNilHandler    = errors.New("route handler is nil")
	ErrDuplicatePath = errors.New("duplicate route path")
)

// Route maps a literal path to its handler
type Route struct {
	Path    string
	Handler handlers.Handler
}

// Table is an immutable set of routes matched by exact path
type Table struct {
	routes []Route
	byPath map[string]handlers.Handler
}

// NewTable validates routes and builds a table from them
func NewTable(routes ...Route) (*Table, error) {
	t := &Table{
		routes: make([]Route, 0, len(routes)),
		byPath: make(map[string]handlers.Handler, len(routes)),
	}

	for _, r := range routes {
		if !strings.HasPrefix(r.Path, "/") {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPath, r.Path)
		}
		if r.Handler == nil {
			return nil, fmt.Errorf("%w: %s", ErrNilHandler, r.Path)
		}
		if _, exists := t.byPath[r.Path]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePath, r.Path)
		}
		t.routes = append(t.routes, r)
		t.byPath[r.Path] = r.Handler
	}

	return t, nil
}

// Lookup returns the handler registered for exactly path
func (t *Table) Lookup(path string) (handlers.Handler, bool) {
	h, ok := t.byPath[path]
	return h, ok
}

// Routes returns the routes in registration order
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Default builds the table served by the API: /health, /api/orders and /
func Default(health, orders, index handlers.Handler) (*Table, error) {
	return NewTable(
		Route{Path: "/health", Handler: health},
		Route{Path: "/api/orders", Handler: orders},
		Route{Path: "/", Handler: index},
	)
}
