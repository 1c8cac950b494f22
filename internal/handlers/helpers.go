package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/devops-lab/mini-api-server/internal/middleware"
	"github.com/devops-lab/mini-api-server/internal/models"
)

// Handler produces the complete response for a request method
type Handler interface {
	Handle(method string, s Sink) error
}

// HandlerFunc adapts a function to a Handler
type HandlerFunc func(method string, s Sink) error

func (f HandlerFunc) Handle(method string, s Sink) error {
	return f(method, s)
}

// HTTP adapts a Handler to net/http. A failed write is logged and the
// connection is aborted.
func HTTP(h Handler, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.Handle(r.Method, NewResponseWriterSink(w)); err != nil {
			logger.Error("failed to write response",
				"method", r.Method,
				"path", r.URL.Path,
				"request_id", middleware.GetRequestID(r.Context()),
				"error", err,
			)
			panic(http.ErrAbortHandler)
		}
	}
}

func isGet(method string) bool {
	return strings.EqualFold(method, http.MethodGet)
}

func renderJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("render json: %w", err)
	}
	return string(b), nil
}

// methodNotAllowedJSON is the JSON body shared by the API routes
func methodNotAllowedJSON() string {
	body, err := renderJSON(models.ErrorResponse{Error: MethodNotAllowed})
	if err != nil {
		panic(err)
	}
	return body
}
