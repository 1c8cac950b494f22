package handlers

import (
	"net/http"

	"github.com/devops-lab/mini-api-server/internal/models"
)

// HealthHandler provides the liveness endpoint
type HealthHandler struct {
	body       string
	notAllowed string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler {
	body, err := renderJSON(models.HealthStatus{Status: "UP"})
	if err != nil {
		panic(err)
	}
	return &HealthHandler{
		body:       body,
		notAllowed: methodNotAllowedJSON(),
	}
}

// Handle serves GET /health
func (h *HealthHandler) Handle(method string, s Sink) error {
	if !isGet(method) {
		return WriteJSON(s, http.StatusMethodNotAllowed, h.notAllowed)
	}
	return WriteJSON(s, http.StatusOK, h.body)
}
