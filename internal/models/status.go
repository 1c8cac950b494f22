package models

// HealthStatus is the body of GET /health
type HealthStatus struct {
	Status string `json:"status"`
}

// ErrorResponse is the JSON error body returned by the API routes
type ErrorResponse struct {
	Error string `json:"error"`
}
