package handlers

import (
	"net/http"
)

const indexPage = `<!doctype html>
<html lang="en">
  <head><meta charset="utf-8"><title>Mini API</title></head>
  <body>
    <h1>Mini API Server</h1>
    <ul>
      <li><a href="/health">/health</a></li>
      <li><a href="/api/orders">/api/orders</a></li>
    </ul>
  </body>
</html>
`

// IndexHandler serves the landing page
type IndexHandler struct{}

// NewIndexHandler creates a new index handler
func NewIndexHandler() *IndexHandler {
	return &IndexHandler{}
}

// Handle serves GET /
func (h *IndexHandler) Handle(method string, s Sink) error {
	if !isGet(method) {
		return WriteText(s, http.StatusMethodNotAllowed, MethodNotAllowed)
	}
	return WriteHTML(s, http.StatusOK, indexPage)
}
