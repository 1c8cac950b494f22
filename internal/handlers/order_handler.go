package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/devops-lab/mini-api-server/internal/service"
)

// ordersPage is served verbatim by GET /api/orders
const ordersPage = `[
  { "id": 1, "product": "Laptop", "price": 1200.0 },
  { "id": 2, "product": "Mouse",  "price": 25.0 }
]
`

// ErrOrdersMismatch means the served orders body no longer matches the catalog
var ErrOrdersMismatch = errors.New("orders body does not match catalog")

// OrderHandler serves the order list. The body is a fixed literal that is
// checked against the order catalog at construction.
type OrderHandler struct {
	body       string
	notAllowed string
}

// NewOrderHandler creates a new order handler, failing if the fixed body and
// the current order list disagree
func NewOrderHandler(ctx context.Context, orderService *service.OrderService) (*OrderHandler, error) {
	orders, err := orderService.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}

	rendered, err := renderJSON(orders)
	if err != nil {
		return nil, err
	}

	if err := matchesCompact(ordersPage, rendered); err != nil {
		return nil, err
	}

	return &OrderHandler{
		body:       ordersPage,
		notAllowed: methodNotAllowedJSON(),
	}, nil
}

// matchesCompact reports whether page, stripped of insignificant whitespace,
// is byte-identical to rendered
func matchesCompact(page, rendered string) error {
	var compact bytes.Buffer
	if err := json.Compact(&compact, []byte(page)); err != nil {
		return fmt.Errorf("compact orders body: %w", err)
	}
	if compact.String() != rendered {
		return fmt.Errorf("%w: have %s, catalog %s", ErrOrdersMismatch, compact.String(), rendered)
	}
	return nil
}

// Handle serves GET /api/orders
func (h *OrderHandler) Handle(method string, s Sink) error {
	if !isGet(method) {
		return WriteJSON(s, http.StatusMethodNotAllowed, h.notAllowed)
	}
	return WriteJSON(s, http.StatusOK, h.body)
}
