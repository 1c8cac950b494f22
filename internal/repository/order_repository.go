package repository

import (
	"context"

	"github.com/devops-lab/mini-api-server/internal/models"
)

// OrderRepository defines the interface for order data access
type OrderRepository interface {
	GetAll(ctx context.Context) ([]models.Order, error)
}

// StaticOrderRepository serves a fixed, ordered set of orders.
// It is immutable after construction and safe for concurrent use.
type StaticOrderRepository struct {
	orders []models.Order
}

// NewStaticOrderRepository creates a repository holding the demo orders
func NewStaticOrderRepository() *StaticOrderRepository {
	return &StaticOrderRepository{
		orders: []models.Order{
			{ID: 1, Product: "Laptop", Price: 1200.0},
			{ID: 2, Product: "Mouse", Price: 25.0},
		},
	}
}

// GetAll returns a copy of all orders in catalog order
func (r *StaticOrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	orders := make([]models.Order, len(r.orders))
	copy(orders, r.orders)
	return orders, nil
}
