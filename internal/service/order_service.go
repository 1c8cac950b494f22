package service

import (
	"context"
	"fmt"

	"github.com/devops-lab/mini-api-server/internal/models"
	"github.com/devops-lab/mini-api-server/internal/repository"
)

// OrderService handles business logic for orders
type OrderService struct {
	repo repository.OrderRepository
}

// NewOrderService creates a new order service
func NewOrderService(repo repository.OrderRepository) *OrderService {
	return &OrderService{
		repo: repo,
	}
}

// ListOrders returns all orders in catalog order
func (s *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	orders, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}
