package client

import (
	"context"
	"net/http"

	"github.com/warefy/supply-chain-client/internal/core/domain"
)

// OrdersService covers /api/orders.
type OrdersService service

// List calls GET /api/orders.
func (s *OrdersService) List(ctx context.Context, f domain.OrderFilter) ([]domain.Order, error) {
	var out []domain.Order
	q := query{}.text("status", f.Status).num("limit", f.Limit)
	if err := s.client.do(ctx, "orders", http.MethodGet, "/api/orders", q.values(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get calls GET /api/orders/:id.
func (s *OrdersService) Get(ctx context.Context, id int) (*domain.Order, error) {
	var out domain.Order
	if err := s.client.do(ctx, "orders", http.MethodGet, "/api/orders/"+itoa(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create calls POST /api/orders.
func (s *OrdersService) Create(ctx context.Context, in domain.OrderCreate) (*domain.Order, error) {
	var out domain.Order
	if err := s.client.do(ctx, "orders", http.MethodPost, "/api/orders", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update calls PATCH /api/orders/:id.
func (s *OrdersService) Update(ctx context.Context, id int, in domain.OrderUpdate) (*domain.Order, error) {
	var out domain.Order
	if err := s.client.do(ctx, "orders", http.MethodPatch, "/api/orders/"+itoa(id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
