package client

import (
	"context"
	"net/http"

	"github.com/warefy/supply-chain-client/internal/core/domain"
)

// RoutesService covers /api/routes.
type RoutesService service

// Optimize calls POST /api/routes/optimize.
func (s *RoutesService) Optimize(ctx context.Context, in domain.RouteOptimizationRequest) (*domain.RouteOptimization, error) {
	var out domain.RouteOptimization
	if err := s.client.do(ctx, "routes", http.MethodPost, "/api/routes/optimize", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List calls GET /api/routes, optionally narrowed to one status.
func (s *RoutesService) List(ctx context.Context, status string) ([]domain.Route, error) {
	var out []domain.Route
	if err := s.client.do(ctx, "routes", http.MethodGet, "/api/routes", query{}.text("status", status).values(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create calls POST /api/routes/create.
func (s *RoutesService) Create(ctx context.Context, in domain.RouteCreate) (*domain.Route, error) {
	var out domain.Route
	if err := s.client.do(ctx, "routes", http.MethodPost, "/api/routes/create", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get calls GET /api/routes/:id.
func (s *RoutesService) Get(ctx context.Context, id int) (*domain.Route, error) {
	var out domain.Route
	if err := s.client.do(ctx, "routes", http.MethodGet, "/api/routes/"+itoa(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ByDriver calls GET /api/routes/driver/:id. An empty status means all.
func (s *RoutesService) ByDriver(ctx context.Context, driverID int, status string) ([]domain.Route, error) {
	var out []domain.Route
	path := "/api/routes/driver/" + itoa(driverID)
	if err := s.client.do(ctx, "routes", http.MethodGet, path, query{}.text("status", status).values(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
