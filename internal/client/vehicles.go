package client

import (
	"context"
	"net/http"

	"github.com/warefy/supply-chain-client/internal/core/domain"
)

// VehiclesService covers /api/vehicles.
type VehiclesService service

// List calls GET /api/vehicles.
func (s *VehiclesService) List(ctx context.Context, p domain.Page) ([]domain.Vehicle, error) {
	var out []domain.Vehicle
	if err := s.client.do(ctx, "vehicles", http.MethodGet, "/api/vehicles", pageQuery(p), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get calls GET /api/vehicles/:id.
func (s *VehiclesService) Get(ctx context.Context, id int) (*domain.Vehicle, error) {
	var out domain.Vehicle
	if err := s.client.do(ctx, "vehicles", http.MethodGet, "/api/vehicles/"+itoa(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create calls POST /api/vehicles.
func (s *VehiclesService) Create(ctx context.Context, in domain.VehicleCreate) (*domain.Vehicle, error) {
	var out domain.Vehicle
	if err := s.client.do(ctx, "vehicles", http.MethodPost, "/api/vehicles", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
