package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/warefy/supply-chain-client/internal/core/domain"
)

// WarehousesService covers /api/warehouses.
type WarehousesService service

// List calls GET /api/warehouses.
func (s *WarehousesService) List(ctx context.Context, p domain.Page) ([]domain.Warehouse, error) {
	var out []domain.Warehouse
	if err := s.client.do(ctx, "warehouses", http.MethodGet, "/api/warehouses", pageQuery(p), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get calls GET /api/warehouses/:id.
func (s *WarehousesService) Get(ctx context.Context, id int) (*domain.Warehouse, error) {
	var out domain.Warehouse
	if err := s.client.do(ctx, "warehouses", http.MethodGet, "/api/warehouses/"+itoa(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create calls POST /api/warehouses.
func (s *WarehousesService) Create(ctx context.Context, in domain.WarehouseCreate) (*domain.Warehouse, error) {
	var out domain.Warehouse
	if err := s.client.do(ctx, "warehouses", http.MethodPost, "/api/warehouses", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateLayout persists a floor-plan grid. The backend stores the grid as a
// JSON string in layout_config.
func (s *WarehousesService) UpdateLayout(ctx context.Context, id int, grid domain.LayoutGrid) (*domain.Warehouse, error) {
	raw, err := json.Marshal(grid)
	if err != nil {
		return nil, fmt.Errorf("encode layout: %w", err)
	}

	var out domain.Warehouse
	path := "/api/warehouses/" + itoa(id) + "/layout"
	if err := s.client.do(ctx, "warehouses", http.MethodPatch, path, nil, domain.LayoutUpdate{LayoutConfig: string(raw)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
