package client

import (
	"context"
	"net/http"

	"github.com/warefy/supply-chain-client/internal/core/domain"
)

// InventoryService covers /api/inventory.
type InventoryService service

// List calls GET /api/inventory.
func (s *InventoryService) List(ctx context.Context, f domain.InventoryFilter) ([]domain.InventoryItem, error) {
	q := query{}.
		num("warehouse_id", f.WarehouseID).
		text("sku", f.SKU).
		flag("low_stock", f.LowStock).
		num("skip", f.Skip).
		num("limit", f.Limit)

	var out []domain.InventoryItem
	if err := s.client.do(ctx, "inventory", http.MethodGet, "/api/inventory", q.values(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get calls GET /api/inventory/:id.
func (s *InventoryService) Get(ctx context.Context, id int) (*domain.InventoryItem, error) {
	var out domain.InventoryItem
	if err := s.client.do(ctx, "inventory", http.MethodGet, "/api/inventory/"+itoa(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create calls POST /api/inventory.
func (s *InventoryService) Create(ctx context.Context, in domain.InventoryCreate) (*domain.InventoryItem, error) {
	var out domain.InventoryItem
	if err := s.client.do(ctx, "inventory", http.MethodPost, "/api/inventory", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update calls PUT /api/inventory/:id. Nil fields are left unchanged.
func (s *InventoryService) Update(ctx context.Context, id int, in domain.InventoryUpdate) (*domain.InventoryItem, error) {
	var out domain.InventoryItem
	if err := s.client.do(ctx, "inventory", http.MethodPut, "/api/inventory/"+itoa(id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete calls DELETE /api/inventory/:id.
func (s *InventoryService) Delete(ctx context.Context, id int) error {
	return s.client.do(ctx, "inventory", http.MethodDelete, "/api/inventory/"+itoa(id), nil, nil, nil)
}

// WarehouseSummary calls GET /api/inventory/warehouse/:id/summary.
func (s *InventoryService) WarehouseSummary(ctx context.Context, warehouseID int) (*domain.WarehouseSummary, error) {
	var out domain.WarehouseSummary
	path := "/api/inventory/warehouse/" + itoa(warehouseID) + "/summary"
	if err := s.client.do(ctx, "inventory", http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
