package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Warehouse is a storage site. LayoutConfig holds the floor-plan grid as a
// JSON string, exactly as persisted by the backend.
type Warehouse struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Code         string    `json:"code,omitempty"`
	Address      string    `json:"address,omitempty"`
	City         string    `json:"city,omitempty"`
	Country      string    `json:"country,omitempty"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`
	Capacity     *int      `json:"capacity,omitempty"`
	IsActive     bool      `json:"is_active"`
	LayoutConfig *string   `json:"layout_config,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// WarehouseCreate is the payload of POST /api/warehouses.
type WarehouseCreate struct {
	Name      string  `json:"name" validate:"required"`
	Code      string  `json:"code,omitempty"`
	Address   string  `json:"address,omitempty"`
	City      string  `json:"city,omitempty"`
	Country   string  `json:"country,omitempty"`
	Capacity  int     `json:"capacity,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	ManagerID *int    `json:"manager_id,omitempty"`
}

// Floor-plan cell types used by the layout editor.
const (
	CellEmpty = iota
	CellShelf
	CellAisle
	CellZone
	CellWall
)

// LayoutGrid is a warehouse floor plan, rows of cell types.
type LayoutGrid [][]int

// Layout decodes the stored floor plan. A warehouse without one yields nil.
func (w *Warehouse) Layout() (LayoutGrid, error) {
	if w.LayoutConfig == nil || *w.LayoutConfig == "" {
		return nil, nil
	}
	var grid LayoutGrid
	if err := json.Unmarshal([]byte(*w.LayoutConfig), &grid); err != nil {
		return nil, fmt.Errorf("decode layout of warehouse %d: %w", w.ID, err)
	}
	return grid, nil
}

// LayoutUpdate is the payload of PATCH /api/warehouses/:id/layout.
type LayoutUpdate struct {
	LayoutConfig string `json:"layout_config" validate:"required"`
}
