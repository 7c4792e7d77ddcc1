package domain

import "time"

// InventoryItem is a stock line held in one warehouse.
type InventoryItem struct {
	ID            int        `json:"id"`
	SKU           string     `json:"sku"`
	ProductName   string     `json:"product_name"`
	Category      string     `json:"category,omitempty"`
	Quantity      int        `json:"quantity"`
	ReorderPoint  int        `json:"reorder_point"`
	UnitPrice     *Money     `json:"unit_price,omitempty"`
	WarehouseID   int        `json:"warehouse_id"`
	LastRestocked *time.Time `json:"last_restocked,omitempty"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// InventoryCreate is the payload of POST /api/inventory.
type InventoryCreate struct {
	SKU          string `json:"sku" validate:"required"`
	ProductName  string `json:"product_name" validate:"required"`
	Category     string `json:"category,omitempty"`
	Quantity     int    `json:"quantity" validate:"min=0"`
	ReorderPoint int    `json:"reorder_point" validate:"min=0"`
	UnitPrice    *Money `json:"unit_price,omitempty"`
	WarehouseID  int    `json:"warehouse_id" validate:"required"`
}

// InventoryUpdate is the payload of PUT /api/inventory/:id.
type InventoryUpdate struct {
	Quantity     *int   `json:"quantity,omitempty"`
	ReorderPoint *int   `json:"reorder_point,omitempty"`
	UnitPrice    *Money `json:"unit_price,omitempty"`
}

// InventoryFilter narrows GET /api/inventory. Zero values are not sent.
type InventoryFilter struct {
	WarehouseID int
	SKU         string
	LowStock    bool
	Skip        int
	Limit       int
}

// WarehouseSummary aggregates the inventory of one warehouse.
type WarehouseSummary struct {
	WarehouseID   int    `json:"warehouse_id"`
	WarehouseName string `json:"warehouse_name"`
	TotalItems    int    `json:"total_items"`
	TotalQuantity int    `json:"total_quantity"`
	LowStockItems int    `json:"low_stock_items"`
	TotalValue    Money  `json:"total_value"`
}
