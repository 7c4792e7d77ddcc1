package stub

import (
	"encoding/json"
	"fmt"

	"github.com/warefy/supply-chain-client/internal/core/domain"
)

// Seed loads the admin account plus one warehouse with a few stock lines,
// a vehicle and an open anomaly.
func (s *Store) Seed(adminPassword string) error {
	admin, err := s.AddUser(domain.UserCreate{
		Email:    "admin@warefy.com",
		Username: "admin",
		FullName: "Warefy Admin",
		Role:     domain.RoleAdmin,
		Password: adminPassword,
	})
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	wh := s.AddWarehouse(domain.WarehouseCreate{
		Name:      "Central Distribution",
		Code:      "WH-001",
		City:      "Madrid",
		Country:   "ES",
		Capacity:  10000,
		Latitude:  40.4168,
		Longitude: -3.7038,
		ManagerID: &admin.ID,
	})

	stock := []domain.InventoryCreate{
		{SKU: "SKU-1001", ProductName: "Pallet wrap", Category: "packaging", Quantity: 420, ReorderPoint: 100, UnitPrice: price("12.50")},
		{SKU: "SKU-1002", ProductName: "Barcode labels", Category: "packaging", Quantity: 35, ReorderPoint: 50, UnitPrice: price("3.20")},
		{SKU: "SKU-2001", ProductName: "Hand truck", Category: "equipment", Quantity: 8, ReorderPoint: 2, UnitPrice: price("149.99")},
	}
	var lowItem domain.InventoryItem
	for _, in := range stock {
		in.WarehouseID = wh.ID
		item, err := s.AddItem(in)
		if err != nil {
			return fmt.Errorf("seed inventory %s: %w", in.SKU, err)
		}
		if item.Quantity <= item.ReorderPoint {
			lowItem = item
		}
	}

	s.AddVehicle(domain.VehicleCreate{
		VehicleNumber: "TRK-01",
		VehicleType:   "truck",
		Capacity:      12000,
		FuelType:      "diesel",
	})

	qty, _ := json.Marshal(lowItem.Quantity)
	s.AddAnomaly(domain.Anomaly{
		AnomalyType: "low_stock",
		Severity:    "medium",
		EntityType:  "inventory",
		EntityID:    lowItem.ID,
		Description: lowItem.SKU + " is below its reorder point",
		Metadata:    map[string]json.RawMessage{"quantity": qty},
	})
	return nil
}

func price(s string) *domain.Money {
	m := domain.MustParseMoney(s)
	return &m
}
