package domain

import "time"

// Vehicle is a fleet unit.
type Vehicle struct {
	ID              int        `json:"id"`
	VehicleNumber   string     `json:"vehicle_number"`
	VehicleType     string     `json:"vehicle_type"`
	Capacity        float64    `json:"capacity"`
	FuelType        string     `json:"fuel_type"`
	Status          string     `json:"status"`
	TotalDistance   float64    `json:"total_distance"`
	TotalHours      float64    `json:"total_hours"`
	LastServiceDate *time.Time `json:"last_service_date,omitempty"`
	NextServiceDue  *time.Time `json:"next_service_due,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// VehicleCreate is the payload of POST /api/vehicles.
type VehicleCreate struct {
	VehicleNumber string   `json:"vehicle_number" validate:"required"`
	VehicleType   string   `json:"vehicle_type" validate:"required"`
	Capacity      float64  `json:"capacity" validate:"gt=0"`
	FuelType      string   `json:"fuel_type" validate:"required"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	DriverID      *int     `json:"driver_id,omitempty"`
}

// Page is the skip/limit pair accepted by list routes. Zero values are not sent.
type Page struct {
	Skip  int
	Limit int
}
