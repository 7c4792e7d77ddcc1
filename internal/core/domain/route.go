package domain

import "time"

// Waypoint is a stop on a delivery route.
type Waypoint struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Address    string  `json:"address,omitempty"`
	DeliveryID string  `json:"delivery_id,omitempty"`
}

// RouteCreate is the payload of POST /api/routes/create.
type RouteCreate struct {
	RouteName string     `json:"route_name"`
	DriverID  int        `json:"driver_id"`
	VehicleID int        `json:"vehicle_id"`
	StartLat  float64    `json:"start_lat"`
	StartLon  float64    `json:"start_lon"`
	EndLat    float64    `json:"end_lat"`
	EndLon    float64    `json:"end_lon"`
	Waypoints []Waypoint `json:"waypoints"`
}

// Route is a planned delivery route.
type Route struct {
	ID                int       `json:"id"`
	RouteName         string    `json:"route_name"`
	DriverID          int       `json:"driver_id"`
	VehicleID         int       `json:"vehicle_id"`
	OptimizedSequence []int     `json:"optimized_sequence,omitempty"`
	TotalDistance     *float64  `json:"total_distance,omitempty"`
	EstimatedDuration *float64  `json:"estimated_duration,omitempty"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
}

// GeoPoint is a lat/lon pair as the optimizer expects it.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// DeliveryPoint is one stop submitted for optimization.
type DeliveryPoint struct {
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	Priority   int     `json:"priority,omitempty"`
	TimeWindow []int   `json:"time_window,omitempty"`
}

// RouteOptimizationRequest is the payload of POST /api/routes/optimize.
type RouteOptimizationRequest struct {
	VehicleID          int             `json:"vehicle_id"`
	StartLocation      GeoPoint        `json:"start_location"`
	DeliveryPoints     []DeliveryPoint `json:"delivery_points"`
	OptimizationMethod string          `json:"optimization_method,omitempty"`
}

// RouteOptimization is the optimizer's answer.
type RouteOptimization struct {
	VehicleID         int        `json:"vehicle_id"`
	OptimizedRoute    []int      `json:"optimized_route"`
	TotalDistance     float64    `json:"total_distance"`
	EstimatedDuration float64    `json:"estimated_duration"`
	RouteGeometry     []GeoPoint `json:"route_geometry,omitempty"`
}
