package domain

// DriverProfile is the signed-in driver as GET /api/mobile/driver/profile
// reports it. CurrentLocation is nil until the driver has sent a fix.
type DriverProfile struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	LicenseNumber   string    `json:"license_number"`
	Phone           string    `json:"phone"`
	CurrentLocation *GeoPoint `json:"current_location"`
	IsAvailable     bool      `json:"is_available"`
	Rating          float64   `json:"rating"`
	TotalDeliveries int       `json:"total_deliveries"`
}

// LocationUpdate echoes the fix accepted by POST /api/mobile/driver/location/update.
type LocationUpdate struct {
	Message   string  `json:"message"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ActiveRoute is a planned or in-progress route assigned to the driver.
type ActiveRoute struct {
	ID                int        `json:"id"`
	RouteName         string     `json:"route_name"`
	Status            string     `json:"status"`
	Waypoints         []Waypoint `json:"waypoints"`
	OptimizedSequence []int      `json:"optimized_sequence"`
	TotalDistance     *float64   `json:"total_distance"`
	EstimatedDuration *float64   `json:"estimated_duration"`
}

// ActiveRoutes wraps GET /api/mobile/driver/routes/active.
type ActiveRoutes struct {
	Routes []ActiveRoute `json:"routes"`
}

// RouteTransition acknowledges a route start or completion.
type RouteTransition struct {
	Message string `json:"message"`
	RouteID int    `json:"route_id"`
}

// DeliveryConfirmation acknowledges POST /api/mobile/driver/delivery/:id/confirm.
type DeliveryConfirmation struct {
	Message     string  `json:"message"`
	DeliveryID  string  `json:"delivery_id"`
	ConfirmedAt string  `json:"confirmed_at"`
	Notes       *string `json:"notes"`
}
