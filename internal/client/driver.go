package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/warefy/supply-chain-client/internal/core/domain"
)

const driverPrefix = "/api/mobile/driver"

// DriverService covers the mobile driver routes under /api/mobile/driver.
// Every call acts on the driver profile linked to the signed-in user.
type DriverService service

// Profile calls GET /api/mobile/driver/profile.
func (s *DriverService) Profile(ctx context.Context) (*domain.DriverProfile, error) {
	var out domain.DriverProfile
	if err := s.client.do(ctx, "driver", http.MethodGet, driverPrefix+"/profile", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateLocation calls POST /api/mobile/driver/location/update. The backend
// takes the fix as query parameters, not as a body.
func (s *DriverService) UpdateLocation(ctx context.Context, lat, lon float64) (*domain.LocationUpdate, error) {
	q := query{}.coord("latitude", lat).coord("longitude", lon).values()

	var out domain.LocationUpdate
	if err := s.client.do(ctx, "driver", http.MethodPost, driverPrefix+"/location/update", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ActiveRoutes calls GET /api/mobile/driver/routes/active.
func (s *DriverService) ActiveRoutes(ctx context.Context) ([]domain.ActiveRoute, error) {
	var out domain.ActiveRoutes
	if err := s.client.do(ctx, "driver", http.MethodGet, driverPrefix+"/routes/active", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Routes, nil
}

// StartRoute calls POST /api/mobile/driver/routes/:id/start.
func (s *DriverService) StartRoute(ctx context.Context, routeID int) (*domain.RouteTransition, error) {
	return s.transition(ctx, routeID, "start")
}

// CompleteRoute calls POST /api/mobile/driver/routes/:id/complete.
func (s *DriverService) CompleteRoute(ctx context.Context, routeID int) (*domain.RouteTransition, error) {
	return s.transition(ctx, routeID, "complete")
}

func (s *DriverService) transition(ctx context.Context, routeID int, step string) (*domain.RouteTransition, error) {
	var out domain.RouteTransition
	path := driverPrefix + "/routes/" + itoa(routeID) + "/" + step
	if err := s.client.do(ctx, "driver", http.MethodPost, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ConfirmDelivery calls POST /api/mobile/driver/delivery/:id/confirm. Empty
// notes are not sent.
func (s *DriverService) ConfirmDelivery(ctx context.Context, deliveryID, notes string) (*domain.DeliveryConfirmation, error) {
	var out domain.DeliveryConfirmation
	path := driverPrefix + "/delivery/" + url.PathEscape(deliveryID) + "/confirm"
	if err := s.client.do(ctx, "driver", http.MethodPost, path, query{}.text("notes", notes).values(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
