package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/warefy/supply-chain-client/internal/core/domain"
)

// DemandService covers /api/demand.
type DemandService service

// Forecast calls POST /api/demand/forecast.
func (s *DemandService) Forecast(ctx context.Context, in domain.ForecastRequest) (*domain.Forecast, error) {
	var out domain.Forecast
	if err := s.client.do(ctx, "demand", http.MethodPost, "/api/demand/forecast", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Historical calls GET /api/demand/historical/:sku.
func (s *DemandService) Historical(ctx context.Context, sku string, f domain.HistoryFilter) (*domain.SalesHistory, error) {
	q := query{}.num("warehouse_id", f.WarehouseID).num("days", f.Days)

	var out domain.SalesHistory
	path := "/api/demand/historical/" + url.PathEscape(sku)
	if err := s.client.do(ctx, "demand", http.MethodGet, path, q.values(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
