package client

import (
	"context"
	"net/http"

	"github.com/warefy/supply-chain-client/internal/core/domain"
)

// DefaultRecentAnomalies is the page size used by Recent when none is given.
const DefaultRecentAnomalies = 50

// AnomaliesService covers /api/anomalies.
type AnomaliesService service

// DetectDemand calls GET /api/anomalies/detect/demand for one SKU.
func (s *AnomaliesService) DetectDemand(ctx context.Context, f domain.DemandDetectFilter) (*domain.Detection, error) {
	var out domain.Detection
	q := query{}.text("sku", f.SKU).num("days", f.Days)
	if err := s.client.do(ctx, "anomalies", http.MethodGet, "/api/anomalies/detect/demand", q.values(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DetectInventory calls GET /api/anomalies/detect/inventory. A zero
// warehouseID scans every warehouse.
func (s *AnomaliesService) DetectInventory(ctx context.Context, warehouseID int) (*domain.Detection, error) {
	var out domain.Detection
	q := query{}.num("warehouse_id", warehouseID)
	if err := s.client.do(ctx, "anomalies", http.MethodGet, "/api/anomalies/detect/inventory", q.values(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Recent calls GET /api/anomalies/recent, newest first. A zero Limit means
// DefaultRecentAnomalies; resolved anomalies are listed only on request.
func (s *AnomaliesService) Recent(ctx context.Context, f domain.AnomalyFilter) ([]domain.Anomaly, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = DefaultRecentAnomalies
	}
	q := query{}.num("limit", limit).flag("resolved", f.Resolved)

	var out []domain.Anomaly
	if err := s.client.do(ctx, "anomalies", http.MethodGet, "/api/anomalies/recent", q.values(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Resolve calls PUT /api/anomalies/:id/resolve.
func (s *AnomaliesService) Resolve(ctx context.Context, id int) (*domain.Message, error) {
	var out domain.Message
	path := "/api/anomalies/" + itoa(id) + "/resolve"
	if err := s.client.do(ctx, "anomalies", http.MethodPut, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
