package client

import (
	"context"
	"net/http"

	"github.com/warefy/supply-chain-client/internal/core/domain"
)

// ReportsService covers /api/reports.
type ReportsService service

// Dashboard calls GET /api/reports/dashboard.
func (s *ReportsService) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	var out domain.DashboardStats
	if err := s.client.do(ctx, "reports", http.MethodGet, "/api/reports/dashboard", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// IntegrationsService covers /api/integrations.
type IntegrationsService service

// List calls GET /api/integrations.
func (s *IntegrationsService) List(ctx context.Context) ([]domain.Integration, error) {
	var out []domain.Integration
	if err := s.client.do(ctx, "integrations", http.MethodGet, "/api/integrations", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create calls POST /api/integrations.
func (s *IntegrationsService) Create(ctx context.Context, in domain.IntegrationCreate) (*domain.Integration, error) {
	var out domain.Integration
	if err := s.client.do(ctx, "integrations", http.MethodPost, "/api/integrations", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete calls DELETE /api/integrations/:id.
func (s *IntegrationsService) Delete(ctx context.Context, id int) (*domain.Message, error) {
	var out domain.Message
	if err := s.client.do(ctx, "integrations", http.MethodDelete, "/api/integrations/"+itoa(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
