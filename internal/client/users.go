package client

import (
	"context"
	"net/http"

	"github.com/warefy/supply-chain-client/internal/core/domain"
	"github.com/warefy/supply-chain-client/internal/metrics"
)

// UsersService covers the admin routes under /api/users.
type UsersService service

// List calls GET /api/users. Admin only.
func (s *UsersService) List(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	if err := s.client.do(ctx, "users", http.MethodGet, "/api/users", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get calls GET /api/users/:id.
func (s *UsersService) Get(ctx context.Context, id int) (*domain.User, error) {
	var out domain.User
	if err := s.client.do(ctx, "users", http.MethodGet, "/api/users/"+itoa(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update calls PATCH /api/users/:id.
func (s *UsersService) Update(ctx context.Context, id int, in domain.UserUpdate) (*domain.User, error) {
	var out domain.User
	if err := s.client.do(ctx, "users", http.MethodPatch, "/api/users/"+itoa(id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Usage calls GET /api/users/:id/usage.
func (s *UsersService) Usage(ctx context.Context, id int) (*domain.Usage, error) {
	var out domain.Usage
	if err := s.client.do(ctx, "users", http.MethodGet, "/api/users/"+itoa(id)+"/usage", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AuditLogs calls GET /api/users/audit/logs. A zero limit uses the
// backend default.
func (s *UsersService) AuditLogs(ctx context.Context, limit int) ([]domain.AuditLog, error) {
	var out []domain.AuditLog
	if err := s.client.do(ctx, "users", http.MethodGet, "/api/users/audit/logs", query{}.num("limit", limit).values(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListWithUsage lists users and fetches each user's usage concurrently. A
// user whose usage cannot be fetched gets zero counts; only a failure of the
// list call itself is returned.
func (s *UsersService) ListWithUsage(ctx context.Context) ([]domain.UserWithUsage, error) {
	users, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	log := s.client.log
	return FanOut(ctx, users, s.client.fanOutLimit,
		func(ctx context.Context, u domain.User) (domain.UserWithUsage, error) {
			usage, err := s.Usage(ctx, u.ID)
			if err != nil {
				return domain.UserWithUsage{}, err
			}
			return domain.UserWithUsage{User: u, Usage: *usage}, nil
		},
		func(u domain.User, err error) domain.UserWithUsage {
			metrics.FanOutFallbacksTotal.WithLabelValues("user_usage").Inc()
			log.Warn().Err(err).Int("user_id", u.ID).Msg("usage unavailable, using zero counts")
			return domain.UserWithUsage{User: u, Usage: domain.Usage{UserID: u.ID}}
		},
	), nil
}
