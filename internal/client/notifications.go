package client

import (
	"context"
	"net/http"

	"github.com/warefy/supply-chain-client/internal/core/domain"
)

// NotificationsService covers /api/notifications. Provider selection and
// fallback happen on the backend.
type NotificationsService service

// Push calls POST /api/notifications/push.
func (s *NotificationsService) Push(ctx context.Context, in domain.PushNotification) (*domain.NotificationResult, error) {
	return s.send(ctx, "/api/notifications/push", in)
}

// Email calls POST /api/notifications/email.
func (s *NotificationsService) Email(ctx context.Context, in domain.EmailNotification) (*domain.NotificationResult, error) {
	return s.send(ctx, "/api/notifications/email", in)
}

// SMS calls POST /api/notifications/sms.
func (s *NotificationsService) SMS(ctx context.Context, in domain.SMSNotification) (*domain.NotificationResult, error) {
	return s.send(ctx, "/api/notifications/sms", in)
}

func (s *NotificationsService) send(ctx context.Context, path string, in any) (*domain.NotificationResult, error) {
	var out domain.NotificationResult
	if err := s.client.do(ctx, "notifications", http.MethodPost, path, nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
