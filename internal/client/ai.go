package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/warefy/supply-chain-client/internal/core/domain"
)

// AIService covers /api/ai.
type AIService service

// Recommendations calls POST /api/ai/recommendations.
func (s *AIService) Recommendations(ctx context.Context, in domain.RecommendationRequest) (*domain.Recommendations, error) {
	var out domain.Recommendations
	if err := s.client.do(ctx, "ai", http.MethodPost, "/api/ai/recommendations", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Command sends one chat message to the assistant and returns its reply.
// Blank messages are refused before any request is made.
func (s *AIService) Command(ctx context.Context, message string) (*domain.CommandResponse, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("ai command: %w", domain.ErrEmptyMessage)
	}

	var out domain.CommandResponse
	if err := s.client.do(ctx, "ai", http.MethodPost, "/api/ai/command", nil, domain.CommandRequest{Message: message}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
