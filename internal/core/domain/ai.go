package domain

import (
	"encoding/json"
	"time"
)

// Recommendation contexts accepted by POST /api/ai/recommendations.
const (
	ContextRestocking          = "restocking"
	ContextSupplierAlternative = "supplier_alternative"
	ContextContingency         = "contingency_planning"
)

// RecommendationRequest is the payload of POST /api/ai/recommendations.
type RecommendationRequest struct {
	Context           string                     `json:"context"`
	WarehouseID       *int                       `json:"warehouse_id,omitempty"`
	SKU               string                     `json:"sku,omitempty"`
	AdditionalContext map[string]json.RawMessage `json:"additional_context,omitempty"`
}

// Recommendations is the backend's answer; individual recommendations keep
// the shape the generator produced.
type Recommendations struct {
	Recommendations []map[string]json.RawMessage `json:"recommendations"`
	Reasoning       string                       `json:"reasoning"`
	ConfidenceScore float64                      `json:"confidence_score"`
	GeneratedAt     time.Time                    `json:"generated_at"`
}

// CommandRequest is the chat payload of POST /api/ai/command.
type CommandRequest struct {
	Message string `json:"message" validate:"required"`
}

// CommandResponse is the assistant's reply.
type CommandResponse struct {
	Response string `json:"response"`
}
