package domain

import (
	"encoding/json"
	"time"
)

// Anomaly is a stored detection result.
type Anomaly struct {
	ID          int                        `json:"id"`
	AnomalyType string                     `json:"anomaly_type"`
	Severity    string                     `json:"severity"`
	EntityType  string                     `json:"entity_type"`
	EntityID    int                        `json:"entity_id"`
	Description string                     `json:"description"`
	DetectedAt  time.Time                  `json:"detected_at"`
	Resolved    bool                       `json:"resolved"`
	Metadata    map[string]json.RawMessage `json:"metadata,omitempty"`
}

// Detection is the body of the detect endpoints. Findings keep the
// detector's own shape.
type Detection struct {
	Anomalies []map[string]json.RawMessage `json:"anomalies"`
	Count     int                          `json:"count"`
	Message   string                       `json:"message,omitempty"`
}

// DemandDetectFilter narrows GET /api/anomalies/detect/demand.
type DemandDetectFilter struct {
	SKU  string
	Days int
}

// AnomalyFilter narrows GET /api/anomalies/recent. The backend lists open
// anomalies unless Resolved is set.
type AnomalyFilter struct {
	Limit    int
	Resolved bool
}

// Message is the generic {"message": ...} acknowledgement body.
type Message struct {
	Message string `json:"message"`
}
