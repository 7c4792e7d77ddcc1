package domain

import "encoding/json"

// Forecasting models understood by the backend.
const (
	ModelProphet = "prophet"
	ModelLSTM    = "lstm"
	ModelXGBoost = "xgboost"
)

// ForecastRequest is the payload of POST /api/demand/forecast.
type ForecastRequest struct {
	SKU          string `json:"sku"`
	WarehouseID  *int   `json:"warehouse_id,omitempty"`
	ForecastDays int    `json:"forecast_days,omitempty"`
	ModelType    string `json:"model_type,omitempty"`
}

// Forecast is the backend's prediction. Prediction entries are left in the
// shape the model emitted them.
type Forecast struct {
	SKU             string                       `json:"sku"`
	WarehouseID     *int                         `json:"warehouse_id,omitempty"`
	ForecastDays    int                          `json:"forecast_days"`
	ModelType       string                       `json:"model_type"`
	Predictions     []map[string]json.RawMessage `json:"predictions"`
	AccuracyMetrics map[string]float64           `json:"accuracy_metrics,omitempty"`
}

// HistoryFilter narrows GET /api/demand/historical/:sku.
type HistoryFilter struct {
	WarehouseID int
	Days        int
}

// SalesPoint is one day of sales history.
type SalesPoint struct {
	Date     string `json:"date"`
	Quantity int    `json:"quantity"`
	Revenue  Money  `json:"revenue"`
}

// SalesHistory is the body of GET /api/demand/historical/:sku.
type SalesHistory struct {
	SKU          string       `json:"sku"`
	WarehouseID  *int         `json:"warehouse_id,omitempty"`
	DataPoints   int          `json:"data_points"`
	SalesHistory []SalesPoint `json:"sales_history"`
}
