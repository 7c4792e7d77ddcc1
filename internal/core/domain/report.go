package domain

import "time"

// NamedValue is a chart-ready label/value pair.
type NamedValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// DailyAmount is one point of the sales trend.
type DailyAmount struct {
	Date   string `json:"date"`
	Amount Money  `json:"amount"`
}

// DashboardStats is the body of GET /api/reports/dashboard.
type DashboardStats struct {
	TotalRevenue            Money         `json:"total_revenue"`
	TotalOrders             int           `json:"total_orders"`
	LowStockCount           int           `json:"low_stock_count"`
	SalesTrend              []DailyAmount `json:"sales_trend"`
	TopItems                []NamedValue  `json:"top_items"`
	OrderStatusDistribution []NamedValue  `json:"order_status_distribution"`
}

// Integration is a configured third-party connector.
type Integration struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	APIKey     string    `json:"api_key"`
	APISecret  string    `json:"api_secret,omitempty"`
	WebhookURL string    `json:"webhook_url,omitempty"`
	Status     string    `json:"status"`
	Settings   string    `json:"settings,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// IntegrationCreate is the payload of POST /api/integrations.
type IntegrationCreate struct {
	Name       string `json:"name"`
	APIKey     string `json:"api_key"`
	APISecret  string `json:"api_secret,omitempty"`
	WebhookURL string `json:"webhook_url,omitempty"`
	Status     string `json:"status,omitempty"`
	Settings   string `json:"settings,omitempty"`
}

// Health is the body of GET /health.
type Health struct {
	Status    string `json:"status"`
	Database  string `json:"database,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}
