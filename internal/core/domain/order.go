package domain

import "time"

// OrderItem is a line of an order.
type OrderItem struct {
	ID        int    `json:"id,omitempty"`
	OrderID   int    `json:"order_id,omitempty"`
	SKU       string `json:"sku"`
	Quantity  int    `json:"quantity"`
	UnitPrice Money  `json:"unit_price"`
}

// Order is a customer order.
type Order struct {
	ID              int         `json:"id"`
	CustomerName    string      `json:"customer_name"`
	CustomerEmail   string      `json:"customer_email,omitempty"`
	ShippingAddress string      `json:"shipping_address,omitempty"`
	Status          string      `json:"status"`
	TotalAmount     Money       `json:"total_amount"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
	Items           []OrderItem `json:"items"`
}

// OrderCreate is the payload of POST /api/orders.
type OrderCreate struct {
	CustomerName    string      `json:"customer_name"`
	CustomerEmail   string      `json:"customer_email,omitempty"`
	ShippingAddress string      `json:"shipping_address,omitempty"`
	Status          string      `json:"status,omitempty"`
	Items           []OrderItem `json:"items"`
}

// OrderUpdate is the payload of PATCH /api/orders/:id.
type OrderUpdate struct {
	Status          *string `json:"status,omitempty"`
	ShippingAddress *string `json:"shipping_address,omitempty"`
}

// OrderFilter narrows GET /api/orders.
type OrderFilter struct {
	Status string
	Limit  int
}
