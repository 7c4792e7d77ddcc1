package domain

import "time"

// User models an account as returned by the backend.
type User struct {
	ID           int        `json:"id"`
	Email        string     `json:"email"`
	Username     string     `json:"username"`
	FullName     string     `json:"full_name,omitempty"`
	Role         string     `json:"role"`
	IsActive     bool       `json:"is_active"`
	Is2FAEnabled bool       `json:"is_2fa_enabled"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}

// UserCreate is the payload of POST /api/auth/register.
type UserCreate struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required"`
	FullName string `json:"full_name,omitempty"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=admin manager driver viewer"`
	Password string `json:"password" validate:"required,min=6"`
}

// UserUpdate carries the admin-editable fields. Nil fields are left unchanged.
type UserUpdate struct {
	Role         *string `json:"role,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
	Is2FAEnabled *bool   `json:"is_2fa_enabled,omitempty"`
	FullName     *string `json:"full_name,omitempty"`
	Password     *string `json:"password,omitempty"`
}

// Usage counts AI command requests issued by a user.
type Usage struct {
	UserID        int `json:"user_id"`
	TotalRequests int `json:"total_requests"`
	Requests24h   int `json:"requests_24h"`
}

// UserWithUsage pairs a user with its usage. Usage is zero-valued when it
// could not be fetched.
type UserWithUsage struct {
	User
	Usage Usage `json:"usage"`
}

// AuditLog is one entry of the admin audit trail.
type AuditLog struct {
	ID        int       `json:"id"`
	UserID    *int      `json:"user_id,omitempty"`
	Action    string    `json:"action"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
