package domain

import "time"

// Keys under which session state is kept in a SessionStore. They match the
// dashboard's browser local storage keys so that stored sessions are portable.
const (
	TokenKey    = "token"
	UsernameKey = "username"
)

// RoleAdmin is the role baked into locally issued demo tokens.
const RoleAdmin = "admin"

// DemoTokenTTL is how long a demo token claims to be valid.
const DemoTokenTTL = 24 * time.Hour

// AuthState is the position of a client in the login state machine.
type AuthState int

const (
	StateAnonymous AuthState = iota
	StateAuthenticating
	StateAuthenticated
)

func (s AuthState) String() string {
	switch s {
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// Session is what a successful login leaves behind.
type Session struct {
	Token    string
	Username string
}

// DemoClaims is the payload of a demo token. Exp is in Unix milliseconds,
// the same unit the dashboard uses for its own timestamps.
type DemoClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Exp      int64  `json:"exp"`
}

// SessionInfo describes the stored session as far as the client can tell
// without asking the backend. Expiry is reported, never enforced.
type SessionInfo struct {
	Username  string    `json:"username"`
	Role      string    `json:"role,omitempty"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	Demo      bool      `json:"demo"`
	Expired   bool      `json:"expired"`
}

// LoginResponse is the body returned by POST /api/auth/login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
