package client

import (
	"fmt"
	"net/http"

	"github.com/warefy/supply-chain-client/internal/core/domain"
	"github.com/warefy/supply-chain-client/internal/core/ports"
)

// bearerTransport reads the session token before each request and, when one
// is stored, sends it as "Authorization: Bearer <token>".
type bearerTransport struct {
	base  http.RoundTripper
	store ports.SessionStore
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := t.store.Get(req.Context(), domain.TokenKey)
	if err != nil {
		if req.Body != nil {
			req.Body.Close()
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrSessionStore, err)
	}

	if token != "" {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return t.transport().RoundTrip(req)
}

func (t *bearerTransport) transport() http.RoundTripper {
	if t.base != nil {
		return t.base
	}
	return http.DefaultTransport
}
