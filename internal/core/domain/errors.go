package domain

import "errors"

var (
	// ErrInvalidCredentials is the uniform login failure. Transport and decoding
	// failures during login wrap it together with their own kind.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTransport         = errors.New("backend unreachable")
	ErrMalformedResponse = errors.New("malformed backend response")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("access forbidden")
	ErrNotFound          = errors.New("resource not found")
	ErrSessionStore      = errors.New("session store unavailable")
	ErrEmptyMessage      = errors.New("message cannot be empty")
	ErrMalformedToken    = errors.New("malformed session token")
)
