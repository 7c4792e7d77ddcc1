package ports

import "context"

// SessionStore is the client's analogue of browser local storage: a flat
// string key/value space holding the session token and username.
type SessionStore interface {
	// Get returns the value stored under key, or "" when nothing is stored.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
