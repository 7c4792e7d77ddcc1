package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "warefy:session"

// SessionStore keeps session state in Redis so several processes (CLI runs,
// workers on different hosts) can share one login.
// Key format: warefy:session:<namespace>:<key>
type SessionStore struct {
	client    *redis.Client
	namespace string
	ttl       time.Duration
}

// NewSessionStore wraps client. A ttl of zero stores keys without expiry.
func NewSessionStore(client *redis.Client, namespace string, ttl time.Duration) *SessionStore {
	if namespace == "" {
		namespace = "default"
	}
	return &SessionStore{client: client, namespace: namespace, ttl: ttl}
}

func (s *SessionStore) Get(ctx context.Context, key string) (string, error) {
	v, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("session get %s: %w", key, err)
	}
	return v, nil
}

func (s *SessionStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.key(key), value, s.ttl).Err(); err != nil {
		return fmt.Errorf("session set %s: %w", key, err)
	}
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("session delete %s: %w", key, err)
	}
	return nil
}

func (s *SessionStore) key(k string) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, s.namespace, k)
}
