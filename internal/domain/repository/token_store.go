package repository

import (
	"context"
	"time"
)

// TokenStore is the key-expiry store behind verification codes and session
// tokens. Namespacing ("verify:", "session:") is applied by callers.
type TokenStore interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// Get reports ok=false when the key is absent or expired.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Del(ctx context.Context, key string) error
}
