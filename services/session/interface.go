package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a session key is absent or expired.
var ErrNotFound = errors.New("session not found or expired")

// Store persists transient flow sessions (booking, deletion, view) as JSON
// under a TTL. Nothing durable ever goes through a Store.
type Store interface {
	Save(ctx context.Context, key string, value any, ttl time.Duration) error
	Load(ctx context.Context, key string, dest any) error
	Delete(ctx context.Context, key string) error
}
