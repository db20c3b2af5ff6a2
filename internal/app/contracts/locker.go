package contracts

import (
	"context"
	"time"
)

// LockerService single-flights expensive work across instances via redis.
type LockerService interface {
	TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error)
	Unlock(ctx context.Context, key, lockValue string) error
}
