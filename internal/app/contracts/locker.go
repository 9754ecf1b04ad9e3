package contracts

import (
	"context"
	"time"
)

// LockerService serializes updates to one key across requests. TryLock
// returns false without error when another holder owns the lock.
type LockerService interface {
	TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error)
	Unlock(ctx context.Context, key, lockValue string) error
}
