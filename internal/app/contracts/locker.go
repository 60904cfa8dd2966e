package contracts

import (
	"context"
	"time"
)

// LockerService serializes critical sections across processes. TryLock
// returns an owner value that must be passed back to Unlock; a lock held
// longer than expiration falls off on its own.
type LockerService interface {
	TryLock(ctx context.Context, key string, expiration time.Duration) (acquired bool, lockValue string, err error)
	Unlock(ctx context.Context, key, lockValue string) error
}
