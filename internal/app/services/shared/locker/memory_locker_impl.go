package locker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"intake-service/internal/app/contracts"
	"intake-service/internal/pkg/exceptions"

	"github.com/google/uuid"
)

type heldLock struct {
	value     string
	expiresAt time.Time
}

type memoryLockService struct {
	mu    sync.Mutex
	locks map[string]heldLock
	now   func() time.Time
}

// NewMemoryLockService keeps locks in process. Use it together with the
// in-memory session store.
func NewMemoryLockService(now func() time.Time) contracts.LockerService {
	if now == nil {
		now = time.Now
	}
	return &memoryLockService{
		locks: make(map[string]heldLock),
		now:   now,
	}
}

func (s *memoryLockService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if held, ok := s.locks[key]; ok && s.now().Before(held.expiresAt) {
		return false, "", nil
	}

	lockValue := uuid.NewString()
	s.locks[key] = heldLock{value: lockValue, expiresAt: s.now().Add(expiration)}
	return true, lockValue, nil
}

func (s *memoryLockService) Unlock(ctx context.Context, key, lockValue string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	held, ok := s.locks[key]
	if !ok {
		return nil
	}
	if held.value != lockValue {
		return exceptions.ErrServerProcess(fmt.Errorf("lock not owned by this client"))
	}
	delete(s.locks, key)
	return nil
}
