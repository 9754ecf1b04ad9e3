package sessionstore

import (
	"context"
	"sync"
	"time"

	"intake-service/internal/app/contracts"
	"intake-service/internal/app/services/core/survey"
	"intake-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type storedSession struct {
	data      []byte
	expiresAt time.Time
}

func (s storedSession) expired(now time.Time) bool {
	return !s.expiresAt.IsZero() && !now.Before(s.expiresAt)
}

type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]storedSession
	now      func() time.Time
}

// NewMemoryStore keeps JSON copies of sessions in process, so callers never
// share a session value.
func NewMemoryStore(now func() time.Time) contracts.IntakeSessionStore {
	if now == nil {
		now = time.Now
	}
	return &memoryStore{
		sessions: make(map[string]storedSession),
		now:      now,
	}
}

func (s *memoryStore) Save(ctx context.Context, session *survey.Session, exp time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	stored := storedSession{data: data}
	if exp > 0 {
		stored.expiresAt = s.now().Add(exp)
	}

	s.mu.Lock()
	s.sessions[session.ID] = stored
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) Find(ctx context.Context, sessionID string) (*survey.Session, error) {
	s.mu.RLock()
	stored, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	now := s.now()
	if stored.expired(now) {
		s.removeExpired(sessionID, now)
		return nil, nil
	}

	session := new(survey.Session)
	if err := json.Unmarshal(stored.data, session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

// removeExpired re-reads the entry under the write lock so a session saved
// after the expired read survives.
func (s *memoryStore) removeExpired(sessionID string, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if current, ok := s.sessions[sessionID]; ok && current.expired(now) {
		delete(s.sessions, sessionID)
	}
}

func (s *memoryStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	return nil
}
