package session

import (
	"context"
	"maps"
	"sync"
	"time"
)

type memoryAttempt struct {
	notes     map[string]string
	expiresAt time.Time
}

// MemoryStore is an in-process Store for single-node deployments and tests.
type MemoryStore struct {
	mu       sync.Mutex
	attempts map[string]memoryAttempt
}

// NewMemoryStore creates an empty in-process Store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{attempts: make(map[string]memoryAttempt)}
}

func (s *MemoryStore) SetNotes(_ context.Context, attemptID string, notes map[string]string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	att, ok := s.attempts[attemptID]
	if !ok || time.Now().After(att.expiresAt) {
		att = memoryAttempt{notes: make(map[string]string, len(notes))}
	}
	maps.Copy(att.notes, notes)
	att.expiresAt = time.Now().Add(ttl)
	s.attempts[attemptID] = att

	return nil
}

func (s *MemoryStore) GetNotes(_ context.Context, attemptID string) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	att, ok := s.attempts[attemptID]
	if !ok || time.Now().After(att.expiresAt) {
		delete(s.attempts, attemptID)
		return nil, ErrAttemptNotFound
	}

	return maps.Clone(att.notes), nil
}

func (s *MemoryStore) Clear(_ context.Context, attemptID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.attempts, attemptID)
	return nil
}
