package storage

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/aliskhannn/imtihan/internal/domain/entities"
)

// MemoryStore keeps the session in memory. Sessions are stored serialized
// so callers never share state with the store.
type MemoryStore struct {
	mu   sync.RWMutex
	data []byte
}

// NewMemoryStore creates a new MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns a copy of the saved session.
func (s *MemoryStore) Load(_ context.Context) (*entities.ExamSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.data == nil {
		return nil, ErrSessionNotFound
	}
	return decodeSession(s.data)
}

// Save replaces the saved session.
func (s *MemoryStore) Save(_ context.Context, session *entities.ExamSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
	return nil
}

// Clear removes the saved session.
func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	return nil
}

func decodeSession(data []byte) (*entities.ExamSession, error) {
	var session entities.ExamSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	if session.ChoiceOrder == nil {
		session.ChoiceOrder = make(map[int][]string)
	}
	return &session, nil
}
