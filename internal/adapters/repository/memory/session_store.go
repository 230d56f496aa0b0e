package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/awards/internal/core/domain"
	"github.com/vncsmyrnk/awards/internal/core/ports"
)

// SessionStore keeps sessions in process memory. A single mutex serializes
// every access, so a session is never mutated by two requests at once.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*domain.Session
}

var _ ports.SessionStore = (*SessionStore)(nil)

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[uuid.UUID]*domain.Session),
	}
}

func (s *SessionStore) Create(ctx context.Context, session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[session.ID]; exists {
		return fmt.Errorf("session %s already exists", session.ID)
	}
	s.sessions[session.ID] = session
	return nil
}

func (s *SessionStore) Update(ctx context.Context, id uuid.UUID, fn func(*domain.Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return domain.ErrSessionNotFound
	}
	return fn(session)
}

func (s *SessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

func (s *SessionStore) DeleteIdle(ctx context.Context, idleSince time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, session := range s.sessions {
		if session.LastSeenAt.Before(idleSince) {
			delete(s.sessions, id)
			n++
		}
	}
	return n, nil
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
