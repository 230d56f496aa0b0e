package domain

import (
	"time"

	"github.com/google/uuid"
)

type Session struct {
	ID            uuid.UUID
	Authenticated bool
	Flow          *VotingFlow
	CreatedAt     time.Time
	LastSeenAt    time.Time
}

// Progress is the flow progress annotated with the session's login state.
func (s *Session) Progress() Progress {
	p := s.Flow.Progress()
	p.Authenticated = s.Authenticated
	return p
}
