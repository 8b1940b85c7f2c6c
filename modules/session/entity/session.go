package entity

import (
	"time"

	"event-portal/core/backend"

	"github.com/google/uuid"
)

// Session is the per-visitor state: the signed-in user, the cached company and the last events page.
// Each slice is replaced whole by the reducers and persisted on its own.
type Session struct {
	ID       uuid.UUID
	Hydrated bool

	User  *backend.User
	Token string

	Company *backend.Company
	Events  *backend.EventPage
}

func (s *Session) SignedIn() bool {
	return s != nil && s.User != nil
}

func (s *Session) Role() backend.Role {
	if !s.SignedIn() {
		return ""
	}
	return s.User.Role
}

// Record is the persisted user slice.
type Record struct {
	User  *backend.User `json:"user"`
	Token string        `json:"token"`
}

// Snapshot is one persisted company or events slice.
type Snapshot struct {
	SessionID uuid.UUID `db:"session_id"`
	Kind      string    `db:"kind"`
	Payload   string    `db:"payload"` // JSON text
	UpdatedAt time.Time `db:"updated_at"`
}
