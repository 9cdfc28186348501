// Package auth holds the in-memory session store. Tokens are opaque
// random hex strings whose only meaning is membership in a role map, so a
// restart invalidates every session by construction.
package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Session records when a token was minted and, for user sessions, the
// email presented at login.
type Session struct {
	Role    Role
	Email   string
	Created time.Time
}

// SessionStore keeps admin and user tokens in separate maps so an admin
// check can never be satisfied by a user token.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[Role]map[string]Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: map[Role]map[string]Session{
			RoleAdmin: {},
			RoleUser:  {},
		},
	}
}

// Issue mints a 24-byte random hex token for the role.
func (s *SessionStore) Issue(role Role, email string) (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	token := hex.EncodeToString(buf)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[role][token] = Session{Role: role, Email: email, Created: time.Now()}
	return token, nil
}

// Validate reports whether token is a live session for the given role.
func (s *SessionStore) Validate(token string, role Role) bool {
	if token == "" {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.sessions[role][token]
	return ok
}

// ValidateAny accepts a token of either role (routes open to any
// authenticated caller).
func (s *SessionStore) ValidateAny(token string) bool {
	return s.Validate(token, RoleAdmin) || s.Validate(token, RoleUser)
}

// Revoke drops a token from whichever map holds it.
func (s *SessionStore) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.sessions {
		delete(m, token)
	}
}
