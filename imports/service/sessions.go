package service

import (
	"errors"
	"sync"

	"github.com/gigwell/scheduled-tasks/imports/domain"
)

var ErrSessionNotFound = errors.New("import session not found")

// sessionStore keeps open import sessions in memory. Sessions are transient
// wizard state; they are dropped on restart, matching their discard-on-
// navigation lifetime.
type sessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

func newSessionStore() *sessionStore {
	return &sessionStore{
		sessions: make(map[string]*domain.Session),
	}
}

func (s *sessionStore) put(session *domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = session
}

func (s *sessionStore) get(companyID, sessionID string) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok || session.CompanyID != companyID {
		return nil, ErrSessionNotFound
	}

	return session, nil
}

func (s *sessionStore) delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
}
