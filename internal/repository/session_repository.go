package repository

import (
	"sync"
	"time"

	"news-digest/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// SessionRepository is an in-memory domain.SessionStore. Credentials are
// process-local: a restart requires re-authorization, which matches the
// one-way nature of the spreadsheet export.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*domain.AuthSession
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		sessions: make(map[string]*domain.AuthSession),
	}
}

// Create stores the exchanged token under a fresh opaque id.
func (r *SessionRepository) Create(token *oauth2.Token) *domain.AuthSession {
	session := &domain.AuthSession{
		ID:        uuid.NewString(),
		Token:     token,
		CreatedAt: time.Now(),
	}

	r.mu.Lock()
	r.sessions[session.ID] = session
	r.mu.Unlock()

	return session
}

func (r *SessionRepository) Get(id string) (*domain.AuthSession, error) {
	if id == "" {
		return nil, domain.ErrSessionNotFound
	}

	r.mu.RLock()
	session, ok := r.sessions[id]
	r.mu.RUnlock()

	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func (r *SessionRepository) Delete(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}
