package domain

import (
	"time"

	"golang.org/x/oauth2"
)

// AuthSession holds the OAuth credential obtained from the authorization
// code exchange, keyed by an opaque id. The id is what travels in the
// browser cookie; the token never leaves the server.
type AuthSession struct {
	ID        string
	Token     *oauth2.Token
	CreatedAt time.Time
}

// SessionStore is the explicit credential store injected into handlers.
// Lifecycle: Create on a successful exchange, Get on each spreadsheet
// write, Delete on logout.
type SessionStore interface {
	Create(token *oauth2.Token) *AuthSession
	Get(id string) (*AuthSession, error)
	Delete(id string)
}
