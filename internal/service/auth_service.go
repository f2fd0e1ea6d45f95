package service

import (
	"context"
	"fmt"

	"news-digest/internal/domain"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/sheets/v4"
)

// NewOAuthConfig builds the OAuth2 configuration for the spreadsheet
// read/write scope. Shared by the auth flow and the Sheets client.
func NewOAuthConfig(cfg domain.Config) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.GetOAuthClientID(),
		ClientSecret: cfg.GetOAuthClientSecret(),
		RedirectURL:  cfg.GetOAuthRedirectURL(),
		Scopes:       []string{sheets.SpreadsheetsScope},
		Endpoint:     google.Endpoint,
	}
}

// AuthService owns the authorization-code exchange and the session
// lifecycle around it.
type AuthService struct {
	oauthConfig *oauth2.Config
	sessions    domain.SessionStore
	logger      domain.Logger
}

func NewAuthService(oauthConfig *oauth2.Config, sessions domain.SessionStore, logger domain.Logger) *AuthService {
	return &AuthService{
		oauthConfig: oauthConfig,
		sessions:    sessions,
		logger:      logger,
	}
}

// LoginURL returns the consent-screen URL carrying the state nonce.
func (s *AuthService) LoginURL(state string) string {
	return s.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// Exchange trades the authorization code for a token and stores it under
// a fresh session.
func (s *AuthService) Exchange(ctx context.Context, code string) (*domain.AuthSession, error) {
	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("authorization code exchange failed: %w", err)
	}

	session := s.sessions.Create(token)
	s.logger.Info("Authorization session established", "session_id", session.ID)
	return session, nil
}

// Logout clears the session; a no-op for unknown ids.
func (s *AuthService) Logout(sessionID string) {
	if sessionID == "" {
		return
	}
	s.sessions.Delete(sessionID)
	s.logger.Info("Authorization session cleared", "session_id", sessionID)
}

// Authorized reports whether the id maps to a stored credential.
func (s *AuthService) Authorized(sessionID string) bool {
	_, err := s.sessions.Get(sessionID)
	return err == nil
}
