package handler

import (
	"net/http"

	"news-digest/internal/domain"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

// AuthHandler drives the OAuth2 authorization-code flow for the
// spreadsheet scope. The cookie holds only opaque ids; credentials stay
// in the injected session store.
type AuthHandler struct {
	authService domain.AuthService
	cookies     *sessions.CookieStore
	logger      domain.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService domain.AuthService, cookies *sessions.CookieStore, logger domain.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookies:     cookies,
		logger:      logger,
	}
}

// Login redirects to the consent screen with a state nonce pinned in the
// cookie for the callback to verify.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	state := uuid.NewString()

	cookie, _ := h.cookies.Get(r, sessionCookieName)
	cookie.Values["oauth_state"] = state
	if err := cookie.Save(r, w); err != nil {
		h.logger.Error("Failed to persist oauth state", err)
		writeError(w, http.StatusInternalServerError, "could not start authorization")
		return
	}

	http.Redirect(w, r, h.authService.LoginURL(state), http.StatusFound)
}

// Callback verifies the state nonce, exchanges the code, and binds the
// resulting session to the cookie.
func (h *AuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	cookie, _ := h.cookies.Get(r, sessionCookieName)

	expectedState, _ := cookie.Values["oauth_state"].(string)
	if expectedState == "" || r.URL.Query().Get("state") != expectedState {
		writeError(w, http.StatusBadRequest, "state mismatch")
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		writeError(w, http.StatusBadRequest, "authorization code missing")
		return
	}

	session, err := h.authService.Exchange(r.Context(), code)
	if err != nil {
		h.logger.Error("Authorization code exchange failed", err)
		writeError(w, http.StatusUnauthorized, "authorization failed")
		return
	}

	delete(cookie.Values, "oauth_state")
	cookie.Values["sid"] = session.ID
	if err := cookie.Save(r, w); err != nil {
		h.logger.Error("Failed to persist session cookie", err)
		writeError(w, http.StatusInternalServerError, "could not establish session")
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

// Logout clears the stored credential and expires the cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	cookie, _ := h.cookies.Get(r, sessionCookieName)

	if sid, ok := cookie.Values["sid"].(string); ok {
		h.authService.Logout(sid)
	}

	delete(cookie.Values, "sid")
	cookie.Options.MaxAge = -1
	if err := cookie.Save(r, w); err != nil {
		h.logger.Error("Failed to expire session cookie", err)
	}

	writeJSON(w, http.StatusOK, map[string]bool{"logged_out": true})
}

// Status reports whether the request carries a live authorization session.
func (h *AuthHandler) Status(w http.ResponseWriter, r *http.Request) {
	sessionID := GetSessionIDFromContext(r)
	writeJSON(w, http.StatusOK, map[string]bool{"authorized": h.authService.Authorized(sessionID)})
}
