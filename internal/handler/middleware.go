package handler

import (
	"context"
	"net/http"

	"github.com/gorilla/sessions"
)

// SessionMiddleware resolves the authorization-session id from the
// signed cookie and places it in the request context. It never rejects:
// routes that require authorization check the store themselves so the
// auth_required error is raised before any network call, not here.
func SessionMiddleware(cookies *sessions.CookieStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Get ignores decode errors for tampered cookies and hands
			// back a fresh session; treat that as "not authorized".
			cookie, _ := cookies.Get(r, sessionCookieName)
			if sid, ok := cookie.Values["sid"].(string); ok && sid != "" {
				ctx := context.WithValue(r.Context(), sessionContextKey, sid)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}
