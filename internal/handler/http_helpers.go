package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "news-digest/pkg/errors"
)

type contextKey string

const sessionContextKey contextKey = "session_id"

// sessionCookieName is the browser cookie carrying the opaque
// authorization-session id (never the credential itself).
const sessionCookieName = "digest_session"

// GetSessionIDFromContext extracts the authorization-session id placed
// by the session middleware. Empty when the user never authorized.
func GetSessionIDFromContext(r *http.Request) string {
	id, _ := r.Context().Value(sessionContextKey).(string)
	return id
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// writeAppError maps an application error onto its HTTP status,
// surfacing the typed message when one exists.
func writeAppError(w http.ResponseWriter, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		payload := map[string]string{"error": appErr.Message, "type": string(appErr.Type)}
		if appErr.Details != "" {
			payload["details"] = appErr.Details
		}
		writeJSON(w, appErr.StatusCode, payload)
		return
	}
	writeError(w, apperrors.GetStatusCode(err), err.Error())
}
