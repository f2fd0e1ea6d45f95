package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"news-digest/internal/domain"

	"github.com/gorilla/sessions"
)

type MockAuthService struct {
	loginURLState string
	session       *domain.AuthSession
	exchangeErr   error
	authorizedIDs map[string]bool
	loggedOut     []string
}

func (m *MockAuthService) LoginURL(state string) string {
	m.loginURLState = state
	return "https://accounts.example.com/consent?state=" + state
}

func (m *MockAuthService) Exchange(ctx context.Context, code string) (*domain.AuthSession, error) {
	if m.exchangeErr != nil {
		return nil, m.exchangeErr
	}
	return m.session, nil
}

func (m *MockAuthService) Logout(sessionID string) {
	m.loggedOut = append(m.loggedOut, sessionID)
}

func (m *MockAuthService) Authorized(sessionID string) bool {
	return m.authorizedIDs[sessionID]
}

func newTestCookieStore() *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte("test-secret"))
	store.Options.HttpOnly = true
	store.Options.Path = "/"
	return store
}

func TestLogin_RedirectsWithState(t *testing.T) {
	authService := &MockAuthService{}
	h := NewAuthHandler(authService, newTestCookieStore(), NewMockHandlerLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/login", nil)
	rr := httptest.NewRecorder()
	h.Login(rr, req)

	if rr.Code != http.StatusFound {
		t.Fatalf("expected status %d, got %d", http.StatusFound, rr.Code)
	}
	location := rr.Header().Get("Location")
	if !strings.Contains(location, "state="+authService.loginURLState) {
		t.Fatalf("expected redirect carrying the state nonce, got %s", location)
	}
	if authService.loginURLState == "" {
		t.Fatal("expected a non-empty state nonce")
	}
	if len(rr.Result().Cookies()) == 0 {
		t.Fatal("expected the state nonce to be pinned in a cookie")
	}
}

func TestCallback_StateMismatch(t *testing.T) {
	h := NewAuthHandler(&MockAuthService{}, newTestCookieStore(), NewMockHandlerLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/callback?state=forged&code=abc", nil)
	rr := httptest.NewRecorder()
	h.Callback(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestLoginCallback_RoundTrip(t *testing.T) {
	authService := &MockAuthService{session: &domain.AuthSession{ID: "session-9"}}
	store := newTestCookieStore()
	h := NewAuthHandler(authService, store, NewMockHandlerLogger())

	// Step 1: login pins the state nonce.
	loginReq := httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/login", nil)
	loginRR := httptest.NewRecorder()
	h.Login(loginRR, loginReq)
	state := authService.loginURLState

	// Step 2: callback with the same state and the pinned cookie.
	callbackReq := httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/callback?state="+state+"&code=auth-code", nil)
	for _, c := range loginRR.Result().Cookies() {
		callbackReq.AddCookie(c)
	}
	callbackRR := httptest.NewRecorder()
	h.Callback(callbackRR, callbackReq)

	if callbackRR.Code != http.StatusFound {
		t.Fatalf("expected status %d, got %d: %s", http.StatusFound, callbackRR.Code, callbackRR.Body.String())
	}

	// Step 3: the session cookie now resolves through the middleware.
	statusReq := httptest.NewRequest(http.MethodGet, "/api/v1/auth/status", nil)
	for _, c := range callbackRR.Result().Cookies() {
		statusReq.AddCookie(c)
	}
	authService.authorizedIDs = map[string]bool{"session-9": true}

	var resolved string
	mw := SessionMiddleware(store)
	mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resolved = GetSessionIDFromContext(r)
	})).ServeHTTP(httptest.NewRecorder(), statusReq)

	if resolved != "session-9" {
		t.Fatalf("expected middleware to resolve session-9, got %q", resolved)
	}
}

func TestCallback_MissingCode(t *testing.T) {
	store := newTestCookieStore()
	authService := &MockAuthService{}
	h := NewAuthHandler(authService, store, NewMockHandlerLogger())

	loginRR := httptest.NewRecorder()
	h.Login(loginRR, httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/login", nil))
	state := authService.loginURLState

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/callback?state="+state, nil)
	for _, c := range loginRR.Result().Cookies() {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	h.Callback(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestStatus_Unauthorized(t *testing.T) {
	h := NewAuthHandler(&MockAuthService{}, newTestCookieStore(), NewMockHandlerLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/status", nil)
	rr := httptest.NewRecorder()
	h.Status(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"authorized":false`) {
		t.Fatalf("unexpected payload: %s", rr.Body.String())
	}
}

func TestLogout_ClearsSession(t *testing.T) {
	authService := &MockAuthService{session: &domain.AuthSession{ID: "session-9"}}
	store := newTestCookieStore()
	h := NewAuthHandler(authService, store, NewMockHandlerLogger())

	loginRR := httptest.NewRecorder()
	h.Login(loginRR, httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/login", nil))
	state := authService.loginURLState

	callbackReq := httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/callback?state="+state+"&code=auth-code", nil)
	for _, c := range loginRR.Result().Cookies() {
		callbackReq.AddCookie(c)
	}
	callbackRR := httptest.NewRecorder()
	h.Callback(callbackRR, callbackReq)

	logoutReq := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	for _, c := range callbackRR.Result().Cookies() {
		logoutReq.AddCookie(c)
	}
	logoutRR := httptest.NewRecorder()
	h.Logout(logoutRR, logoutReq)

	if logoutRR.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, logoutRR.Code)
	}
	if len(authService.loggedOut) != 1 || authService.loggedOut[0] != "session-9" {
		t.Fatalf("expected session-9 to be cleared, got %v", authService.loggedOut)
	}
}
