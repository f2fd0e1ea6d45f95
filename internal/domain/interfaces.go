package domain

import (
	"context"
	"time"
)

// DigestService turns a validated upload queue into a categorized
// NewsItem list via one call to the generative-content service.
type DigestService interface {
	Digest(ctx context.Context, docs []*UploadedDocument) ([]NewsItem, error)
}

// ContentGenerator dispatches one structured request (document payloads
// plus instruction text) and returns the raw response body. Retry policy
// lives above this interface, in the digest service.
type ContentGenerator interface {
	Generate(ctx context.Context, docs []*UploadedDocument, instruction string) (string, error)
}

// DocumentService validates uploaded files and fills in PDF metadata.
type DocumentService interface {
	Prepare(ctx context.Context, docs []*UploadedDocument) error
}

// ExportService renders a NewsItem list. All methods are pure: the only
// nondeterminism in RenderDocument is the caller-supplied date stamp.
type ExportService interface {
	RenderDocument(items []NewsItem, generatedAt time.Time) ([]byte, error)
	RenderTable(items []NewsItem) ([]byte, error)
	SheetRows(items []NewsItem) [][]interface{}
}

// SheetsService appends a NewsItem list to the configured spreadsheet on
// behalf of an authorized session. A single write attempt, no retries.
type SheetsService interface {
	Append(ctx context.Context, sessionID string, items []NewsItem) (int, error)
}

// SheetAppender is the spreadsheet API boundary: one append call writing
// the given rows with the caller's credential.
type SheetAppender interface {
	Append(ctx context.Context, session *AuthSession, rows [][]interface{}) (int, error)
}

// AuthService drives the OAuth2 authorization-code flow for the
// spreadsheet scope and owns session lifecycle.
type AuthService interface {
	LoginURL(state string) string
	Exchange(ctx context.Context, code string) (*AuthSession, error)
	Logout(sessionID string)
	Authorized(sessionID string) bool
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetGoogleProjectID() string
	GetGoogleLocation() string
	GetGeminiModel() string
	GetOAuthClientID() string
	GetOAuthClientSecret() string
	GetOAuthRedirectURL() string
	GetSpreadsheetID() string
	GetSheetRange() string
	GetSessionSecret() string
	GetAllowedOrigins() []string
}
