package config

import (
	"os"
	"strconv"
	"strings"

	"news-digest/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort        string
	MaxFileSize       int64
	LogLevel          string
	GoogleProjectID   string
	GoogleLocation    string
	GeminiModel       string
	OAuthClientID     string
	OAuthClientSecret string
	OAuthRedirectURL  string
	SpreadsheetID     string
	SheetRange        string
	SessionSecret     string
	AllowedOrigins    []string
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:        getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		MaxFileSize:       getEnvInt64OrDefault("MAX_FILE_SIZE", 20*1024*1024), // 20MB per PDF
		LogLevel:          getEnvOrDefault("LOG_LEVEL", "info"),
		GoogleProjectID:   getEnvOrDefault("GOOGLE_PROJECT_ID", ""),
		GoogleLocation:    getEnvOrDefault("GOOGLE_LOCATION", "us-central1"),
		GeminiModel:       getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash-001"),
		OAuthClientID:     getEnvOrDefault("OAUTH_CLIENT_ID", ""),
		OAuthClientSecret: getEnvOrDefault("OAUTH_CLIENT_SECRET", ""),
		OAuthRedirectURL:  getEnvOrDefault("OAUTH_REDIRECT_URL", "http://localhost:8080/api/v1/auth/google/callback"),
		SpreadsheetID:     getEnvOrDefault("SPREADSHEET_ID", ""),
		SheetRange:        getEnvOrDefault("SHEET_RANGE", "Sheet1!A:F"),
		SessionSecret:     getEnvOrDefault("SESSION_SECRET", "change-me-in-production"),
		AllowedOrigins:    getEnvListOrDefault("ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://localhost:3000"}),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetMaxFileSize returns the maximum allowed size of one uploaded PDF
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetGoogleProjectID returns the Vertex AI project id (the content-service credential)
func (c *AppConfig) GetGoogleProjectID() string {
	return c.GoogleProjectID
}

// GetGoogleLocation returns the Vertex AI region
func (c *AppConfig) GetGoogleLocation() string {
	return c.GoogleLocation
}

// GetGeminiModel returns the generative model name
func (c *AppConfig) GetGeminiModel() string {
	return c.GeminiModel
}

// GetOAuthClientID returns the OAuth2 client id for the Sheets flow
func (c *AppConfig) GetOAuthClientID() string {
	return c.OAuthClientID
}

// GetOAuthClientSecret returns the OAuth2 client secret
func (c *AppConfig) GetOAuthClientSecret() string {
	return c.OAuthClientSecret
}

// GetOAuthRedirectURL returns the OAuth2 redirect URL
func (c *AppConfig) GetOAuthRedirectURL() string {
	return c.OAuthRedirectURL
}

// GetSpreadsheetID returns the target spreadsheet identifier
func (c *AppConfig) GetSpreadsheetID() string {
	return c.SpreadsheetID
}

// GetSheetRange returns the six-column append range
func (c *AppConfig) GetSheetRange() string {
	return c.SheetRange
}

// GetSessionSecret returns the cookie signing secret
func (c *AppConfig) GetSessionSecret() string {
	return c.SessionSecret
}

// GetAllowedOrigins returns the CORS origin allowlist
func (c *AppConfig) GetAllowedOrigins() []string {
	return c.AllowedOrigins
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
