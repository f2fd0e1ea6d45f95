package config

import (
	"context"

	"news-digest/internal/domain"
	"news-digest/internal/repository"
	"news-digest/internal/service"
	"news-digest/pkg/logger"

	"github.com/gorilla/sessions"
)

// Container holds all application dependencies
type Container struct {
	Config          domain.Config
	Logger          domain.Logger
	SessionStore    domain.SessionStore
	CookieStore     *sessions.CookieStore
	DocumentService domain.DocumentService
	DigestService   domain.DigestService
	ExportService   domain.ExportService
	SheetsService   domain.SheetsService
	AuthService     domain.AuthService
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	// Content-service client. A missing project id is not fatal at
	// startup: digest requests fail with a configuration error instead.
	var generator domain.ContentGenerator
	if config.GetGoogleProjectID() != "" {
		vertexRepo, err := repository.NewVertexRepository(
			context.Background(),
			config.GetGoogleProjectID(),
			config.GetGoogleLocation(),
			config.GetGeminiModel(),
			appLogger,
		)
		if err != nil {
			appLogger.Error("Failed to initialize Vertex AI client", err)
		} else {
			generator = vertexRepo
		}
	} else {
		appLogger.Warn("GOOGLE_PROJECT_ID not set; digest requests will fail until configured")
	}

	sessionStore := repository.NewSessionRepository()
	oauthConfig := service.NewOAuthConfig(config)

	cookieStore := sessions.NewCookieStore([]byte(config.GetSessionSecret()))
	cookieStore.Options.HttpOnly = true
	cookieStore.Options.Path = "/"

	exportService := service.NewExportService(appLogger)
	sheetsRepo := repository.NewSheetsRepository(oauthConfig, config.GetSpreadsheetID(), config.GetSheetRange(), appLogger)

	return &Container{
		Config:          config,
		Logger:          appLogger,
		SessionStore:    sessionStore,
		CookieStore:     cookieStore,
		DocumentService: service.NewDocumentService(config.GetMaxFileSize(), appLogger),
		DigestService:   service.NewDigestService(generator, appLogger),
		ExportService:   exportService,
		SheetsService:   service.NewSheetsService(sessionStore, sheetsRepo, exportService, appLogger),
		AuthService:     service.NewAuthService(oauthConfig, sessionStore, appLogger),
	}
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}

// GetSessionStore returns the authorization session store
func (c *Container) GetSessionStore() domain.SessionStore {
	return c.SessionStore
}
