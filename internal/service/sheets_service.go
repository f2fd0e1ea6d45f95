package service

import (
	"context"
	"fmt"

	"news-digest/internal/domain"
	apperrors "news-digest/pkg/errors"
)

// SheetsService guards the one-way spreadsheet export: the session check
// happens before any network call, and the single append attempt is not
// retried (failures surface verbatim to the user).
type SheetsService struct {
	sessions domain.SessionStore
	appender domain.SheetAppender
	exporter domain.ExportService
	logger   domain.Logger
}

func NewSheetsService(sessions domain.SessionStore, appender domain.SheetAppender, exporter domain.ExportService, logger domain.Logger) *SheetsService {
	return &SheetsService{
		sessions: sessions,
		appender: appender,
		exporter: exporter,
		logger:   logger,
	}
}

// Append writes one row per item and returns the number of rows written.
func (s *SheetsService) Append(ctx context.Context, sessionID string, items []domain.NewsItem) (int, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return 0, apperrors.NewAuthRequiredError("connect a Google account before syncing to Sheets")
	}
	if len(items) == 0 {
		return 0, apperrors.NewValidationError("there are no items to sync")
	}

	rows := s.exporter.SheetRows(items)
	appended, err := s.appender.Append(ctx, session, rows)
	if err != nil {
		return 0, fmt.Errorf("spreadsheet append failed: %w", err)
	}
	return appended, nil
}
