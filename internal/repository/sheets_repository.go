package repository

import (
	"context"
	"fmt"

	"news-digest/internal/domain"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsRepository implements domain.SheetAppender against the Google
// Sheets API. One append call per invocation; the token source refreshes
// the session credential when it has expired.
type SheetsRepository struct {
	oauthConfig   *oauth2.Config
	spreadsheetID string
	sheetRange    string
	logger        domain.Logger
}

func NewSheetsRepository(oauthConfig *oauth2.Config, spreadsheetID, sheetRange string, logger domain.Logger) *SheetsRepository {
	return &SheetsRepository{
		oauthConfig:   oauthConfig,
		spreadsheetID: spreadsheetID,
		sheetRange:    sheetRange,
		logger:        logger,
	}
}

// Append writes the given rows below the configured range and returns
// the number of rows written.
func (r *SheetsRepository) Append(ctx context.Context, session *domain.AuthSession, rows [][]interface{}) (int, error) {
	if r.spreadsheetID == "" {
		return 0, fmt.Errorf("SPREADSHEET_ID is not configured")
	}

	service, err := sheets.NewService(ctx, option.WithTokenSource(r.oauthConfig.TokenSource(ctx, session.Token)))
	if err != nil {
		return 0, fmt.Errorf("unable to create sheets service: %w", err)
	}

	valueRange := &sheets.ValueRange{Values: rows}
	resp, err := service.Spreadsheets.Values.
		Append(r.spreadsheetID, r.sheetRange, valueRange).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return 0, fmt.Errorf("failed to append rows: %w", err)
	}

	appended := len(rows)
	if resp.Updates != nil && resp.Updates.UpdatedRows > 0 {
		appended = int(resp.Updates.UpdatedRows)
	}
	r.logger.Info("Appended rows to spreadsheet", "spreadsheet_id", r.spreadsheetID, "rows", appended)
	return appended, nil
}
