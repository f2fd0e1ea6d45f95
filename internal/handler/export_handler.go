package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"news-digest/internal/domain"
)

// ExportHandler renders a NewsItem list as a downloadable document or
// table, and syncs it to the configured spreadsheet.
type ExportHandler struct {
	exportService domain.ExportService
	sheetsService domain.SheetsService
	logger        domain.Logger

	// now is swapped out in tests to pin the document date stamp.
	now func() time.Time
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService domain.ExportService, sheetsService domain.SheetsService, logger domain.Logger) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
		sheetsService: sheetsService,
		logger:        logger,
		now:           time.Now,
	}
}

type exportRequest struct {
	Items []domain.NewsItem `json:"items"`
}

func (h *ExportHandler) decodeItems(w http.ResponseWriter, r *http.Request) ([]domain.NewsItem, bool) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	if len(req.Items) == 0 {
		writeError(w, http.StatusBadRequest, "there are no items to export")
		return nil, false
	}
	return req.Items, true
}

// ExportDocument returns the standalone styled HTML document.
func (h *ExportHandler) ExportDocument(w http.ResponseWriter, r *http.Request) {
	items, ok := h.decodeItems(w, r)
	if !ok {
		return
	}

	data, err := h.exportService.RenderDocument(items, h.now())
	if err != nil {
		h.logger.Error("Document export failed", err)
		writeAppError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="current-affairs-digest.html"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// ExportTable returns the CSV export.
func (h *ExportHandler) ExportTable(w http.ResponseWriter, r *http.Request) {
	items, ok := h.decodeItems(w, r)
	if !ok {
		return
	}

	data, err := h.exportService.RenderTable(items)
	if err != nil {
		h.logger.Error("Table export failed", err)
		writeAppError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="current-affairs-digest.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// AppendToSheet writes one row per item to the configured spreadsheet on
// behalf of the cookie's authorization session.
func (h *ExportHandler) AppendToSheet(w http.ResponseWriter, r *http.Request) {
	items, ok := h.decodeItems(w, r)
	if !ok {
		return
	}

	sessionID := GetSessionIDFromContext(r)
	appended, err := h.sheetsService.Append(r.Context(), sessionID, items)
	if err != nil {
		h.logger.Warn("Sheet sync failed", "error", err)
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"appended_rows": appended})
}
