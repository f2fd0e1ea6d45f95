// Package handler provides HTTP handlers for the API.
package handler

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"news-digest/internal/domain"

	"github.com/google/uuid"
)

// multipartMemoryLimit caps how much of the multipart body stays in
// memory before spilling to temp files.
const multipartMemoryLimit = 32 << 20

// DigestHandler handles the upload-and-extract flow.
type DigestHandler struct {
	documentService domain.DocumentService
	digestService   domain.DigestService
	logger          domain.Logger
}

// NewDigestHandler creates a new digest handler
func NewDigestHandler(documentService domain.DocumentService, digestService domain.DigestService, logger domain.Logger) *DigestHandler {
	return &DigestHandler{
		documentService: documentService,
		digestService:   digestService,
		logger:          logger,
	}
}

// CreateDigest accepts multipart PDF uploads, validates them, and runs
// one orchestrated extraction. The trigger control stays disabled on the
// client while a request is outstanding, so requests arrive one at a time.
func (h *DigestHandler) CreateDigest(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	defer func() {
		// Temp files from large uploads; cleanup failure is not actionable.
		_ = r.MultipartForm.RemoveAll()
	}()

	fileHeaders := r.MultipartForm.File["files"]
	if len(fileHeaders) == 0 {
		writeError(w, http.StatusBadRequest, "at least one PDF file is required")
		return
	}

	docs := make([]*domain.UploadedDocument, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		file, err := fh.Open()
		if err != nil {
			writeError(w, http.StatusBadRequest, "could not read uploaded file "+fh.Filename)
			return
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			writeError(w, http.StatusBadRequest, "could not read uploaded file "+fh.Filename)
			return
		}

		docs = append(docs, &domain.UploadedDocument{
			ID:          uuid.NewString(),
			DisplayName: fh.Filename,
			Data:        data,
			MIMEType:    resolveMIMEType(fh.Header.Get("Content-Type"), fh.Filename),
			SizeBytes:   int64(len(data)),
		})
	}

	if err := h.documentService.Prepare(r.Context(), docs); err != nil {
		h.logger.Warn("Upload validation failed", "error", err)
		writeAppError(w, err)
		return
	}

	items, err := h.digestService.Digest(r.Context(), docs)
	if err != nil {
		h.logger.Error("Digest request failed", err, "documents", len(docs))
		writeAppError(w, err)
		return
	}

	// Payloads are not echoed back; strip them before responding.
	for _, doc := range docs {
		doc.Data = nil
	}

	writeJSON(w, http.StatusOK, domain.DigestResult{
		Items:     items,
		Count:     len(items),
		Documents: docs,
	})
}

// GetTaxonomy returns the fixed classification contract for the client
// to render its legend.
func (h *DigestHandler) GetTaxonomy(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"sections": domain.Taxonomy,
		"fallback": domain.FallbackSection,
	})
}

// resolveMIMEType trusts the part header when present; browsers
// occasionally send PDFs as octet-stream, so fall back to the extension.
func resolveMIMEType(headerType, filename string) string {
	if headerType != "" && headerType != "application/octet-stream" {
		return headerType
	}
	if strings.EqualFold(filepath.Ext(filename), ".pdf") {
		return "application/pdf"
	}
	if headerType == "" {
		return "application/octet-stream"
	}
	return headerType
}
