package service

import (
	"bytes"
	"context"
	"fmt"

	"news-digest/internal/domain"
	apperrors "news-digest/pkg/errors"

	"github.com/gen2brain/go-fitz"
	"golang.org/x/sync/errgroup"
)

// prepareWorkers caps concurrent PDF parses; MuPDF is CPU-bound.
const prepareWorkers = 4

var pdfMagic = []byte("%PDF-")

// DocumentService validates the upload queue before it reaches the
// orchestrator: media type, size bound, and a real parse to reject
// corrupt files early and record the page count.
type DocumentService struct {
	maxFileSize int64
	logger      domain.Logger
}

func NewDocumentService(maxFileSize int64, logger domain.Logger) *DocumentService {
	return &DocumentService{
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// Prepare validates every document in place, filling PageCount. The
// first failing document fails the whole queue.
func (s *DocumentService) Prepare(ctx context.Context, docs []*domain.UploadedDocument) error {
	if len(docs) == 0 {
		return apperrors.NewValidationError("at least one PDF file is required")
	}

	sem := make(chan struct{}, prepareWorkers)
	g, gctx := errgroup.WithContext(ctx)
	for _, doc := range docs {
		doc := doc
		g.Go(func() error {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-gctx.Done():
				return gctx.Err()
			}
			return s.validate(doc)
		})
	}
	return g.Wait()
}

func (s *DocumentService) validate(doc *domain.UploadedDocument) error {
	if doc.MIMEType != "application/pdf" {
		return apperrors.NewValidationError(
			fmt.Sprintf("unsupported media type for %s", doc.DisplayName),
			"only application/pdf uploads are accepted",
		)
	}
	if len(doc.Data) == 0 {
		return apperrors.NewValidationError(fmt.Sprintf("%s is empty", doc.DisplayName))
	}
	if s.maxFileSize > 0 && doc.SizeBytes > s.maxFileSize {
		return apperrors.NewValidationError(
			fmt.Sprintf("%s exceeds the size limit", doc.DisplayName),
			fmt.Sprintf("limit is %d bytes", s.maxFileSize),
		)
	}
	if !bytes.HasPrefix(doc.Data, pdfMagic) {
		return apperrors.NewValidationError(fmt.Sprintf("%s is not a valid PDF", doc.DisplayName))
	}

	parsed, err := fitz.NewFromMemory(doc.Data)
	if err != nil {
		return apperrors.NewValidationError(
			fmt.Sprintf("%s could not be parsed as a PDF", doc.DisplayName),
			err.Error(),
		)
	}
	defer parsed.Close()

	doc.PageCount = parsed.NumPage()
	s.logger.Debug("Validated upload", "name", doc.DisplayName, "pages", doc.PageCount, "bytes", doc.SizeBytes)
	return nil
}
