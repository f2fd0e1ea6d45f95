package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"news-digest/internal/domain"
	apperrors "news-digest/pkg/errors"

	"google.golang.org/api/googleapi"
)

const (
	// maxAttempts bounds the retry loop: 4 total attempts with doubling
	// delays of 5s, 10s, 20s between them. The 4th failure is terminal.
	maxAttempts    = 4
	initialBackoff = 5 * time.Second
)

// transientMarkers is the documented substring trigger set for overload
// detection when the SDK does not surface a structured status code.
var transientMarkers = []string{"503", "unavailable", "high demand", "overloaded"}

// DigestService is the request orchestrator: it sends one combined
// request to the content service, absorbs transient overload with
// bounded exponential backoff, and enforces the declared output shape.
// No state survives between invocations.
type DigestService struct {
	generator domain.ContentGenerator
	logger    domain.Logger

	// wait is swapped out in tests to record delays without sleeping.
	wait func(ctx context.Context, d time.Duration) error
}

func NewDigestService(generator domain.ContentGenerator, logger domain.Logger) *DigestService {
	return &DigestService{
		generator: generator,
		logger:    logger,
		wait:      waitContext,
	}
}

// Digest runs one orchestration: validate inputs, dispatch with retry,
// parse the response against the declared schema. An empty parsed list
// is a legitimate success (no exam-relevant content found).
func (s *DigestService) Digest(ctx context.Context, docs []*domain.UploadedDocument) ([]domain.NewsItem, error) {
	if s.generator == nil {
		return nil, apperrors.NewConfigurationError("content service credential is not configured")
	}
	if len(docs) == 0 {
		return nil, apperrors.NewValidationError("at least one document is required")
	}

	raw, err := s.generateWithRetry(ctx, docs)
	if err != nil {
		return nil, err
	}

	items := []domain.NewsItem{}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.logger.Error("Content service returned a body that violates its schema", err)
		return nil, apperrors.NewFormatError("service response does not match the declared schema", err)
	}

	s.logger.Info("Digest complete", "documents", len(docs), "items", len(items))
	return items, nil
}

func (s *DigestService) generateWithRetry(ctx context.Context, docs []*domain.UploadedDocument) (string, error) {
	instruction := BuildInstruction()
	delay := initialBackoff
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		raw, err := s.generator.Generate(ctx, docs, instruction)
		if err == nil {
			return raw, nil
		}
		if !IsTransient(err) {
			return "", apperrors.NewTerminalError("content generation failed", err)
		}

		lastErr = err
		if attempt == maxAttempts {
			break
		}

		s.logger.Warn("Content service overloaded, retrying", "attempt", attempt, "delay", delay.String())
		if waitErr := s.wait(ctx, delay); waitErr != nil {
			return "", apperrors.NewTerminalError("canceled while waiting to retry", waitErr)
		}
		delay *= 2
	}

	return "", apperrors.NewTerminalError("content service unavailable after retries", lastErr)
}

// IsTransient reports whether an error is a retryable overload signal.
// A structured googleapi status code wins; the substring trigger set is
// the fallback for errors the SDK surfaces as plain text.
func IsTransient(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusServiceUnavailable || apiErr.Code == http.StatusTooManyRequests
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range transientMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// waitContext sleeps for d unless the context ends first.
func waitContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
