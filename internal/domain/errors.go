package domain

import "errors"

// Domain errors
var (
	ErrSessionNotFound = errors.New("authorization session not found")
	ErrNoDocuments     = errors.New("no documents provided")
	ErrInvalidFile     = errors.New("invalid file")
	ErrEmptyResponse   = errors.New("empty response from model")
)

// ValidationError represents a validation error with field and message information.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}
