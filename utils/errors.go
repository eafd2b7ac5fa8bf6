package utils

import "errors"

// CustomError carries an HTTP status code alongside the message.
type CustomError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
}

func (e *CustomError) Error() string {
	return e.Message
}

// NewCustomError is a helper to build a CustomError.
func NewCustomError(statusCode int, message string) *CustomError {
	return &CustomError{StatusCode: statusCode, Message: message}
}

// Soft-failure taxonomy for the enrichment collaborators. These never reach
// the HTTP layer; services log them and degrade the affected field.
var (
	ErrServiceUnavailable = errors.New("service unavailable: missing API key")
	ErrNotFound           = errors.New("no results")
	ErrQuotaExceeded      = errors.New("quota exceeded")
)
