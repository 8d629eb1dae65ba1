package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound            = errors.New("resource not found")
	ErrBackendUnreachable  = errors.New("backend not reachable")
	ErrNoInvoiceSelected   = errors.New("no invoice selected")
	ErrInvalidPayment      = errors.New("payment amount must be a positive number")
	ErrUnsupportedLogoType = errors.New("unsupported logo type; allowed: png, jpg, jpeg, gif, svg")
	ErrLogoTooLarge        = errors.New("logo exceeds maximum allowed size of 5MB")
	ErrEmptySheet          = errors.New("spreadsheet contains no data rows")
	ErrValidationFailed    = errors.New("form validation failed")
)

// APIError is the normalized form of any non-2xx backend response.
// Message carries the human-readable text extracted from the error body,
// or a generic "API Error: <status>" when the body is absent or opaque.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError builds an APIError, substituting the generic message when
// no usable one was found in the response body.
func NewAPIError(status int, message string) *APIError {
	if message == "" {
		message = fmt.Sprintf("API Error: %d", status)
	}
	return &APIError{StatusCode: status, Message: message}
}
