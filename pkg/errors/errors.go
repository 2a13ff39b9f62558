package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeUnsupported means the URL's hostname is not an accepted portal.
	// Rejected before any network call is attempted.
	ErrorTypeUnsupported ErrorType = "unsupported"
	// ErrorTypeValidation means the URL belongs to a known portal but has the
	// wrong shape for a listing page
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeNetwork represents fetch failures (timeout, non-OK status)
	ErrorTypeNetwork ErrorType = "network"
	// ErrorTypeParsing represents HTML/JSON parsing errors
	ErrorTypeParsing ErrorType = "parsing"
)

// ScrapeError is an extraction-pipeline error carrying the portal it came
// from and a user-presentable message.
type ScrapeError struct {
	Type    ErrorType
	Portal  string
	Message string
	Err     error
	Time    time.Time
}

// Error implements the error interface
func (e *ScrapeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %s - %v", e.Type, e.Portal, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Type, e.Portal, e.Message)
}

// Unwrap returns the underlying error
func (e *ScrapeError) Unwrap() error {
	return e.Err
}

// New creates a new ScrapeError
func New(errType ErrorType, portal, message string, err error) *ScrapeError {
	return &ScrapeError{
		Type:    errType,
		Portal:  portal,
		Message: message,
		Err:     err,
		Time:    time.Now(),
	}
}

// NewUnsupported creates an error for a hostname outside the accepted portals
func NewUnsupported(message string) *ScrapeError {
	return New(ErrorTypeUnsupported, "", message, nil)
}

// NewValidation creates a new validation error
func NewValidation(portal, message string) *ScrapeError {
	return New(ErrorTypeValidation, portal, message, nil)
}

// NewNetwork creates a new network error
func NewNetwork(portal, message string, err error) *ScrapeError {
	return New(ErrorTypeNetwork, portal, message, err)
}

// NewParsing creates a new parsing error
func NewParsing(portal, message string, err error) *ScrapeError {
	return New(ErrorTypeParsing, portal, message, err)
}

// TypeOf returns the ErrorType of err when it is (or wraps) a ScrapeError,
// and an empty type otherwise.
func TypeOf(err error) ErrorType {
	var se *ScrapeError
	if errors.As(err, &se) {
		return se.Type
	}
	return ""
}

// MessageOf returns the user-presentable message of err when it is a
// ScrapeError, falling back to err.Error().
func MessageOf(err error) string {
	var se *ScrapeError
	if errors.As(err, &se) {
		return se.Message
	}
	return err.Error()
}
