package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeNetwork represents page fetch failures
	ErrorTypeNetwork ErrorType = "network"
	// ErrorTypeParsing represents HTML parsing errors
	ErrorTypeParsing ErrorType = "parsing"
	// ErrorTypeRateLimit represents rate limiting errors
	ErrorTypeRateLimit ErrorType = "rate_limit"
	// ErrorTypeCache represents cache-related errors
	ErrorTypeCache ErrorType = "cache"
	// ErrorTypePublisher represents publisher-related errors
	ErrorTypePublisher ErrorType = "publisher"
	// ErrorTypeValidation represents request validation errors
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeConfiguration represents configuration errors
	ErrorTypeConfiguration ErrorType = "configuration"
	// ErrorTypeUnsupportedSite means no site profile matches the page host
	ErrorTypeUnsupportedSite ErrorType = "unsupported_site"
)

// ExtractorError represents an error raised while turning a product link into a record
type ExtractorError struct {
	Type    ErrorType
	Domain  string
	Message string
	Err     error
	Time    time.Time
}

// Error implements the error interface
func (e *ExtractorError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %s - %v", e.Type, e.Domain, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Type, e.Domain, e.Message)
}

// Unwrap returns the underlying error
func (e *ExtractorError) Unwrap() error {
	return e.Err
}

// IsRetryable returns true if the error is retryable
func (e *ExtractorError) IsRetryable() bool {
	switch e.Type {
	case ErrorTypeNetwork:
		return true
	case ErrorTypeRateLimit:
		return false
	case ErrorTypeParsing, ErrorTypeUnsupportedSite:
		return false
	default:
		return false
	}
}

// New creates a new ExtractorError
func New(errType ErrorType, domain, message string, err error) *ExtractorError {
	return &ExtractorError{
		Type:    errType,
		Domain:  domain,
		Message: message,
		Err:     err,
		Time:    time.Now(),
	}
}

// NewNetwork creates a new network error
func NewNetwork(domain, message string, err error) *ExtractorError {
	return New(ErrorTypeNetwork, domain, message, err)
}

// NewParsing creates a new parsing error
func NewParsing(domain, message string, err error) *ExtractorError {
	return New(ErrorTypeParsing, domain, message, err)
}

// NewRateLimit creates a new rate limit error
func NewRateLimit(domain string, duration time.Duration) *ExtractorError {
	message := fmt.Sprintf("rate limited for %v", duration)
	return New(ErrorTypeRateLimit, domain, message, nil)
}

// NewCache creates a new cache error
func NewCache(domain, message string, err error) *ExtractorError {
	return New(ErrorTypeCache, domain, message, err)
}

// NewPublisher creates a new publisher error
func NewPublisher(domain, message string, err error) *ExtractorError {
	return New(ErrorTypePublisher, domain, message, err)
}

// NewValidation creates a new validation error
func NewValidation(domain, message string) *ExtractorError {
	return New(ErrorTypeValidation, domain, message, nil)
}

// NewConfiguration creates a new configuration error
func NewConfiguration(message string, err error) *ExtractorError {
	return New(ErrorTypeConfiguration, "", message, err)
}

// NewUnsupportedSite creates the error returned when no site profile matches domain
func NewUnsupportedSite(domain string) *ExtractorError {
	return New(ErrorTypeUnsupportedSite, domain, "site not supported", nil)
}

// TypeOf returns the ErrorType carried by err, or "" if err is not an ExtractorError
func TypeOf(err error) ErrorType {
	var e *ExtractorError
	if stderrors.As(err, &e) {
		return e.Type
	}
	return ""
}

// Is reports whether err is an ExtractorError of the given type
func Is(err error, errType ErrorType) bool {
	return err != nil && TypeOf(err) == errType
}
