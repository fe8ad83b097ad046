package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a typed error in the JWKS resolver
type Error struct {
	Type    ErrorType
	Message string
	// StatusCode is the HTTP status of the failed response, zero if none was received
	StatusCode int
	Err        error
}

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeFetchFailed indicates that a request could not be completed
	ErrorTypeFetchFailed ErrorType = "FetchFailed"
	// ErrorTypeUnexpectedStatus indicates that the server answered with a non-2xx status
	ErrorTypeUnexpectedStatus ErrorType = "UnexpectedStatus"
	// ErrorTypeInvalidResponse indicates that the response body was not valid JSON
	ErrorTypeInvalidResponse ErrorType = "InvalidResponse"
	// ErrorTypeDiscoveryFailed indicates that the discovery document could not be fetched
	ErrorTypeDiscoveryFailed ErrorType = "DiscoveryFailed"
	// ErrorTypeInvalidConfiguration indicates that configuration is invalid
	ErrorTypeInvalidConfiguration ErrorType = "InvalidConfiguration"
)

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new typed error
func NewError(errType ErrorType, message string, err error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Err:     err,
	}
}

// IsType reports whether any error in err's chain is a typed error of errType
func IsType(err error, errType ErrorType) bool {
	var typed *Error
	for err != nil {
		if !errors.As(err, &typed) {
			return false
		}
		if typed.Type == errType {
			return true
		}
		err = typed.Err
	}
	return false
}

// IsRetryable checks if an error is retryable
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var opErr *Error
	if !errors.As(err, &opErr) {
		return false
	}

	switch opErr.Type {
	case ErrorTypeFetchFailed:
		// Network failures are usually temporary
		return true
	case ErrorTypeUnexpectedStatus:
		return opErr.StatusCode >= http.StatusInternalServerError ||
			opErr.StatusCode == http.StatusTooManyRequests
	case ErrorTypeDiscoveryFailed:
		return IsRetryable(opErr.Err)
	default:
		return false
	}
}

// Helper functions for common error types

// NewFetchError creates a new FetchFailed error
func NewFetchError(url string, err error) *Error {
	return NewError(ErrorTypeFetchFailed, fmt.Sprintf("Failed to fetch %s", url), err)
}

// NewUnexpectedStatusError creates a new UnexpectedStatus error
func NewUnexpectedStatusError(url string, statusCode int, body string) *Error {
	e := NewError(ErrorTypeUnexpectedStatus, fmt.Sprintf("Unexpected status code %d from %s, body: %s", statusCode, url, body), nil)
	e.StatusCode = statusCode
	return e
}

// NewInvalidResponseError creates a new InvalidResponse error
func NewInvalidResponseError(url string, err error) *Error {
	return NewError(ErrorTypeInvalidResponse, fmt.Sprintf("Response from %s is not valid JSON", url), err)
}

// NewDiscoveryError creates a new DiscoveryFailed error
func NewDiscoveryError(issuer string, err error) *Error {
	return NewError(ErrorTypeDiscoveryFailed, fmt.Sprintf("Failed to discover JWKS location for issuer %s", issuer), err)
}

// NewInvalidConfigurationError creates a new InvalidConfiguration error
func NewInvalidConfigurationError(message string, err error) *Error {
	return NewError(ErrorTypeInvalidConfiguration, message, err)
}
