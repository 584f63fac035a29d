package imagegen

import (
	"errors"
	"fmt"
)

// ErrorCategory classifies provider errors by their likely cause.
type ErrorCategory string

const (
	// ErrorTransient indicates the provider may succeed later.
	// Examples: rate limits, server overload, network failures.
	ErrorTransient ErrorCategory = "transient"

	// ErrorPermanent indicates the request will not succeed as configured.
	// Examples: invalid API key, insufficient permissions, unknown model.
	ErrorPermanent ErrorCategory = "permanent"

	// ErrorUserInput indicates the request itself was rejected.
	// Examples: malformed parameters, content policy violation.
	ErrorUserInput ErrorCategory = "user_input"
)

// CategorizeStatusCode determines the error category from an HTTP status code.
func CategorizeStatusCode(code int) ErrorCategory {
	switch {
	case code == 429:
		return ErrorTransient // Rate limited
	case code >= 500 && code < 600:
		return ErrorTransient
	case code == 401 || code == 403:
		return ErrorPermanent
	case code == 400 || code == 404 || code == 422:
		return ErrorUserInput
	case code == 0:
		return ErrorTransient // No response at all
	default:
		return ErrorPermanent
	}
}

// ConfigurationError reports an invalid request or setup, such as an
// unknown backend name or a missing prompt. It is raised before any
// network call.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string {
	return e.Msg
}

// CredentialMissingError is returned when a hosted backend is invoked
// without its API key.
type CredentialMissingError struct {
	Backend Backend
	EnvVar  string
	Name    string // human-readable backend name
}

func (e *CredentialMissingError) Error() string {
	name := e.Name
	if name == "" {
		name = e.Backend.String()
	}
	return fmt.Sprintf("%s environment variable is required for %s generation", e.EnvVar, name)
}

// AdapterError is returned when a provider answers with a non-success
// status or a malformed payload, or when the call could not complete.
type AdapterError struct {
	Backend Backend
	Msg     string
	Cat     ErrorCategory
	Code    int   // HTTP status code, 0 if not applicable
	Cause   error // underlying error
}

func (e *AdapterError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Cause)
	}
	return e.Msg
}

// Unwrap returns the underlying error.
func (e *AdapterError) Unwrap() error {
	return e.Cause
}

// Category returns the error category.
func (e *AdapterError) Category() ErrorCategory {
	return e.Cat
}

// StatusCode returns the HTTP status code, or 0 if not applicable.
func (e *AdapterError) StatusCode() int {
	return e.Code
}

// NewAdapterError creates an AdapterError categorized by its status code.
func NewAdapterError(backend Backend, msg string, statusCode int, cause error) *AdapterError {
	return &AdapterError{
		Backend: backend,
		Msg:     msg,
		Cat:     CategorizeStatusCode(statusCode),
		Code:    statusCode,
		Cause:   cause,
	}
}

// NewMalformedResponseError creates an AdapterError for a response that
// could not be interpreted.
func NewMalformedResponseError(backend Backend, msg string, cause error) *AdapterError {
	return &AdapterError{
		Backend: backend,
		Msg:     msg,
		Cat:     ErrorPermanent,
		Cause:   cause,
	}
}

// UnreachableLocalServerError is returned when the local inference
// server cannot be connected to. It is distinct from an AdapterError so
// callers can tell "not running" apart from "bad request".
type UnreachableLocalServerError struct {
	Endpoint string
	Cause    error
}

func (e *UnreachableLocalServerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("could not reach local server at %s: %v", e.Endpoint, e.Cause)
	}
	return fmt.Sprintf("could not reach local server at %s", e.Endpoint)
}

// Unwrap returns the underlying error.
func (e *UnreachableLocalServerError) Unwrap() error {
	return e.Cause
}

// AllBackendsFailedError is returned when automatic mode exhausts its
// single permitted fallback. Only the final attempt's error is kept.
type AllBackendsFailedError struct {
	Attempted []Backend
	Last      error
}

func (e *AllBackendsFailedError) Error() string {
	return fmt.Sprintf("all backends failed. last error: %v", e.Last)
}

// Unwrap returns the error of the final attempt.
func (e *AllBackendsFailedError) Unwrap() error {
	return e.Last
}

// IsConfiguration returns true if err is or wraps a ConfigurationError.
func IsConfiguration(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// IsCredentialMissing returns true if err is or wraps a CredentialMissingError.
func IsCredentialMissing(err error) bool {
	var ce *CredentialMissingError
	return errors.As(err, &ce)
}

// IsUnreachable returns true if err is or wraps an UnreachableLocalServerError.
func IsUnreachable(err error) bool {
	var ue *UnreachableLocalServerError
	return errors.As(err, &ue)
}

// IsTransient returns true if err wraps an AdapterError categorized as
// transient, or an unreachable local server.
func IsTransient(err error) bool {
	var ae *AdapterError
	if errors.As(err, &ae) {
		return ae.Category() == ErrorTransient
	}
	return IsUnreachable(err)
}

// BackendOf returns the backend that produced err, or "" if unknown.
func BackendOf(err error) Backend {
	var ae *AdapterError
	if errors.As(err, &ae) {
		return ae.Backend
	}
	var ce *CredentialMissingError
	if errors.As(err, &ce) {
		return ce.Backend
	}
	if IsUnreachable(err) {
		return BackendAutomatic1111
	}
	return ""
}
