package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an AppError independently of its wire code.
type Kind string

const (
	KindValidation          Kind = "ValidationError"
	KindProviderUnavailable Kind = "ProviderUnavailable"
	KindSignatureInvalid    Kind = "SignatureInvalid"
	KindNotFound            Kind = "NotFound"
	KindUnauthorized        Kind = "Unauthorized"
	KindRateLimited         Kind = "RateLimited"
	KindInternal            Kind = "Internal"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string            `json:"error_code"`
	Kind       Kind              `json:"-"`
	Message    string            `json:"message"`
	Fields     map[string]string `json:"fields,omitempty"` // field-level validation detail
	Provider   string            `json:"-"`
	HTTPStatus int               `json:"-"`
	Err        error             `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, kind Kind, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Kind:       kind,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, kind Kind, message string, httpStatus int, err error) *AppError {
	e := New(code, kind, message, httpStatus)
	e.Err = err
	return e
}

// KindOf returns the Kind of err if it is (or wraps) an AppError, else "".
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// ---- Validation (VAL) ----

// Validation returns a request validation error without field detail.
func Validation(message string) *AppError {
	return New("VAL_001", KindValidation, message, http.StatusBadRequest)
}

// ValidationFields returns a validation error carrying per-field messages.
func ValidationFields(fields map[string]string) *AppError {
	e := Validation("Request validation failed")
	e.Fields = fields
	return e
}

// ---- Providers (PRV) ----

// ErrProviderUnavailable reports a network failure or non-success response
// from a configured external provider. status is 0 for transport failures.
func ErrProviderUnavailable(provider string, status int, err error) *AppError {
	msg := fmt.Sprintf("Provider %s unavailable", provider)
	if status > 0 {
		msg = fmt.Sprintf("Provider %s unavailable (HTTP %d)", provider, status)
	}
	e := Wrap("PRV_001", KindProviderUnavailable, msg, http.StatusBadGateway, err)
	e.Provider = provider
	return e
}

// ErrRetryable is the generic message shown for failed checkouts and bookings.
func ErrRetryable(err error) *AppError {
	e := Wrap("PRV_002", KindProviderUnavailable, "The request could not be completed, please try again", http.StatusBadGateway, err)
	var inner *AppError
	if errors.As(err, &inner) {
		e.Provider = inner.Provider
	}
	return e
}

// ---- Security (SEC) ----

func ErrInvalidSignature() *AppError {
	return New("SEC_001", KindSignatureInvalid, "Invalid signature", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("SEC_002", KindUnauthorized, "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Lookups (NF) ----

func ErrNotFound(entity string) *AppError {
	return New("NF_001", KindNotFound, fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", KindRateLimited, "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", KindInternal, "Internal database error", http.StatusInternalServerError, err)
}

func ErrEncryptionFailure(err error) *AppError {
	return Wrap("SYS_003", KindInternal, "Encryption service failure", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", KindInternal, "Internal server error", http.StatusInternalServerError, err)
}
