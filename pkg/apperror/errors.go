package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string         `json:"error_code"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	Err        error          `json:"-"` // Wrapped internal error (not exposed to client)
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
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// HasCode reports whether err wraps an *AppError carrying the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return false
	}
	return appErr.Code == code
}

// ---- Validation (VAL) ----

const CodeInvalidInput = "VAL_001"

// Validation returns an InvalidInput error with the given message.
func Validation(message string) *AppError {
	return New(CodeInvalidInput, message, http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return Validation("Invalid amount")
}

// ---- Wallet ledger (WAL) ----

const (
	CodeNotFound            = "WAL_001"
	CodeInsufficientFunds   = "WAL_002"
	CodeDuplicateRedemption = "WAL_003"
)

func ErrNotFound(entity string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ErrInsufficientFunds reports the required and available amounts of a currency
// so clients can render a precise message.
func ErrInsufficientFunds(currency string, required, available int64) *AppError {
	e := New(CodeInsufficientFunds, fmt.Sprintf("Not enough %s. Need %d", currency, required), http.StatusBadRequest)
	e.Details = map[string]any{
		"currency":  currency,
		"required":  required,
		"available": available,
	}
	return e
}

func ErrDuplicateRedemption() *AppError {
	return New(CodeDuplicateRedemption, "Payment already claimed", http.StatusBadRequest)
}

// ---- Payments (PAY) ----

func ErrInvalidSignature() *AppError {
	return New("PAY_001", "Invalid payment signature", http.StatusBadRequest)
}

func ErrPurchaseNotValid(reason string) *AppError {
	return New("PAY_002", "Purchase could not be verified: "+reason, http.StatusBadRequest)
}

func ErrProviderUnavailable(err error) *AppError {
	return Wrap("PAY_003", "Payment provider unavailable", http.StatusBadGateway, err)
}

// ---- Authentication (AUTH) ----

const CodeUnauthenticated = "AUTH_003"

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrUserExists() *AppError {
	return New("AUTH_002", "User already exists", http.StatusBadRequest)
}

func ErrMissingToken() *AppError {
	return New(CodeUnauthenticated, "No token, authorization denied", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New(CodeUnauthenticated, "Token is not valid", http.StatusUnauthorized)
}

func ErrGoogleAuthFailed(err error) *AppError {
	return Wrap("AUTH_004", "Google authentication failed", http.StatusUnauthorized, err)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

const CodeStoreUnavailable = "SYS_001"

// ErrStoreUnavailable wraps a storage or connection fault. The wrapped error
// is logged but never serialized.
func ErrStoreUnavailable(err error) *AppError {
	return Wrap(CodeStoreUnavailable, "Internal server error", http.StatusInternalServerError, err)
}

func ErrRouteNotFound() *AppError {
	return New("SYS_002", "Route not found", http.StatusNotFound)
}

func ErrEncryptionFailure(err error) *AppError {
	return Wrap("SYS_003", "Encryption service failure", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return ErrStoreUnavailable(err)
}
