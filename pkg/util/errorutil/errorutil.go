package errorutil

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, details)
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

func NewUnauthorized(message string) error {
	return NewDomainError("UNAUTHORIZED", message, http.StatusUnauthorized, nil)
}

// NewInsufficientPoints rejects a purchase whose cost exceeds the balance.
func NewInsufficientPoints(cost, balance int) error {
	return NewDomainError("INSUFFICIENT_POINTS", "not enough points for selected records",
		http.StatusPaymentRequired, map[string]any{"cost": cost, "balance": balance})
}

// NewBusy rejects a submission while a previous one is still in flight.
func NewBusy(message string) error {
	return NewDomainError("BUSY", message, http.StatusConflict, nil)
}

// NewUpstreamMisconfigured signals a missing upstream credential.
func NewUpstreamMisconfigured(message string) error {
	return NewDomainError("UPSTREAM_MISCONFIGURED", message, http.StatusServiceUnavailable, nil)
}

// NewUpstreamUnauthorized signals a rejected upstream credential.
func NewUpstreamUnauthorized(message string) error {
	return NewDomainError("UPSTREAM_UNAUTHORIZED", message, http.StatusBadGateway, nil)
}

// NewUpstreamFailure signals any other upstream failure.
func NewUpstreamFailure(message string, err error) error {
	return &DomainError{
		Code:       "UPSTREAM_FAILED",
		Message:    message,
		HTTPStatus: http.StatusBadGateway,
		Err:        err,
	}
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}
