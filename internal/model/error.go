// internal/model/error.go
package model

import "errors"

// Application-level sentinel errors. webutil maps these to HTTP statuses.
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrConflict       = errors.New("resource conflict")
	ErrInternalServer = errors.New("internal server error")
)

// ErrorDetail is the machine-readable half of an AppError.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// AppError wraps a sentinel with a stable code and a client-facing message.
// The wrapped sentinel drives the HTTP status; the detail drives the body.
type AppError struct {
	Detail ErrorDetail
	Err    error
}

func (e *AppError) Error() string {
	return e.Detail.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{Code: code, Message: message, Field: field},
		Err:    err,
	}
}

// APIErrorResponse is the JSON error body: {"message": "...", "details": "..."}.
type APIErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
