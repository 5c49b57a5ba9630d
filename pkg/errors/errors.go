package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the catalog error taxonomy.
var (
	ErrNotFound      = errors.New("resource not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrConflict      = errors.New("conflict")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrStore         = errors.New("store failure")
	ErrInternal      = errors.New("internal error")
)

// AppError is a structured application error with an HTTP status mapping.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound creates a 404 error for a missing resource.
func NotFound(resource, id string) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
		Status:  http.StatusNotFound,
		Err:     ErrNotFound,
	}
}

// InvalidInput creates a 400 error for missing or malformed fields.
func InvalidInput(message string) *AppError {
	return &AppError{
		Code:    "INVALID_INPUT",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     ErrInvalidInput,
	}
}

// Conflict creates a 400 error for a domain conflict. The original catalog
// API reports duplicate reviews as a client error, not a 409, so the status
// stays 400 here.
func Conflict(message string) *AppError {
	return &AppError{
		Code:    "CONFLICT",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     ErrConflict,
	}
}

// AlreadyExists creates a 409 error for a uniqueness violation.
func AlreadyExists(resource, field, value string) *AppError {
	return &AppError{
		Code:    "ALREADY_EXISTS",
		Message: fmt.Sprintf("%s with %s %q already exists", resource, field, value),
		Status:  http.StatusConflict,
		Err:     ErrAlreadyExists,
	}
}

// Store creates a 400 error that surfaces the store's message verbatim.
// Used on paths where the original API passed the database error through
// to the client; other read-path failures stay generic 500s.
//
// Context added by wrapping on the way up is stripped from the client
// message, so the caller sees the driver's own text. The full chain stays
// attached for the server-side log line.
func Store(err error) *AppError {
	root := err
	for {
		unwrapped := errors.Unwrap(root)
		if unwrapped == nil {
			break
		}
		root = unwrapped
	}

	return &AppError{
		Code:    "STORE_ERROR",
		Message: root.Error(),
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

// Internal creates a 500 error with a generic client-visible message.
func Internal(err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: "Server error",
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	return fmt.Errorf("%s: %w", message, err)
}

// HTTPStatus returns the HTTP status code for the given error.
func HTTPStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrConflict):
		return http.StatusBadRequest
	case errors.Is(err, ErrAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
