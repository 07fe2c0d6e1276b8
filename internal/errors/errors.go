package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeTransport indicates the request never produced a response
	ErrorTypeTransport ErrorType = "transport"
	// ErrorTypeHTTP indicates the service answered with a non-success status
	ErrorTypeHTTP ErrorType = "http"
	// ErrorTypeUnauthorized indicates authentication failure
	ErrorTypeUnauthorized ErrorType = "unauthorized"
	// ErrorTypeDecode indicates a payload could not be parsed or mapped
	ErrorTypeDecode ErrorType = "decode"
	// ErrorTypeNotFound indicates a resource was not found
	ErrorTypeNotFound ErrorType = "not_found"
	// ErrorTypeValidation indicates invalid input data
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeInternal indicates an unexpected failure
	ErrorTypeInternal ErrorType = "internal"
)

// AppError is the base error type for client errors
type AppError struct {
	Type    ErrorType
	Message string
	Status  int // HTTP status, when one was received
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WrapTransport wraps a network level failure
func WrapTransport(message string, err error) error {
	return &AppError{
		Type:    ErrorTypeTransport,
		Message: message,
		Err:     err,
	}
}

// HTTPStatusf creates an error for an unexpected response status
func HTTPStatusf(status int, format string, args ...interface{}) error {
	return &AppError{
		Type:    ErrorTypeHTTP,
		Message: fmt.Sprintf(format, args...),
		Status:  status,
	}
}

// Unauthorized creates an unauthorized error
func Unauthorized(message string) error {
	return &AppError{
		Type:    ErrorTypeUnauthorized,
		Message: message,
		Status:  401,
	}
}

// WrapUnauthorized wraps an error as an authentication failure
func WrapUnauthorized(message string, err error) error {
	return &AppError{
		Type:    ErrorTypeUnauthorized,
		Message: message,
		Status:  HTTPStatus(err),
		Err:     err,
	}
}

// Decodef creates a decode error with formatting
func Decodef(format string, args ...interface{}) error {
	return &AppError{
		Type:    ErrorTypeDecode,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapDecode wraps an error as a decode error
func WrapDecode(message string, err error) error {
	return &AppError{
		Type:    ErrorTypeDecode,
		Message: message,
		Err:     err,
	}
}

// NotFoundf creates a not found error with formatting
func NotFoundf(format string, args ...interface{}) error {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf(format, args...),
	}
}

// Validationf creates a validation error with formatting
func Validationf(format string, args ...interface{}) error {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapInternal wraps an error as an internal error
func WrapInternal(message string, err error) error {
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Err:     err,
	}
}

// GetType returns the error type of an error
func GetType(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeInternal
}

// HTTPStatus returns the HTTP status carried by err, or 0.
func HTTPStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return 0
}

// Is reports whether err is an *AppError of type t.
func Is(err error, t ErrorType) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == t
}
