package apperr

import (
	"errors"
	"runtime/debug"
)

// Workflow error codes carried in ErrorDetails.errorCode.
const (
	CodeValidation      = 101
	CodeNotFrench       = 110
	CodeUnderage        = 111
	CodeDuplicateUser   = 120
	CodeUserNotFound    = 400
	CodeDeleteNotFound  = 401
	CodeCountryNotFound = 450
)

// ServerError is a validation or business-rule failure produced by the
// save workflow. It maps to HTTP 500 at the boundary.
type ServerError struct {
	Code    int
	Message string
}

func (e *ServerError) Error() string {
	return e.Message
}

// NewServerError builds a coded workflow failure.
func NewServerError(code int, message string) *ServerError {
	return &ServerError{Code: code, Message: message}
}

// NotFoundError signals that a referenced record does not exist. It maps
// to HTTP 404 at the boundary.
type NotFoundError struct {
	Code    int
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(code int, message string) *NotFoundError {
	return &NotFoundError{Code: code, Message: message}
}

// ErrorDetails is the wire body returned on every failed request.
type ErrorDetails struct {
	ErrorCode       int            `json:"errorCode"`
	ErrorMessage    string         `json:"errorMessage"`
	DevErrorMessage string         `json:"devErrorMessage"`
	AdditionalData  map[string]any `json:"additionalData"`
}

// Details builds the response body for err. Uncoded errors keep errorCode 0.
func Details(err error) ErrorDetails {
	details := ErrorDetails{
		ErrorMessage:    err.Error(),
		DevErrorMessage: string(debug.Stack()),
		AdditionalData:  map[string]any{},
	}

	var serverErr *ServerError
	var notFoundErr *NotFoundError
	switch {
	case errors.As(err, &serverErr):
		details.ErrorCode = serverErr.Code
	case errors.As(err, &notFoundErr):
		details.ErrorCode = notFoundErr.Code
	}

	return details
}
