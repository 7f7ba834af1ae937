package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user lookup misses.
	ErrUserNotFound = errors.New("user not found")
	// ErrSavedNewsNotFound is returned when a user has no saved news rows.
	ErrSavedNewsNotFound = errors.New("user or saved news not found")
	// ErrFacilitiesNotFound is returned when the facilities join yields no rows.
	ErrFacilitiesNotFound = errors.New("user or facilities not found")
	// ErrUnauthorized is returned for any token or session failure. Deliberately
	// non-specific so callers cannot tell which check failed.
	ErrUnauthorized = errors.New("unauthorized")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// SuccessResponse is the envelope returned by all successful operations.
type SuccessResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrSavedNewsNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "SAVED_NEWS_NOT_FOUND")
	case ErrFacilitiesNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "FACILITIES_NOT_FOUND")
	case ErrUnauthorized:
		return NewHTTPError(http.StatusUnauthorized, "Unauthorized", "UNAUTHORIZED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
