package handler

import (
	"errors"
	"net/http"
)

var (
	ErrNilResponse       = errors.New("handler returned nil response")
	ErrSSENotInitialized = errors.New("SSE not initialized for this request")
)

// HTTPError is an error with a status code and a machine-readable key.
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string { return e.Key }

// NewHTTPError creates an HTTPError with code and an error key.
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

var (
	ErrBadRequest  = NewHTTPError(http.StatusBadRequest, "bad_request")
	ErrNotFound    = NewHTTPError(http.StatusNotFound, "not_found")
	ErrNotDataStar = NewHTTPError(http.StatusBadRequest, "sse_requires_datastar")
	ErrInternal    = NewHTTPError(http.StatusInternalServerError, "internal_error")
	ErrUnavailable = NewHTTPError(http.StatusServiceUnavailable, "unavailable")
)

// StatusCode returns the HTTP status carried by err, or 500.
func StatusCode(err error) int {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	return http.StatusInternalServerError
}
