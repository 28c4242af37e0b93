package campuses

import (
	"errors"
	"net/http"
)

// Domain errors for campus operations.
var (
	ErrNotFound  = errors.New("campus not found")
	ErrDuplicate = errors.New("campus already exists")
	ErrInvalid   = errors.New("invalid campus")
)

// MapHTTPStatus maps campus domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalid) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
