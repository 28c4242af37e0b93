package pages

import (
	"errors"
	"net/http"
)

// Domain errors for page and section operations.
var (
	ErrNotFound        = errors.New("page not found")
	ErrSectionNotFound = errors.New("section not found")
	ErrDuplicate       = errors.New("page already exists")
	ErrInvalid         = errors.New("invalid page")
)

// MapHTTPStatus maps page domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrSectionNotFound) {
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
