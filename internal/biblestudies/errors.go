package biblestudies

import (
	"errors"
	"net/http"
)

// Domain errors for bible study operations.
var (
	ErrNotFound  = errors.New("study not found")
	ErrDuplicate = errors.New("study already exists")
	ErrInvalid   = errors.New("invalid study")
)

// MapHTTPStatus maps study domain errors to appropriate HTTP status codes.
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
