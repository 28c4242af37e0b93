package dailybread

import (
	"errors"
	"net/http"
)

// Domain errors for daily bread operations.
var (
	ErrNotFound  = errors.New("entry not found")
	ErrDuplicate = errors.New("entry already exists for that date")
	ErrInvalid   = errors.New("invalid entry")
)

// MapHTTPStatus maps daily bread domain errors to appropriate HTTP status codes.
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
