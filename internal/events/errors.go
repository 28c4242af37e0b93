package events

import (
	"errors"
	"net/http"
)

// Domain errors for event operations.
var (
	ErrNotFound  = errors.New("event not found")
	ErrDuplicate = errors.New("event already exists")
	ErrInvalid   = errors.New("invalid event")
)

// MapHTTPStatus maps event domain errors to appropriate HTTP status codes.
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
