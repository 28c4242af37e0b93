package messages

import (
	"errors"
	"net/http"
)

// Domain errors for message operations.
var (
	ErrNotFound  = errors.New("message not found")
	ErrDuplicate = errors.New("message already exists")
	ErrInvalid   = errors.New("invalid message")
)

// MapHTTPStatus maps message domain errors to appropriate HTTP status codes.
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
