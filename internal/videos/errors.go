package videos

import (
	"errors"
	"net/http"
)

// Domain errors for video operations.
var (
	ErrNotFound  = errors.New("video not found")
	ErrDuplicate = errors.New("video already exists")
	ErrInvalid   = errors.New("invalid video")
)

// MapHTTPStatus maps video domain errors to appropriate HTTP status codes.
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
