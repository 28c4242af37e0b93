package site

import (
	"errors"
	"net/http"
)

// ErrPageNotFound covers missing tenants, unknown slugs, and
// unpublished pages alike; the public site does not distinguish them.
var ErrPageNotFound = errors.New("page not found")

// MapHTTPStatus maps site errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrPageNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
