package events_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/steeplehq/steeple/internal/events"
)

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", events.ErrNotFound, http.StatusNotFound},
		{"duplicate", events.ErrDuplicate, http.StatusConflict},
		{"invalid", events.ErrInvalid, http.StatusBadRequest},
		{"unknown error", errors.New("something else"), http.StatusInternalServerError},
		{"wrapped not found", fmt.Errorf("find failed: %w", events.ErrNotFound), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := events.MapHTTPStatus(tt.err); got != tt.want {
				t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestFiltersFromQuery(t *testing.T) {
	values := url.Values{}
	values.Set("tenant", "grace")
	values.Set("ministry", "youth-group")
	values.Set("featured", "true")

	f := events.FiltersFromQuery(values)

	if f.TenantID == nil || *f.TenantID != "grace" {
		t.Errorf("TenantID = %v, want grace", f.TenantID)
	}
	if f.MinistrySlug == nil || *f.MinistrySlug != "youth-group" {
		t.Errorf("MinistrySlug = %v, want youth-group", f.MinistrySlug)
	}
	if f.Featured == nil || !*f.Featured {
		t.Errorf("Featured = %v, want true", f.Featured)
	}
}

func TestFiltersFromQueryInvalidFeatured(t *testing.T) {
	values := url.Values{}
	values.Set("featured", "maybe")

	f := events.FiltersFromQuery(values)
	if f.Featured != nil {
		t.Errorf("Featured = %v, want nil for unparseable value", f.Featured)
	}
}
