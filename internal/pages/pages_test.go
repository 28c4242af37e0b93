package pages_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/steeplehq/steeple/internal/pages"
)

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"page not found", pages.ErrNotFound, http.StatusNotFound},
		{"section not found", pages.ErrSectionNotFound, http.StatusNotFound},
		{"duplicate", pages.ErrDuplicate, http.StatusConflict},
		{"invalid", pages.ErrInvalid, http.StatusBadRequest},
		{"unknown error", errors.New("something else"), http.StatusInternalServerError},
		{"wrapped section not found", fmt.Errorf("find failed: %w", pages.ErrSectionNotFound), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pages.MapHTTPStatus(tt.err); got != tt.want {
				t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestFiltersFromQuery(t *testing.T) {
	values := url.Values{}
	values.Set("tenant", "grace")
	values.Set("slug", "home")
	values.Set("published", "true")

	f := pages.FiltersFromQuery(values)

	if f.TenantID == nil || *f.TenantID != "grace" {
		t.Errorf("TenantID = %v, want grace", f.TenantID)
	}
	if f.Slug == nil || *f.Slug != "home" {
		t.Errorf("Slug = %v, want home", f.Slug)
	}
	if f.Published == nil || !*f.Published {
		t.Errorf("Published = %v, want true", f.Published)
	}
}

func TestFiltersFromQueryPublishedVariants(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  *bool
	}{
		{"true", "true", boolPtr(true)},
		{"false", "false", boolPtr(false)},
		{"absent", "", nil},
		{"garbage", "maybe", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			if tt.value != "" {
				values.Set("published", tt.value)
			}

			f := pages.FiltersFromQuery(values)
			switch {
			case tt.want == nil && f.Published != nil:
				t.Errorf("Published = %v, want nil", *f.Published)
			case tt.want != nil && (f.Published == nil || *f.Published != *tt.want):
				t.Errorf("Published = %v, want %v", f.Published, *tt.want)
			}
		})
	}
}

func boolPtr(b bool) *bool { return &b }
