package events

import (
	"net/url"
	"strconv"

	"github.com/steeplehq/steeple/pkg/query"
	"github.com/steeplehq/steeple/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "events", "e").
	Project("id", "ID").
	Project("tenant_id", "TenantID").
	Project("title", "Title").
	Project("starts_at", "StartsAt").
	Project("ends_at", "EndsAt").
	Project("location", "Location").
	Project("ministry_slug", "MinistrySlug").
	Project("featured", "Featured").
	Project("registration_url", "RegistrationURL").
	Project("image_url", "ImageURL").
	Project("description", "Description").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field: "StartsAt",
}

// Filters contains optional filtering criteria for event queries.
// Nil fields are ignored. TenantID, MinistrySlug, and Featured use exact
// matching; Title and Location use case-insensitive contains matching.
type Filters struct {
	TenantID     *string `json:"tenant_id,omitempty"`
	Title        *string `json:"title,omitempty"`
	Location     *string `json:"location,omitempty"`
	MinistrySlug *string `json:"ministry_slug,omitempty"`
	Featured     *bool   `json:"featured,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("TenantID", f.TenantID).
		WhereContains("Title", f.Title).
		WhereContains("Location", f.Location).
		WhereEquals("MinistrySlug", f.MinistrySlug).
		WhereEquals("Featured", f.Featured)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if t := values.Get("tenant"); t != "" {
		f.TenantID = &t
	}

	if title := values.Get("title"); title != "" {
		f.Title = &title
	}

	if l := values.Get("location"); l != "" {
		f.Location = &l
	}

	if m := values.Get("ministry"); m != "" {
		f.MinistrySlug = &m
	}

	if fe := values.Get("featured"); fe != "" {
		if v, err := strconv.ParseBool(fe); err == nil {
			f.Featured = &v
		}
	}

	return f
}

func scanEvent(s repository.Scanner) (Event, error) {
	var e Event
	err := s.Scan(
		&e.ID,
		&e.TenantID,
		&e.Title,
		&e.StartsAt,
		&e.EndsAt,
		&e.Location,
		&e.MinistrySlug,
		&e.Featured,
		&e.RegistrationURL,
		&e.ImageURL,
		&e.Description,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}
