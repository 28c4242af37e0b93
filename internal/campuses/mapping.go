package campuses

import (
	"net/url"

	"github.com/steeplehq/steeple/pkg/query"
	"github.com/steeplehq/steeple/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "campuses", "c").
	Project("id", "ID").
	Project("tenant_id", "TenantID").
	Project("name", "Name").
	Project("slug", "Slug").
	Project("address", "Address").
	Project("city", "City").
	Project("service_times", "ServiceTimes").
	Project("image_url", "ImageURL").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field: "Name",
}

// Filters contains optional filtering criteria for campus queries.
// Nil fields are ignored. TenantID and Slug use exact matching; Name
// and City use case-insensitive contains matching.
type Filters struct {
	TenantID *string `json:"tenant_id,omitempty"`
	Name     *string `json:"name,omitempty"`
	Slug     *string `json:"slug,omitempty"`
	City     *string `json:"city,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("TenantID", f.TenantID).
		WhereContains("Name", f.Name).
		WhereEquals("Slug", f.Slug).
		WhereContains("City", f.City)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if t := values.Get("tenant"); t != "" {
		f.TenantID = &t
	}

	if n := values.Get("name"); n != "" {
		f.Name = &n
	}

	if s := values.Get("slug"); s != "" {
		f.Slug = &s
	}

	if c := values.Get("city"); c != "" {
		f.City = &c
	}

	return f
}

func scanCampus(s repository.Scanner) (Campus, error) {
	var c Campus
	err := s.Scan(
		&c.ID,
		&c.TenantID,
		&c.Name,
		&c.Slug,
		&c.Address,
		&c.City,
		&c.ServiceTimes,
		&c.ImageURL,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}
