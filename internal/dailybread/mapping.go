package dailybread

import (
	"net/url"

	"github.com/steeplehq/steeple/pkg/query"
	"github.com/steeplehq/steeple/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "daily_bread", "d").
	Project("id", "ID").
	Project("tenant_id", "TenantID").
	Project("title", "Title").
	Project("passage", "Passage").
	Project("body", "Body").
	Project("entry_date", "EntryDate").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field:      "EntryDate",
	Descending: true,
}

// Filters contains optional filtering criteria for entry queries.
// Nil fields are ignored. TenantID uses exact matching; Title and
// Passage use case-insensitive contains matching.
type Filters struct {
	TenantID *string `json:"tenant_id,omitempty"`
	Title    *string `json:"title,omitempty"`
	Passage  *string `json:"passage,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("TenantID", f.TenantID).
		WhereContains("Title", f.Title).
		WhereContains("Passage", f.Passage)
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

	if p := values.Get("passage"); p != "" {
		f.Passage = &p
	}

	return f
}

func scanEntry(s repository.Scanner) (Entry, error) {
	var e Entry
	err := s.Scan(
		&e.ID,
		&e.TenantID,
		&e.Title,
		&e.Passage,
		&e.Body,
		&e.EntryDate,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}
