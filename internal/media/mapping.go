package media

import (
	"net/url"

	"github.com/steeplehq/steeple/pkg/query"
	"github.com/steeplehq/steeple/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "media", "md").
	Project("id", "ID").
	Project("tenant_id", "TenantID").
	Project("filename", "Filename").
	Project("content_type", "ContentType").
	Project("size_bytes", "SizeBytes").
	Project("page_count", "PageCount").
	Project("storage_key", "StorageKey").
	Project("category", "Category").
	Project("uploaded_at", "UploadedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field:      "UploadedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for media queries.
// Nil fields are ignored. TenantID, Category, and ContentType use exact
// matching; Filename uses case-insensitive contains matching.
type Filters struct {
	TenantID    *string `json:"tenant_id,omitempty"`
	Filename    *string `json:"filename,omitempty"`
	ContentType *string `json:"content_type,omitempty"`
	Category    *string `json:"category,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("TenantID", f.TenantID).
		WhereContains("Filename", f.Filename).
		WhereEquals("ContentType", f.ContentType).
		WhereEquals("Category", f.Category)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if t := values.Get("tenant"); t != "" {
		f.TenantID = &t
	}

	if fn := values.Get("filename"); fn != "" {
		f.Filename = &fn
	}

	if ct := values.Get("content_type"); ct != "" {
		f.ContentType = &ct
	}

	if c := values.Get("category"); c != "" {
		f.Category = &c
	}

	return f
}

func scanMedia(s repository.Scanner) (Media, error) {
	var m Media
	err := s.Scan(
		&m.ID,
		&m.TenantID,
		&m.Filename,
		&m.ContentType,
		&m.SizeBytes,
		&m.PageCount,
		&m.StorageKey,
		&m.Category,
		&m.UploadedAt,
		&m.UpdatedAt,
	)
	return m, err
}
