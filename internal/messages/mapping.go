package messages

import (
	"net/url"

	"github.com/steeplehq/steeple/pkg/query"
	"github.com/steeplehq/steeple/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "messages", "m").
	Project("id", "ID").
	Project("tenant_id", "TenantID").
	Project("title", "Title").
	Project("speaker", "Speaker").
	Project("passage", "Passage").
	Project("preached_at", "PreachedAt").
	Project("video_id", "VideoID").
	Project("video_url", "VideoURL").
	Project("thumbnail_url", "ThumbnailURL").
	Project("description", "Description").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field:      "PreachedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for message queries.
// Nil fields are ignored. TenantID uses exact matching; Title and
// Speaker use case-insensitive contains matching.
type Filters struct {
	TenantID *string `json:"tenant_id,omitempty"`
	Title    *string `json:"title,omitempty"`
	Speaker  *string `json:"speaker,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("TenantID", f.TenantID).
		WhereContains("Title", f.Title).
		WhereContains("Speaker", f.Speaker)
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

	if s := values.Get("speaker"); s != "" {
		f.Speaker = &s
	}

	return f
}

func scanMessage(s repository.Scanner) (Message, error) {
	var m Message
	err := s.Scan(
		&m.ID,
		&m.TenantID,
		&m.Title,
		&m.Speaker,
		&m.Passage,
		&m.PreachedAt,
		&m.VideoID,
		&m.VideoURL,
		&m.ThumbnailURL,
		&m.Description,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}
