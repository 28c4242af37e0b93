package videos

import (
	"net/url"

	"github.com/steeplehq/steeple/pkg/query"
	"github.com/steeplehq/steeple/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "videos", "v").
	Project("id", "ID").
	Project("tenant_id", "TenantID").
	Project("title", "Title").
	Project("youtube_id", "YoutubeID").
	Project("thumbnail_url", "ThumbnailURL").
	Project("published_at", "PublishedAt").
	Project("description", "Description").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field:      "PublishedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for video queries.
// Nil fields are ignored. TenantID and YoutubeID use exact matching;
// Title uses case-insensitive contains matching.
type Filters struct {
	TenantID  *string `json:"tenant_id,omitempty"`
	Title     *string `json:"title,omitempty"`
	YoutubeID *string `json:"youtube_id,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("TenantID", f.TenantID).
		WhereContains("Title", f.Title).
		WhereEquals("YoutubeID", f.YoutubeID)
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

	if y := values.Get("youtube_id"); y != "" {
		f.YoutubeID = &y
	}

	return f
}

func scanVideo(s repository.Scanner) (Video, error) {
	var v Video
	err := s.Scan(
		&v.ID,
		&v.TenantID,
		&v.Title,
		&v.YoutubeID,
		&v.ThumbnailURL,
		&v.PublishedAt,
		&v.Description,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	return v, err
}
