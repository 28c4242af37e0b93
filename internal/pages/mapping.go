package pages

import (
	"encoding/json"
	"net/url"

	"github.com/steeplehq/steeple/pkg/query"
	"github.com/steeplehq/steeple/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "pages", "p").
	Project("id", "ID").
	Project("tenant_id", "TenantID").
	Project("slug", "Slug").
	Project("title", "Title").
	Project("published", "Published").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var sectionProjection = query.
	NewProjectionMap("public", "sections", "s").
	Project("id", "ID").
	Project("page_id", "PageID").
	Project("section_type", "SectionType").
	Project("content", "Content").
	Project("sort_order", "SortOrder").
	Project("visible", "Visible").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field:      "Slug",
	Descending: false,
}

var sectionSort = query.SortField{
	Field:      "SortOrder",
	Descending: false,
}

// Filters contains optional filtering criteria for page queries.
// Nil fields are ignored.
type Filters struct {
	TenantID  *string `json:"tenant_id,omitempty"`
	Slug      *string `json:"slug,omitempty"`
	Title     *string `json:"title,omitempty"`
	Published *bool   `json:"published,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("TenantID", f.TenantID).
		WhereEquals("Slug", f.Slug).
		WhereContains("Title", f.Title).
		WhereEquals("Published", f.Published)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if t := values.Get("tenant"); t != "" {
		f.TenantID = &t
	}

	if s := values.Get("slug"); s != "" {
		f.Slug = &s
	}

	if title := values.Get("title"); title != "" {
		f.Title = &title
	}

	switch values.Get("published") {
	case "true":
		v := true
		f.Published = &v
	case "false":
		v := false
		f.Published = &v
	}

	return f
}

func scanPage(s repository.Scanner) (Page, error) {
	var p Page
	err := s.Scan(
		&p.ID,
		&p.TenantID,
		&p.Slug,
		&p.Title,
		&p.Published,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

func scanSection(s repository.Scanner) (Section, error) {
	var (
		sec Section
		raw []byte
	)

	err := s.Scan(
		&sec.ID,
		&sec.PageID,
		&sec.SectionType,
		&raw,
		&sec.SortOrder,
		&sec.Visible,
		&sec.CreatedAt,
		&sec.UpdatedAt,
	)
	if err != nil {
		return sec, err
	}

	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &sec.Content); err != nil {
			return sec, err
		}
	}
	if sec.Content == nil {
		sec.Content = map[string]any{}
	}

	return sec, nil
}
