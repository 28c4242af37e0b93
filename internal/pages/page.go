// Package pages implements page and section storage for Steeple. A page
// is an ordered collection of authored sections; section content is an
// open JSON document whose optional dataSource key drives live content
// resolution at render time.
package pages

import (
	"time"

	"github.com/google/uuid"
)

// Page represents a published or draft site page for a tenant.
type Page struct {
	ID        uuid.UUID `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Section represents one authored block on a page. Content is the open
// authored configuration stored as jsonb; it is never interpreted here
// beyond persistence.
type Section struct {
	ID          uuid.UUID      `json:"id"`
	PageID      uuid.UUID      `json:"page_id"`
	SectionType string         `json:"section_type"`
	Content     map[string]any `json:"content"`
	SortOrder   int            `json:"sort_order"`
	Visible     bool           `json:"visible"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// CreateCommand carries the data needed to register a new page.
type CreateCommand struct {
	TenantID  string `json:"tenant_id"`
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Published bool   `json:"published"`
}

// UpdateCommand carries the data needed to update an existing page.
type UpdateCommand struct {
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Published bool   `json:"published"`
}

// CreateSectionCommand carries the data needed to add a section to a page.
type CreateSectionCommand struct {
	SectionType string         `json:"section_type"`
	Content     map[string]any `json:"content"`
	SortOrder   int            `json:"sort_order"`
	Visible     bool           `json:"visible"`
}

// UpdateSectionCommand carries the data needed to update an existing section.
type UpdateSectionCommand struct {
	SectionType string         `json:"section_type"`
	Content     map[string]any `json:"content"`
	SortOrder   int            `json:"sort_order"`
	Visible     bool           `json:"visible"`
}
