// Package dailybread implements the daily devotional domain for Steeple.
// Each entry is a dated reading; the latest read powers the daily bread
// feature section on the public site.
package dailybread

import (
	"time"

	"github.com/google/uuid"
)

// Entry represents one dated devotional reading.
type Entry struct {
	ID        uuid.UUID `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Title     string    `json:"title"`
	Passage   string    `json:"passage"`
	Body      string    `json:"body"`
	EntryDate time.Time `json:"entry_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateCommand carries the data needed to create a new entry.
type CreateCommand struct {
	TenantID  string    `json:"tenant_id"`
	Title     string    `json:"title"`
	Passage   string    `json:"passage"`
	Body      string    `json:"body"`
	EntryDate time.Time `json:"entry_date"`
}

// UpdateCommand carries the data needed to update an existing entry.
type UpdateCommand struct {
	Title     string    `json:"title"`
	Passage   string    `json:"passage"`
	Body      string    `json:"body"`
	EntryDate time.Time `json:"entry_date"`
}
