// Package biblestudies implements the bible study domain for Steeple.
// Studies are dated teaching outlines with an optional downloadable guide,
// listed in full on the public site's bible study section.
package biblestudies

import (
	"time"

	"github.com/google/uuid"
)

// Study represents a dated bible study with its teaching materials.
type Study struct {
	ID          uuid.UUID `json:"id"`
	TenantID    string    `json:"tenant_id"`
	Title       string    `json:"title"`
	Passage     string    `json:"passage"`
	StudyDate   time.Time `json:"study_date"`
	GuideURL    *string   `json:"guide_url"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateCommand carries the data needed to create a new study.
type CreateCommand struct {
	TenantID    string    `json:"tenant_id"`
	Title       string    `json:"title"`
	Passage     string    `json:"passage"`
	StudyDate   time.Time `json:"study_date"`
	GuideURL    *string   `json:"guide_url"`
	Description *string   `json:"description"`
}

// UpdateCommand carries the data needed to update an existing study.
type UpdateCommand struct {
	Title       string    `json:"title"`
	Passage     string    `json:"passage"`
	StudyDate   time.Time `json:"study_date"`
	GuideURL    *string   `json:"guide_url"`
	Description *string   `json:"description"`
}
