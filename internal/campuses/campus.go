// Package campuses implements the campus domain for Steeple.
// Campuses are a church's physical locations; the full list powers the
// campus grid section on the public site. A tenant may carry a sentinel
// "all" campus used by event scoping, which site sections exclude.
package campuses

import (
	"time"

	"github.com/google/uuid"
)

// Campus represents one physical church location.
type Campus struct {
	ID           uuid.UUID `json:"id"`
	TenantID     string    `json:"tenant_id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Address      *string   `json:"address"`
	City         *string   `json:"city"`
	ServiceTimes *string   `json:"service_times"`
	ImageURL     *string   `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateCommand carries the data needed to create a new campus.
type CreateCommand struct {
	TenantID     string  `json:"tenant_id"`
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	ServiceTimes *string `json:"service_times"`
	ImageURL     *string `json:"image_url"`
}

// UpdateCommand carries the data needed to update an existing campus.
type UpdateCommand struct {
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	ServiceTimes *string `json:"service_times"`
	ImageURL     *string `json:"image_url"`
}
