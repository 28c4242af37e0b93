// Package events implements the event domain for Steeple.
// It provides types, data access, and HTTP handlers for church calendar
// events, including the upcoming, featured, and ministry-scoped reads
// that power event sections on the public site.
package events

import (
	"time"

	"github.com/google/uuid"
)

// Event represents a scheduled church event.
type Event struct {
	ID              uuid.UUID  `json:"id"`
	TenantID        string     `json:"tenant_id"`
	Title           string     `json:"title"`
	StartsAt        time.Time  `json:"starts_at"`
	EndsAt          *time.Time `json:"ends_at"`
	Location        *string    `json:"location"`
	MinistrySlug    *string    `json:"ministry_slug"`
	Featured        bool       `json:"featured"`
	RegistrationURL *string    `json:"registration_url"`
	ImageURL        *string    `json:"image_url"`
	Description     *string    `json:"description"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// CreateCommand carries the data needed to create a new event.
type CreateCommand struct {
	TenantID        string     `json:"tenant_id"`
	Title           string     `json:"title"`
	StartsAt        time.Time  `json:"starts_at"`
	EndsAt          *time.Time `json:"ends_at"`
	Location        *string    `json:"location"`
	MinistrySlug    *string    `json:"ministry_slug"`
	Featured        bool       `json:"featured"`
	RegistrationURL *string    `json:"registration_url"`
	ImageURL        *string    `json:"image_url"`
	Description     *string    `json:"description"`
}

// UpdateCommand carries the data needed to update an existing event.
type UpdateCommand struct {
	Title           string     `json:"title"`
	StartsAt        time.Time  `json:"starts_at"`
	EndsAt          *time.Time `json:"ends_at"`
	Location        *string    `json:"location"`
	MinistrySlug    *string    `json:"ministry_slug"`
	Featured        bool       `json:"featured"`
	RegistrationURL *string    `json:"registration_url"`
	ImageURL        *string    `json:"image_url"`
	Description     *string    `json:"description"`
}
