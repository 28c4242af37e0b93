// Package messages implements the sermon message domain for Steeple.
// It provides types, data access, and HTTP handlers for managing the
// messages preached at a church, including the latest-message read that
// powers spotlight sections on the public site.
package messages

import (
	"time"

	"github.com/google/uuid"
)

// Message represents a preached sermon with its media references.
type Message struct {
	ID           uuid.UUID `json:"id"`
	TenantID     string    `json:"tenant_id"`
	Title        string    `json:"title"`
	Speaker      string    `json:"speaker"`
	Passage      *string   `json:"passage"`
	PreachedAt   time.Time `json:"preached_at"`
	VideoID      *string   `json:"video_id"`
	VideoURL     *string   `json:"video_url"`
	ThumbnailURL *string   `json:"thumbnail_url"`
	Description  *string   `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateCommand carries the data needed to register a new message.
type CreateCommand struct {
	TenantID     string    `json:"tenant_id"`
	Title        string    `json:"title"`
	Speaker      string    `json:"speaker"`
	Passage      *string   `json:"passage"`
	PreachedAt   time.Time `json:"preached_at"`
	VideoID      *string   `json:"video_id"`
	VideoURL     *string   `json:"video_url"`
	ThumbnailURL *string   `json:"thumbnail_url"`
	Description  *string   `json:"description"`
}

// UpdateCommand carries the data needed to update an existing message.
type UpdateCommand struct {
	Title        string    `json:"title"`
	Speaker      string    `json:"speaker"`
	Passage      *string   `json:"passage"`
	PreachedAt   time.Time `json:"preached_at"`
	VideoID      *string   `json:"video_id"`
	VideoURL     *string   `json:"video_url"`
	ThumbnailURL *string   `json:"thumbnail_url"`
	Description  *string   `json:"description"`
}
