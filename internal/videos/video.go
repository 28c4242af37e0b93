// Package videos implements the video library domain for Steeple.
// Videos are standalone media entries (not tied to a sermon) hosted on
// YouTube and surfaced in media grid sections on the public site.
package videos

import (
	"time"

	"github.com/google/uuid"
)

// Video represents a published library video.
type Video struct {
	ID           uuid.UUID `json:"id"`
	TenantID     string    `json:"tenant_id"`
	Title        string    `json:"title"`
	YoutubeID    string    `json:"youtube_id"`
	ThumbnailURL *string   `json:"thumbnail_url"`
	PublishedAt  time.Time `json:"published_at"`
	Description  *string   `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateCommand carries the data needed to register a new video.
type CreateCommand struct {
	TenantID     string    `json:"tenant_id"`
	Title        string    `json:"title"`
	YoutubeID    string    `json:"youtube_id"`
	ThumbnailURL *string   `json:"thumbnail_url"`
	PublishedAt  time.Time `json:"published_at"`
	Description  *string   `json:"description"`
}

// UpdateCommand carries the data needed to update an existing video.
type UpdateCommand struct {
	Title        string    `json:"title"`
	YoutubeID    string    `json:"youtube_id"`
	ThumbnailURL *string   `json:"thumbnail_url"`
	PublishedAt  time.Time `json:"published_at"`
	Description  *string   `json:"description"`
}
