// Package media implements blob-backed file storage for Steeple. It
// provides types, data access, and HTTP handlers for uploading,
// downloading, and managing tenant media such as bulletins, study
// guides, and section imagery.
package media

import (
	"time"

	"github.com/google/uuid"
)

// Media represents an uploaded file with its metadata and blob storage reference.
type Media struct {
	ID          uuid.UUID `json:"id"`
	TenantID    string    `json:"tenant_id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	PageCount   *int      `json:"page_count"`
	StorageKey  string    `json:"storage_key"`
	Category    *string   `json:"category"`
	UploadedAt  time.Time `json:"uploaded_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateCommand carries the data needed to upload and register a new
// media file. Data holds the raw file bytes. PageCount is optional and
// may be extracted by the caller via pdfcpu; nil values are stored as NULL.
type CreateCommand struct {
	Data        []byte
	TenantID    string
	Filename    string
	ContentType string
	Category    *string
	PageCount   *int
}

// BatchResult reports the outcome of a single file within a batch upload.
// On success, Media is populated and Error is empty.
// On failure, Error describes the problem and Media is nil.
type BatchResult struct {
	Media    *Media `json:"media,omitempty"`
	Filename string `json:"filename"`
	Error    string `json:"error,omitempty"`
}
