package media

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/steeplehq/steeple/pkg/pagination"
)

// System defines the public contract for media domain operations.
type System interface {
	Handler(maxUploadSize int64) *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Media], error)

	Find(ctx context.Context, id uuid.UUID) (*Media, error)
	Create(ctx context.Context, cmd CreateCommand) (*Media, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Download streams the stored blob for a media record. The caller
	// owns the returned reader and must close it.
	Download(ctx context.Context, id uuid.UUID) (*Media, io.ReadCloser, error)
}
