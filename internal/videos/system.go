package videos

import (
	"context"

	"github.com/google/uuid"

	"github.com/steeplehq/steeple/pkg/pagination"
)

// System defines the public contract for video domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Video], error)

	Find(ctx context.Context, id uuid.UUID) (*Video, error)
	Create(ctx context.Context, cmd CreateCommand) (*Video, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Video, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Latest returns the tenant's most recently published videos, newest
	// first, capped at count.
	Latest(ctx context.Context, tenantID string, count int) ([]Video, error)

	// All returns every video for the tenant, newest first.
	All(ctx context.Context, tenantID string) ([]Video, error)
}
