package dailybread

import (
	"context"

	"github.com/google/uuid"

	"github.com/steeplehq/steeple/pkg/pagination"
)

// System defines the public contract for daily bread domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Entry], error)

	Find(ctx context.Context, id uuid.UUID) (*Entry, error)
	Create(ctx context.Context, cmd CreateCommand) (*Entry, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Entry, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Latest returns the tenant's most recent entry dated today or earlier,
	// or (nil, nil) when no such entry exists. Future-dated entries are
	// drafts and never surface.
	Latest(ctx context.Context, tenantID string) (*Entry, error)
}
