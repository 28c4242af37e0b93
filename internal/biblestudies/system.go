package biblestudies

import (
	"context"

	"github.com/google/uuid"

	"github.com/steeplehq/steeple/pkg/pagination"
)

// System defines the public contract for bible study domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Study], error)

	Find(ctx context.Context, id uuid.UUID) (*Study, error)
	Create(ctx context.Context, cmd CreateCommand) (*Study, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Study, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// All returns every study for the tenant, newest study date first.
	All(ctx context.Context, tenantID string) ([]Study, error)
}
