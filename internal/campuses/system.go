package campuses

import (
	"context"

	"github.com/google/uuid"

	"github.com/steeplehq/steeple/pkg/pagination"
)

// System defines the public contract for campus domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Campus], error)

	Find(ctx context.Context, id uuid.UUID) (*Campus, error)
	Create(ctx context.Context, cmd CreateCommand) (*Campus, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Campus, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// All returns every campus for the tenant in name order, including
	// any sentinel "all" campus. Callers that present campuses to site
	// visitors filter the sentinel out.
	All(ctx context.Context, tenantID string) ([]Campus, error)
}
