package events

import (
	"context"

	"github.com/google/uuid"

	"github.com/steeplehq/steeple/pkg/pagination"
)

// System defines the public contract for event domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Event], error)

	Find(ctx context.Context, id uuid.UUID) (*Event, error)
	Create(ctx context.Context, cmd CreateCommand) (*Event, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Event, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Upcoming returns the tenant's events starting now or later, soonest
	// first, capped at limit. A limit <= 0 returns all upcoming events.
	Upcoming(ctx context.Context, tenantID string, limit int) ([]Event, error)

	// Featured returns the tenant's upcoming featured events, soonest first,
	// capped at limit.
	Featured(ctx context.Context, tenantID string, limit int) ([]Event, error)

	// All returns every event for the tenant, soonest first.
	All(ctx context.Context, tenantID string) ([]Event, error)
}
