package messages

import (
	"context"

	"github.com/google/uuid"

	"github.com/steeplehq/steeple/pkg/pagination"
)

// System defines the public contract for message domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Message], error)

	Find(ctx context.Context, id uuid.UUID) (*Message, error)
	Create(ctx context.Context, cmd CreateCommand) (*Message, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Message, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Latest returns the tenant's most recently preached message,
	// or (nil, nil) when the tenant has no messages yet.
	Latest(ctx context.Context, tenantID string) (*Message, error)

	// All returns every message for the tenant, newest first.
	All(ctx context.Context, tenantID string) ([]Message, error)
}
