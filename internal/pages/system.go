package pages

import (
	"context"

	"github.com/google/uuid"

	"github.com/steeplehq/steeple/pkg/pagination"
)

// System defines the public contract for page and section operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Page], error)

	Find(ctx context.Context, id uuid.UUID) (*Page, error)
	Create(ctx context.Context, cmd CreateCommand) (*Page, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Page, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// FindBySlug returns the tenant's page with the given slug, or
	// (nil, nil) when no such page exists.
	FindBySlug(ctx context.Context, tenantID, slug string) (*Page, error)

	// Sections returns a page's sections ordered by sort order.
	Sections(ctx context.Context, pageID uuid.UUID) ([]Section, error)

	FindSection(ctx context.Context, id uuid.UUID) (*Section, error)
	CreateSection(ctx context.Context, pageID uuid.UUID, cmd CreateSectionCommand) (*Section, error)
	UpdateSection(ctx context.Context, id uuid.UUID, cmd UpdateSectionCommand) (*Section, error)
	DeleteSection(ctx context.Context, id uuid.UUID) error
}
