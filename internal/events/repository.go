package events

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/steeplehq/steeple/pkg/pagination"
	"github.com/steeplehq/steeple/pkg/query"
	"github.com/steeplehq/steeple/pkg/repository"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates an event repository implementing the System interface.
func New(
	db *sql.DB,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "events"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Event], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Title", "Location", "MinistrySlug")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	events, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanEvent)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}

	result := pagination.NewPageResult(events, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Event, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	e, err := repository.QueryOne(ctx, r.db, q, args, scanEvent)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &e, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Event, error) {
	q := `
		INSERT INTO events(id, tenant_id, title, starts_at, ends_at, location, ministry_slug, featured, registration_url, image_url, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, tenant_id, title, starts_at, ends_at, location, ministry_slug, featured, registration_url, image_url, description, created_at, updated_at`

	args := []any{
		uuid.New(),
		cmd.TenantID,
		cmd.Title,
		cmd.StartsAt,
		cmd.EndsAt,
		cmd.Location,
		cmd.MinistrySlug,
		cmd.Featured,
		cmd.RegistrationURL,
		cmd.ImageURL,
		cmd.Description,
	}

	e, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Event, error) {
		return repository.QueryOne(ctx, tx, q, args, scanEvent)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("event created", "id", e.ID, "tenant", e.TenantID, "title", e.Title)
	return &e, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Event, error) {
	q := `
		UPDATE events
		SET title = $1, starts_at = $2, ends_at = $3, location = $4, ministry_slug = $5, featured = $6, registration_url = $7, image_url = $8, description = $9, updated_at = now()
		WHERE id = $10
		RETURNING id, tenant_id, title, starts_at, ends_at, location, ministry_slug, featured, registration_url, image_url, description, created_at, updated_at`

	args := []any{
		cmd.Title,
		cmd.StartsAt,
		cmd.EndsAt,
		cmd.Location,
		cmd.MinistrySlug,
		cmd.Featured,
		cmd.RegistrationURL,
		cmd.ImageURL,
		cmd.Description,
		id,
	}

	e, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Event, error) {
		return repository.QueryOne(ctx, tx, q, args, scanEvent)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("event updated", "id", e.ID, "title", e.Title)
	return &e, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM events WHERE id = $1",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("event deleted", "id", id)
	return nil
}

func (r *repo) Upcoming(ctx context.Context, tenantID string, limit int) ([]Event, error) {
	now := time.Now()
	q, args := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("TenantID", &tenantID).
		WhereAtLeast("StartsAt", &now).
		BuildLimit(limit)

	events, err := repository.QueryMany(ctx, r.db, q, args, scanEvent)
	if err != nil {
		return nil, fmt.Errorf("query upcoming events: %w", err)
	}
	return events, nil
}

func (r *repo) Featured(ctx context.Context, tenantID string, limit int) ([]Event, error) {
	now := time.Now()
	featured := true
	q, args := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("TenantID", &tenantID).
		WhereEquals("Featured", &featured).
		WhereAtLeast("StartsAt", &now).
		BuildLimit(limit)

	events, err := repository.QueryMany(ctx, r.db, q, args, scanEvent)
	if err != nil {
		return nil, fmt.Errorf("query featured events: %w", err)
	}
	return events, nil
}

func (r *repo) All(ctx context.Context, tenantID string) ([]Event, error) {
	q, args := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("TenantID", &tenantID).
		Build()

	events, err := repository.QueryMany(ctx, r.db, q, args, scanEvent)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	return events, nil
}
