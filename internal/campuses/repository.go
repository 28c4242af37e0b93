package campuses

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

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

// New creates a campus repository implementing the System interface.
func New(
	db *sql.DB,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "campuses"),
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
) (*pagination.PageResult[Campus], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Name", "City")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count campuses: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	campuses, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanCampus)
	if err != nil {
		return nil, fmt.Errorf("query campuses: %w", err)
	}

	result := pagination.NewPageResult(campuses, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Campus, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	c, err := repository.QueryOne(ctx, r.db, q, args, scanCampus)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &c, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Campus, error) {
	q := `
		INSERT INTO campuses(id, tenant_id, name, slug, address, city, service_times, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, tenant_id, name, slug, address, city, service_times, image_url, created_at, updated_at`

	args := []any{
		uuid.New(),
		cmd.TenantID,
		cmd.Name,
		cmd.Slug,
		cmd.Address,
		cmd.City,
		cmd.ServiceTimes,
		cmd.ImageURL,
	}

	c, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Campus, error) {
		return repository.QueryOne(ctx, tx, q, args, scanCampus)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("campus created", "id", c.ID, "tenant", c.TenantID, "name", c.Name)
	return &c, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Campus, error) {
	q := `
		UPDATE campuses
		SET name = $1, slug = $2, address = $3, city = $4, service_times = $5, image_url = $6, updated_at = now()
		WHERE id = $7
		RETURNING id, tenant_id, name, slug, address, city, service_times, image_url, created_at, updated_at`

	args := []any{
		cmd.Name,
		cmd.Slug,
		cmd.Address,
		cmd.City,
		cmd.ServiceTimes,
		cmd.ImageURL,
		id,
	}

	c, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Campus, error) {
		return repository.QueryOne(ctx, tx, q, args, scanCampus)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("campus updated", "id", c.ID, "name", c.Name)
	return &c, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM campuses WHERE id = $1",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("campus deleted", "id", id)
	return nil
}

func (r *repo) All(ctx context.Context, tenantID string) ([]Campus, error) {
	q, args := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("TenantID", &tenantID).
		Build()

	campuses, err := repository.QueryMany(ctx, r.db, q, args, scanCampus)
	if err != nil {
		return nil, fmt.Errorf("query campuses: %w", err)
	}
	return campuses, nil
}
