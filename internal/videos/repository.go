package videos

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

// New creates a video repository implementing the System interface.
func New(
	db *sql.DB,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "videos"),
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
) (*pagination.PageResult[Video], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Title", "Description")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count videos: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	vids, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanVideo)
	if err != nil {
		return nil, fmt.Errorf("query videos: %w", err)
	}

	result := pagination.NewPageResult(vids, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Video, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	v, err := repository.QueryOne(ctx, r.db, q, args, scanVideo)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &v, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Video, error) {
	q := `
		INSERT INTO videos(id, tenant_id, title, youtube_id, thumbnail_url, published_at, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, tenant_id, title, youtube_id, thumbnail_url, published_at, description, created_at, updated_at`

	args := []any{
		uuid.New(),
		cmd.TenantID,
		cmd.Title,
		cmd.YoutubeID,
		cmd.ThumbnailURL,
		cmd.PublishedAt,
		cmd.Description,
	}

	v, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Video, error) {
		return repository.QueryOne(ctx, tx, q, args, scanVideo)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("video created", "id", v.ID, "tenant", v.TenantID, "title", v.Title)
	return &v, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Video, error) {
	q := `
		UPDATE videos
		SET title = $1, youtube_id = $2, thumbnail_url = $3, published_at = $4, description = $5, updated_at = now()
		WHERE id = $6
		RETURNING id, tenant_id, title, youtube_id, thumbnail_url, published_at, description, created_at, updated_at`

	args := []any{
		cmd.Title,
		cmd.YoutubeID,
		cmd.ThumbnailURL,
		cmd.PublishedAt,
		cmd.Description,
		id,
	}

	v, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Video, error) {
		return repository.QueryOne(ctx, tx, q, args, scanVideo)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("video updated", "id", v.ID, "title", v.Title)
	return &v, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM videos WHERE id = $1",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("video deleted", "id", id)
	return nil
}

func (r *repo) Latest(ctx context.Context, tenantID string, count int) ([]Video, error) {
	q, args := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("TenantID", &tenantID).
		BuildLimit(count)

	vids, err := repository.QueryMany(ctx, r.db, q, args, scanVideo)
	if err != nil {
		return nil, fmt.Errorf("query latest videos: %w", err)
	}
	return vids, nil
}

func (r *repo) All(ctx context.Context, tenantID string) ([]Video, error) {
	q, args := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("TenantID", &tenantID).
		Build()

	vids, err := repository.QueryMany(ctx, r.db, q, args, scanVideo)
	if err != nil {
		return nil, fmt.Errorf("query videos: %w", err)
	}
	return vids, nil
}
