package messages

import (
	"context"
	"database/sql"
	"errors"
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

// New creates a message repository implementing the System interface.
func New(
	db *sql.DB,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "messages"),
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
) (*pagination.PageResult[Message], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Title", "Speaker", "Passage")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count messages: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	msgs, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanMessage)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}

	result := pagination.NewPageResult(msgs, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Message, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	m, err := repository.QueryOne(ctx, r.db, q, args, scanMessage)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &m, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Message, error) {
	q := `
		INSERT INTO messages(id, tenant_id, title, speaker, passage, preached_at, video_id, video_url, thumbnail_url, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, tenant_id, title, speaker, passage, preached_at, video_id, video_url, thumbnail_url, description, created_at, updated_at`

	args := []any{
		uuid.New(),
		cmd.TenantID,
		cmd.Title,
		cmd.Speaker,
		cmd.Passage,
		cmd.PreachedAt,
		cmd.VideoID,
		cmd.VideoURL,
		cmd.ThumbnailURL,
		cmd.Description,
	}

	m, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Message, error) {
		return repository.QueryOne(ctx, tx, q, args, scanMessage)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("message created", "id", m.ID, "tenant", m.TenantID, "title", m.Title)
	return &m, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Message, error) {
	q := `
		UPDATE messages
		SET title = $1, speaker = $2, passage = $3, preached_at = $4, video_id = $5, video_url = $6, thumbnail_url = $7, description = $8, updated_at = now()
		WHERE id = $9
		RETURNING id, tenant_id, title, speaker, passage, preached_at, video_id, video_url, thumbnail_url, description, created_at, updated_at`

	args := []any{
		cmd.Title,
		cmd.Speaker,
		cmd.Passage,
		cmd.PreachedAt,
		cmd.VideoID,
		cmd.VideoURL,
		cmd.ThumbnailURL,
		cmd.Description,
		id,
	}

	m, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Message, error) {
		return repository.QueryOne(ctx, tx, q, args, scanMessage)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("message updated", "id", m.ID, "title", m.Title)
	return &m, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM messages WHERE id = $1",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("message deleted", "id", id)
	return nil
}

func (r *repo) Latest(ctx context.Context, tenantID string) (*Message, error) {
	q, args := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("TenantID", &tenantID).
		BuildSingleOrNull()

	m, err := repository.QueryOne(ctx, r.db, q, args, scanMessage)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest message: %w", err)
	}
	return &m, nil
}

func (r *repo) All(ctx context.Context, tenantID string) ([]Message, error) {
	q, args := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("TenantID", &tenantID).
		Build()

	msgs, err := repository.QueryMany(ctx, r.db, q, args, scanMessage)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	return msgs, nil
}
