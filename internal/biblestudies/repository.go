package biblestudies

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

// New creates a bible study repository implementing the System interface.
func New(
	db *sql.DB,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "biblestudies"),
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
) (*pagination.PageResult[Study], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Title", "Passage")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count studies: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	studies, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanStudy)
	if err != nil {
		return nil, fmt.Errorf("query studies: %w", err)
	}

	result := pagination.NewPageResult(studies, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Study, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	st, err := repository.QueryOne(ctx, r.db, q, args, scanStudy)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &st, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Study, error) {
	q := `
		INSERT INTO bible_studies(id, tenant_id, title, passage, study_date, guide_url, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, tenant_id, title, passage, study_date, guide_url, description, created_at, updated_at`

	args := []any{
		uuid.New(),
		cmd.TenantID,
		cmd.Title,
		cmd.Passage,
		cmd.StudyDate,
		cmd.GuideURL,
		cmd.Description,
	}

	st, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Study, error) {
		return repository.QueryOne(ctx, tx, q, args, scanStudy)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("study created", "id", st.ID, "tenant", st.TenantID, "title", st.Title)
	return &st, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Study, error) {
	q := `
		UPDATE bible_studies
		SET title = $1, passage = $2, study_date = $3, guide_url = $4, description = $5, updated_at = now()
		WHERE id = $6
		RETURNING id, tenant_id, title, passage, study_date, guide_url, description, created_at, updated_at`

	args := []any{
		cmd.Title,
		cmd.Passage,
		cmd.StudyDate,
		cmd.GuideURL,
		cmd.Description,
		id,
	}

	st, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Study, error) {
		return repository.QueryOne(ctx, tx, q, args, scanStudy)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("study updated", "id", st.ID, "title", st.Title)
	return &st, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM bible_studies WHERE id = $1",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("study deleted", "id", id)
	return nil
}

func (r *repo) All(ctx context.Context, tenantID string) ([]Study, error) {
	q, args := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("TenantID", &tenantID).
		Build()

	studies, err := repository.QueryMany(ctx, r.db, q, args, scanStudy)
	if err != nil {
		return nil, fmt.Errorf("query studies: %w", err)
	}
	return studies, nil
}
