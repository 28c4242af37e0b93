package pages

import (
	"context"
	"database/sql"
	"encoding/json"
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

// New creates a page repository implementing the System interface.
func New(
	db *sql.DB,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "pages"),
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
) (*pagination.PageResult[Page], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Slug", "Title")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count pages: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	results, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanPage)
	if err != nil {
		return nil, fmt.Errorf("query pages: %w", err)
	}

	result := pagination.NewPageResult(results, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Page, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	p, err := repository.QueryOne(ctx, r.db, q, args, scanPage)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &p, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Page, error) {
	q := `
		INSERT INTO pages(id, tenant_id, slug, title, published)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, tenant_id, slug, title, published, created_at, updated_at`

	args := []any{
		uuid.New(),
		cmd.TenantID,
		cmd.Slug,
		cmd.Title,
		cmd.Published,
	}

	p, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Page, error) {
		return repository.QueryOne(ctx, tx, q, args, scanPage)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("page created", "id", p.ID, "tenant", p.TenantID, "slug", p.Slug)
	return &p, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Page, error) {
	q := `
		UPDATE pages
		SET slug = $1, title = $2, published = $3, updated_at = now()
		WHERE id = $4
		RETURNING id, tenant_id, slug, title, published, created_at, updated_at`

	args := []any{
		cmd.Slug,
		cmd.Title,
		cmd.Published,
		id,
	}

	p, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Page, error) {
		return repository.QueryOne(ctx, tx, q, args, scanPage)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("page updated", "id", p.ID, "slug", p.Slug)
	return &p, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	// Sections ride along via ON DELETE CASCADE.
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM pages WHERE id = $1",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("page deleted", "id", id)
	return nil
}

func (r *repo) FindBySlug(ctx context.Context, tenantID, slug string) (*Page, error) {
	q, args := query.
		NewBuilder(projection).
		WhereEquals("TenantID", &tenantID).
		WhereEquals("Slug", &slug).
		BuildSingleOrNull()

	p, err := repository.QueryOne(ctx, r.db, q, args, scanPage)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query page by slug: %w", err)
	}
	return &p, nil
}

func (r *repo) Sections(ctx context.Context, pageID uuid.UUID) ([]Section, error) {
	q, args := query.
		NewBuilder(sectionProjection, sectionSort).
		WhereEquals("PageID", &pageID).
		Build()

	sections, err := repository.QueryMany(ctx, r.db, q, args, scanSection)
	if err != nil {
		return nil, fmt.Errorf("query sections: %w", err)
	}
	return sections, nil
}

func (r *repo) FindSection(ctx context.Context, id uuid.UUID) (*Section, error) {
	q, args := query.NewBuilder(sectionProjection).BuildSingle("ID", id)

	s, err := repository.QueryOne(ctx, r.db, q, args, scanSection)
	if err != nil {
		return nil, repository.MapError(err, ErrSectionNotFound, ErrDuplicate)
	}
	return &s, nil
}

func (r *repo) CreateSection(
	ctx context.Context,
	pageID uuid.UUID,
	cmd CreateSectionCommand,
) (*Section, error) {
	content, err := marshalContent(cmd.Content)
	if err != nil {
		return nil, err
	}

	q := `
		INSERT INTO sections(id, page_id, section_type, content, sort_order, visible)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, page_id, section_type, content, sort_order, visible, created_at, updated_at`

	args := []any{
		uuid.New(),
		pageID,
		cmd.SectionType,
		content,
		cmd.SortOrder,
		cmd.Visible,
	}

	s, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Section, error) {
		return repository.QueryOne(ctx, tx, q, args, scanSection)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrSectionNotFound, ErrDuplicate)
	}

	r.logger.Info("section created", "id", s.ID, "page", s.PageID, "type", s.SectionType)
	return &s, nil
}

func (r *repo) UpdateSection(
	ctx context.Context,
	id uuid.UUID,
	cmd UpdateSectionCommand,
) (*Section, error) {
	content, err := marshalContent(cmd.Content)
	if err != nil {
		return nil, err
	}

	q := `
		UPDATE sections
		SET section_type = $1, content = $2, sort_order = $3, visible = $4, updated_at = now()
		WHERE id = $5
		RETURNING id, page_id, section_type, content, sort_order, visible, created_at, updated_at`

	args := []any{
		cmd.SectionType,
		content,
		cmd.SortOrder,
		cmd.Visible,
		id,
	}

	s, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Section, error) {
		return repository.QueryOne(ctx, tx, q, args, scanSection)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrSectionNotFound, ErrDuplicate)
	}

	r.logger.Info("section updated", "id", s.ID, "type", s.SectionType)
	return &s, nil
}

func (r *repo) DeleteSection(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM sections WHERE id = $1",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrSectionNotFound, ErrDuplicate)
	}

	r.logger.Info("section deleted", "id", id)
	return nil
}

func marshalContent(content map[string]any) ([]byte, error) {
	if content == nil {
		content = map[string]any{}
	}

	raw, err := json.Marshal(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return raw, nil
}
