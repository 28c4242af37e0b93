package media

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/steeplehq/steeple/pkg/pagination"
	"github.com/steeplehq/steeple/pkg/query"
	"github.com/steeplehq/steeple/pkg/repository"
	"github.com/steeplehq/steeple/pkg/storage"
)

type repo struct {
	db         *sql.DB
	storage    storage.System
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a media repository implementing the System interface.
func New(
	db *sql.DB,
	store storage.System,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		storage:    store,
		logger:     logger.With("system", "media"),
		pagination: pagination,
	}
}

func (r *repo) Handler(maxUploadSize int64) *Handler {
	return NewHandler(r, r.logger, r.pagination, maxUploadSize)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Media], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Filename", "Category")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count media: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	files, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanMedia)
	if err != nil {
		return nil, fmt.Errorf("query media: %w", err)
	}

	result := pagination.NewPageResult(files, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Media, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	m, err := repository.QueryOne(ctx, r.db, q, args, scanMedia)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &m, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Media, error) {
	id := uuid.New()
	key := buildStorageKey(cmd.TenantID, id, sanitizeFilename(cmd.Filename))

	if err := r.storage.Upload(ctx, key, bytes.NewReader(cmd.Data), cmd.ContentType); err != nil {
		return nil, fmt.Errorf("upload media blob: %w", err)
	}

	q := `
		INSERT INTO media(id, tenant_id, filename, content_type, size_bytes, page_count, storage_key, category)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, tenant_id, filename, content_type, size_bytes, page_count, storage_key, category, uploaded_at, updated_at`

	insertArgs := []any{
		id,
		cmd.TenantID,
		cmd.Filename,
		cmd.ContentType,
		int64(len(cmd.Data)),
		cmd.PageCount,
		key,
		cmd.Category,
	}

	m, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Media, error) {
		return repository.QueryOne(ctx, tx, q, insertArgs, scanMedia)
	})

	if err != nil {
		if delErr := r.storage.Delete(ctx, key); delErr != nil {
			r.logger.Warn("compensating blob delete failed", "key", key, "error", delErr)
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("media created", "id", m.ID, "tenant", m.TenantID, "filename", m.Filename)
	return &m, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	m, err := r.Find(ctx, id)
	if err != nil {
		return err
	}

	_, err = repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM media WHERE id = $1",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	if delErr := r.storage.Delete(ctx, m.StorageKey); delErr != nil {
		r.logger.Warn(
			"blob delete failed after DB delete",
			"key", m.StorageKey,
			"error", delErr,
		)
	}

	r.logger.Info("media deleted", "id", id)
	return nil
}

func (r *repo) Download(ctx context.Context, id uuid.UUID) (*Media, io.ReadCloser, error) {
	m, err := r.Find(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	reader, err := r.storage.Download(ctx, m.StorageKey)
	if err != nil {
		return nil, nil, fmt.Errorf("download media blob: %w", err)
	}

	return m, reader, nil
}

func buildStorageKey(tenantID string, id uuid.UUID, filename string) string {
	return fmt.Sprintf("%s/%s/%s", tenantID, id, filename)
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	if name == "." || name == "" {
		name = "media"
	}
	return url.PathEscape(name)
}
