package sitecontent

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/demowin23/vilaw-be/lifecycle"
)

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetAll(ctx context.Context) ([]SiteContent, error) {
	rows := []SiteContent{}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT content_key, content, version, updated_by, ts_update
		FROM site_content
		ORDER BY content_key`)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repository) GetByKey(ctx context.Context, key string) (*SiteContent, error) {
	var sc SiteContent
	err := r.db.GetContext(ctx, &sc, `
		SELECT content_key, content, version, updated_by, ts_update
		FROM site_content
		WHERE content_key = $1`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, lifecycle.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sc, nil
}

// Update replaces the stored payload under optimistic locking. When
// expectedVersion is non-nil the write only goes through if the row still
// carries that version.
func (r *Repository) Update(ctx context.Context, key string, content []byte, updatedBy string, expectedVersion *int) (*SiteContent, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var currentVersion int
	err = tx.GetContext(ctx, &currentVersion, `
		SELECT version FROM site_content
		WHERE content_key = $1
		FOR UPDATE`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, lifecycle.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if expectedVersion != nil && currentVersion != *expectedVersion {
		return nil, fmt.Errorf("%w: version conflict, current version is %d",
			lifecycle.ErrConflict, currentVersion)
	}

	var updated SiteContent
	err = tx.GetContext(ctx, &updated, `
		UPDATE site_content
		SET content = $1, version = $2, updated_by = $3, ts_update = CURRENT_TIMESTAMP
		WHERE content_key = $4
		RETURNING content_key, content, version, updated_by, ts_update`,
		content, currentVersion+1, updatedBy, key)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &updated, nil
}
