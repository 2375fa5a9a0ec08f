package category

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/demowin23/vilaw-be/lifecycle"
)

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

const columns = `id, value, label, description, is_approved, is_active, ts_create, ts_update`

// ListVisible returns active categories scoped by the caller's role:
// privileged callers see unapproved entries too.
func (r *Repository) ListVisible(ctx context.Context, role lifecycle.Role) ([]Category, error) {
	query := fmt.Sprintf(`SELECT %s FROM category WHERE is_active = true`, columns)
	if cond := lifecycle.ApprovalCondition(role, lifecycle.PendingUnset, "is_approved"); cond != "" {
		query += " AND " + cond
	}
	query += " ORDER BY ts_create DESC"

	categories := []Category{}
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *Repository) ListPending(ctx context.Context) ([]Category, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM category
		WHERE is_active = true AND is_approved = false
		ORDER BY ts_create DESC`, columns)

	categories := []Category{}
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Category, error) {
	var c Category
	query := fmt.Sprintf(`SELECT %s FROM category WHERE id = $1 AND is_active = true`, columns)
	err := r.db.GetContext(ctx, &c, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, lifecycle.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ValueExists reports whether an active, approved category carries the value.
func (r *Repository) ValueExists(ctx context.Context, value string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `
		SELECT EXISTS(
			SELECT 1 FROM category
			WHERE value = $1 AND is_active = true AND is_approved = true
		)`, value)
	return exists, err
}

func (r *Repository) Create(ctx context.Context, req *CreateRequest, approved bool) (*Category, error) {
	var c Category
	query := fmt.Sprintf(`
		INSERT INTO category (value, label, description, is_approved)
		VALUES ($1, $2, $3, $4)
		RETURNING %s`, columns)
	err := r.db.GetContext(ctx, &c, query, req.Value, req.Label, req.Description, approved)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: category value already exists", lifecycle.ErrConflict)
		}
		return nil, err
	}
	return &c, nil
}

func (r *Repository) Update(ctx context.Context, id int64, req *UpdateRequest) (*Category, error) {
	var c Category
	query := fmt.Sprintf(`
		UPDATE category SET
			value = COALESCE($2, value),
			label = COALESCE($3, label),
			description = COALESCE($4, description),
			ts_update = CURRENT_TIMESTAMP
		WHERE id = $1 AND is_active = true
		RETURNING %s`, columns)
	err := r.db.GetContext(ctx, &c, query, id, req.Value, req.Label, req.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, lifecycle.ErrNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: category value already exists", lifecycle.ErrConflict)
		}
		return nil, err
	}
	return &c, nil
}

func (r *Repository) SetApproved(ctx context.Context, id int64, approved bool) (*Category, error) {
	var c Category
	query := fmt.Sprintf(`
		UPDATE category
		SET is_approved = $2, ts_update = CURRENT_TIMESTAMP
		WHERE id = $1 AND is_active = true
		RETURNING %s`, columns)
	err := r.db.GetContext(ctx, &c, query, id, approved)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, lifecycle.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) SoftDelete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE category
		SET is_active = false, ts_update = CURRENT_TIMESTAMP
		WHERE id = $1 AND is_active = true`, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return lifecycle.ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
