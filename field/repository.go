package field

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

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

const selectColumns = `
	lf.id, lf.name, lf.slug, lf.description, lf.icon, lf.color, lf.sort_order,
	lf.created_by, lf.is_approved, lf.is_active, lf.ts_create, lf.ts_update,
	u.full_name AS created_by_name`

func (r *Repository) List(ctx context.Context, f *ListFilter) ([]LegalField, int64, error) {
	conditions := []string{"1=1"}
	var args []interface{}
	idx := 1

	if f.Search != "" {
		conditions = append(conditions,
			fmt.Sprintf("(lf.name ILIKE $%d OR lf.description ILIKE $%d)", idx, idx))
		args = append(args, "%"+f.Search+"%")
		idx++
	}

	if f.IsActive != nil {
		conditions = append(conditions, fmt.Sprintf("lf.is_active = $%d", idx))
		args = append(args, *f.IsActive)
		idx++
	} else {
		conditions = append(conditions, "lf.is_active = true")
	}

	if cond := lifecycle.ApprovalCondition(f.Role, f.Pending, "lf.is_approved"); cond != "" {
		conditions = append(conditions, cond)
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM legal_fields lf WHERE %s`, where)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM legal_fields lf
		LEFT JOIN users u ON lf.created_by = u.id
		WHERE %s
		ORDER BY lf.sort_order ASC, lf.id ASC
		LIMIT $%d OFFSET $%d`,
		selectColumns, where, idx, idx+1)
	args = append(args, f.Limit, f.Offset)

	fields := []LegalField{}
	if err := r.db.SelectContext(ctx, &fields, query, args...); err != nil {
		return nil, 0, err
	}

	return fields, total, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*LegalField, error) {
	var lf LegalField
	query := fmt.Sprintf(`
		SELECT %s
		FROM legal_fields lf
		LEFT JOIN users u ON lf.created_by = u.id
		WHERE lf.id = $1 AND lf.is_active = true`, selectColumns)
	err := r.db.GetContext(ctx, &lf, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, lifecycle.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &lf, nil
}

func (r *Repository) GetBySlug(ctx context.Context, slug string) (*LegalField, error) {
	var lf LegalField
	query := fmt.Sprintf(`
		SELECT %s
		FROM legal_fields lf
		LEFT JOIN users u ON lf.created_by = u.id
		WHERE lf.slug = $1 AND lf.is_active = true`, selectColumns)
	err := r.db.GetContext(ctx, &lf, query, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, lifecycle.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &lf, nil
}

func (r *Repository) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM legal_fields WHERE slug = $1 AND id <> $2)`,
		slug, excludeID)
	return exists, err
}

func (r *Repository) Create(ctx context.Context, lf *LegalField) (*LegalField, error) {
	var created LegalField
	err := r.db.GetContext(ctx, &created, `
		INSERT INTO legal_fields (name, slug, description, icon, color, sort_order, created_by, is_approved)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, name, slug, description, icon, color, sort_order,
			created_by, is_approved, is_active, ts_create, ts_update`,
		lf.Name, lf.Slug, lf.Description, lf.Icon, lf.Color, lf.SortOrder,
		lf.CreatedBy, lf.IsApproved)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: slug already exists", lifecycle.ErrConflict)
		}
		return nil, err
	}
	return &created, nil
}

func (r *Repository) Update(ctx context.Context, id int64, req *UpdateRequest) (*LegalField, error) {
	fields := []string{}
	var args []interface{}
	idx := 1

	set := func(column string, value interface{}) {
		fields = append(fields, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}

	if req.Name != nil {
		set("name", *req.Name)
	}
	if req.Slug != nil {
		set("slug", *req.Slug)
	}
	if req.Description != nil {
		set("description", *req.Description)
	}
	if req.Icon != nil {
		set("icon", *req.Icon)
	}
	if req.Color != nil {
		set("color", *req.Color)
	}
	if req.SortOrder != nil {
		set("sort_order", *req.SortOrder)
	}
	if req.IsActive != nil {
		set("is_active", *req.IsActive)
	}

	fields = append(fields, "ts_update = CURRENT_TIMESTAMP")
	args = append(args, id)

	var updated LegalField
	query := fmt.Sprintf(`
		UPDATE legal_fields
		SET %s
		WHERE id = $%d
		RETURNING id, name, slug, description, icon, color, sort_order,
			created_by, is_approved, is_active, ts_create, ts_update`,
		strings.Join(fields, ", "), idx)
	err := r.db.GetContext(ctx, &updated, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, lifecycle.ErrNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: slug already exists", lifecycle.ErrConflict)
		}
		return nil, err
	}
	return &updated, nil
}

func (r *Repository) SetApproved(ctx context.Context, id int64, approved bool) (*LegalField, error) {
	var updated LegalField
	err := r.db.GetContext(ctx, &updated, `
		UPDATE legal_fields
		SET is_approved = $2, ts_update = CURRENT_TIMESTAMP
		WHERE id = $1 AND is_active = true
		RETURNING id, name, slug, description, icon, color, sort_order,
			created_by, is_approved, is_active, ts_create, ts_update`,
		id, approved)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, lifecycle.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *Repository) ListPending(ctx context.Context) ([]LegalField, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM legal_fields lf
		LEFT JOIN users u ON lf.created_by = u.id
		WHERE lf.is_active = true AND lf.is_approved = false
		ORDER BY lf.ts_create DESC`, selectColumns)

	fields := []LegalField{}
	if err := r.db.SelectContext(ctx, &fields, query); err != nil {
		return nil, err
	}
	return fields, nil
}

func (r *Repository) SoftDelete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE legal_fields
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

// HardDelete removes the row entirely, admin recovery path only.
func (r *Repository) HardDelete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM legal_fields WHERE id = $1`, id)
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

// Dropdown lists the active approved fields in display order.
func (r *Repository) Dropdown(ctx context.Context) ([]DropdownItem, error) {
	items := []DropdownItem{}
	err := r.db.SelectContext(ctx, &items, `
		SELECT id, name, slug, color, icon
		FROM legal_fields
		WHERE is_active = true AND is_approved = true
		ORDER BY sort_order ASC, name ASC`)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
