package knowledge

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/demowin23/vilaw-be/lifecycle"
)

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

const selectColumns = `
	lk.id, lk.title, lk.image, lk.summary, lk.category, lk.author, lk.status,
	lk.view_count, lk.like_count, lk.created_by, lk.is_featured, lk.is_approved,
	lk.is_active, lk.content, lk.ts_create, lk.ts_update,
	u.full_name AS created_by_name`

func buildConditions(f *ListFilter) ([]string, []interface{}) {
	conditions := []string{"lk.is_active = true"}
	var args []interface{}
	idx := 1

	next := func() int { n := idx; idx++; return n }

	if f.Category != "" {
		conditions = append(conditions, fmt.Sprintf("lk.category = $%d", next()))
		args = append(args, f.Category)
	}

	if f.Status != "" {
		conditions = append(conditions, fmt.Sprintf("lk.status = $%d", next()))
		args = append(args, f.Status)
	}

	if f.IsFeatured {
		conditions = append(conditions, "lk.is_featured = true")
	}

	if f.Search != "" {
		n := next()
		conditions = append(conditions,
			fmt.Sprintf("(lk.title ILIKE $%d OR lk.summary ILIKE $%d)", n, n))
		args = append(args, "%"+f.Search+"%")
	}

	if cond := lifecycle.ApprovalCondition(f.Role, f.Pending, "lk.is_approved"); cond != "" {
		conditions = append(conditions, cond)
	}

	return conditions, args
}

func (r *Repository) List(ctx context.Context, f *ListFilter) ([]LegalKnowledge, int64, error) {
	conditions, args := buildConditions(f)
	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM legal_knowledge lk WHERE %s`, where)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM legal_knowledge lk
		LEFT JOIN users u ON lk.created_by = u.id
		WHERE %s
		ORDER BY lk.ts_create DESC
		LIMIT $%d OFFSET $%d`,
		selectColumns, where, len(args)+1, len(args)+2)
	args = append(args, f.Limit, f.Offset)

	articles := []LegalKnowledge{}
	if err := r.db.SelectContext(ctx, &articles, query, args...); err != nil {
		return nil, 0, err
	}

	return articles, total, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*LegalKnowledge, error) {
	var article LegalKnowledge
	query := fmt.Sprintf(`
		SELECT %s
		FROM legal_knowledge lk
		LEFT JOIN users u ON lk.created_by = u.id
		WHERE lk.id = $1 AND lk.is_active = true`, selectColumns)
	err := r.db.GetContext(ctx, &article, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, lifecycle.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *Repository) IncrementViewCount(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE legal_knowledge SET view_count = view_count + 1 WHERE id = $1`, id)
	return err
}

func (r *Repository) Create(ctx context.Context, a *LegalKnowledge) (*LegalKnowledge, error) {
	var created LegalKnowledge
	err := r.db.GetContext(ctx, &created, `
		INSERT INTO legal_knowledge (
			title, image, summary, content, category, author,
			status, is_featured, created_by, is_approved
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, title, image, summary, category, author, status,
			view_count, like_count, created_by, is_featured, is_approved,
			is_active, content, ts_create, ts_update`,
		a.Title, a.Image, a.Summary, a.Content, a.Category, a.Author,
		a.Status, a.IsFeatured, a.CreatedBy, a.IsApproved)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *Repository) Update(ctx context.Context, id int64, req *UpdateRequest, image *string) (*LegalKnowledge, error) {
	fields := []string{}
	var args []interface{}
	idx := 1

	set := func(column string, value interface{}) {
		fields = append(fields, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}

	if req.Title != nil {
		set("title", *req.Title)
	}
	if image != nil {
		set("image", *image)
	}
	if req.Summary != nil {
		set("summary", *req.Summary)
	}
	if req.Content != nil {
		set("content", *req.Content)
	}
	if req.Category != nil {
		set("category", *req.Category)
	}
	if req.Author != nil {
		set("author", *req.Author)
	}
	if req.Status != nil {
		set("status", *req.Status)
	}
	if req.IsFeatured != nil {
		set("is_featured", *req.IsFeatured)
	}

	fields = append(fields, "ts_update = CURRENT_TIMESTAMP")
	args = append(args, id)

	var updated LegalKnowledge
	query := fmt.Sprintf(`
		UPDATE legal_knowledge
		SET %s
		WHERE id = $%d AND is_active = true
		RETURNING id, title, image, summary, category, author, status,
			view_count, like_count, created_by, is_featured, is_approved,
			is_active, content, ts_create, ts_update`,
		strings.Join(fields, ", "), idx)
	err := r.db.GetContext(ctx, &updated, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, lifecycle.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *Repository) SetApproved(ctx context.Context, id int64, approved bool) (*LegalKnowledge, error) {
	var updated LegalKnowledge
	err := r.db.GetContext(ctx, &updated, `
		UPDATE legal_knowledge
		SET is_approved = $2, ts_update = CURRENT_TIMESTAMP
		WHERE id = $1 AND is_active = true
		RETURNING id, title, image, summary, category, author, status,
			view_count, like_count, created_by, is_featured, is_approved,
			is_active, content, ts_create, ts_update`,
		id, approved)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, lifecycle.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the article permanently. Knowledge articles are not
// soft-deleted; the editorial flow recreates them instead.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM legal_knowledge WHERE id = $1`, id)
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
