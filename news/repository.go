package news

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
	ln.id, ln.title, ln.content, ln.description, ln.image, ln.view_count,
	ln.status, ln.tags, ln.author_id, ln.is_approved, ln.ts_create, ln.ts_update,
	u.full_name AS author_name, u.role AS author_role`

func buildConditions(f *ListFilter) ([]string, []interface{}) {
	conditions := []string{"1=1"}
	var args []interface{}
	idx := 1

	next := func() int { n := idx; idx++; return n }

	if f.Search != "" {
		n := next()
		conditions = append(conditions,
			fmt.Sprintf("(ln.title ILIKE $%d OR ln.content ILIKE $%d)", n, n))
		args = append(args, "%"+f.Search+"%")
	}

	if f.Status != "" {
		conditions = append(conditions, fmt.Sprintf("ln.status = $%d", next()))
		args = append(args, f.Status)
	}

	if len(f.Tags) > 0 {
		conditions = append(conditions, fmt.Sprintf("ln.tags && $%d", next()))
		args = append(args, pq.Array(f.Tags))
	}

	if cond := lifecycle.ApprovalCondition(f.Role, f.Pending, "ln.is_approved"); cond != "" {
		conditions = append(conditions, cond)
	}

	return conditions, args
}

func (r *Repository) List(ctx context.Context, f *ListFilter) ([]LegalNews, int64, error) {
	conditions, args := buildConditions(f)
	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM legal_news ln WHERE %s`, where)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM legal_news ln
		LEFT JOIN users u ON ln.author_id = u.id
		WHERE %s
		ORDER BY ln.id DESC
		LIMIT $%d OFFSET $%d`,
		selectColumns, where, len(args)+1, len(args)+2)
	args = append(args, f.Limit, f.Offset)

	items := []LegalNews{}
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, 0, err
	}

	for i := range items {
		items[i].flattenTags()
	}

	return items, total, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*LegalNews, error) {
	var item LegalNews
	query := fmt.Sprintf(`
		SELECT %s
		FROM legal_news ln
		LEFT JOIN users u ON ln.author_id = u.id
		WHERE ln.id = $1`, selectColumns)
	err := r.db.GetContext(ctx, &item, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, lifecycle.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	item.flattenTags()
	return &item, nil
}

func (r *Repository) IncrementViewCount(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE legal_news SET view_count = view_count + 1 WHERE id = $1`, id)
	return err
}

func (r *Repository) Create(ctx context.Context, n *LegalNews) (*LegalNews, error) {
	var created LegalNews
	err := r.db.GetContext(ctx, &created, `
		INSERT INTO legal_news (title, content, description, image, status, tags, author_id, is_approved)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, title, content, description, image, view_count, status,
			tags, author_id, is_approved, ts_create, ts_update`,
		n.Title, n.Content, n.Description, n.Image, n.Status, n.TagsArray,
		n.AuthorID, n.IsApproved)
	if err != nil {
		return nil, err
	}

	created.flattenTags()
	return &created, nil
}

func (r *Repository) Update(ctx context.Context, id int64, req *UpdateRequest, image *string, tags pq.StringArray) (*LegalNews, error) {
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
	if req.Content != nil {
		set("content", *req.Content)
	}
	if req.Description != nil {
		set("description", *req.Description)
	}
	if image != nil {
		set("image", *image)
	}
	if req.Status != nil {
		set("status", *req.Status)
	}
	if tags != nil {
		set("tags", tags)
	}

	fields = append(fields, "ts_update = CURRENT_TIMESTAMP")
	args = append(args, id)

	var updated LegalNews
	query := fmt.Sprintf(`
		UPDATE legal_news
		SET %s
		WHERE id = $%d
		RETURNING id, title, content, description, image, view_count, status,
			tags, author_id, is_approved, ts_create, ts_update`,
		strings.Join(fields, ", "), idx)
	err := r.db.GetContext(ctx, &updated, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, lifecycle.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	updated.flattenTags()
	return &updated, nil
}

func (r *Repository) SetApproved(ctx context.Context, id int64, approved bool) (*LegalNews, error) {
	var updated LegalNews
	err := r.db.GetContext(ctx, &updated, `
		UPDATE legal_news
		SET is_approved = $2, ts_update = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING id, title, content, description, image, view_count, status,
			tags, author_id, is_approved, ts_create, ts_update`,
		id, approved)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, lifecycle.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	updated.flattenTags()
	return &updated, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM legal_news WHERE id = $1`, id)
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

// Recent returns the newest approved, published items.
func (r *Repository) Recent(ctx context.Context, limit int) ([]LegalNews, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM legal_news ln
		LEFT JOIN users u ON ln.author_id = u.id
		WHERE ln.is_approved = true AND ln.status = 'published'
		ORDER BY ln.id DESC
		LIMIT $1`, selectColumns)

	items := []LegalNews{}
	if err := r.db.SelectContext(ctx, &items, query, limit); err != nil {
		return nil, err
	}
	for i := range items {
		items[i].flattenTags()
	}
	return items, nil
}

// Popular returns approved items with the most views.
func (r *Repository) Popular(ctx context.Context, limit int) ([]LegalNews, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM legal_news ln
		LEFT JOIN users u ON ln.author_id = u.id
		WHERE ln.is_approved = true
		ORDER BY ln.view_count DESC
		LIMIT $1`, selectColumns)

	items := []LegalNews{}
	if err := r.db.SelectContext(ctx, &items, query, limit); err != nil {
		return nil, err
	}
	for i := range items {
		items[i].flattenTags()
	}
	return items, nil
}
