package legaldoc

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

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
	ld.id, ld.title, ld.document_number, ld.document_type, ld.issuing_authority,
	ld.issued_date, ld.effective_date, ld.expiry_date, ld.tags,
	ld.file_url, ld.file_size, ld.download_count, ld.uploaded_by,
	ld.is_important, ld.is_approved, ld.is_active, ld.html_content,
	ld.ts_create, ld.ts_update,
	u.full_name AS uploaded_by_name`

// buildConditions assembles the WHERE clause shared by the list and count
// queries. The effective status is always derived from the dates, never
// read from the stored column, so a stale row cannot leak through a filter.
func buildConditions(f *ListFilter) ([]string, []interface{}) {
	conditions := []string{"ld.is_active = true"}
	var args []interface{}
	idx := 1

	next := func() int { n := idx; idx++; return n }

	if f.Search != "" {
		n := next()
		conditions = append(conditions,
			fmt.Sprintf("(ld.title ILIKE $%d OR ld.document_number ILIKE $%d)", n, n))
		args = append(args, "%"+f.Search+"%")
	}

	if f.DocumentType != "" {
		conditions = append(conditions, fmt.Sprintf("ld.document_type = $%d", next()))
		args = append(args, f.DocumentType)
	}

	if f.Status != "" {
		conditions = append(conditions,
			fmt.Sprintf("%s = $%d", lifecycle.StatusCase("ld."), next()))
		args = append(args, f.Status)
	}

	if f.IssuingAuthority != "" {
		conditions = append(conditions, fmt.Sprintf("ld.issuing_authority ILIKE $%d", next()))
		args = append(args, "%"+f.IssuingAuthority+"%")
	}

	if f.IsImportant != nil {
		conditions = append(conditions, fmt.Sprintf("ld.is_important = $%d", next()))
		args = append(args, *f.IsImportant)
	}

	if len(f.Tags) > 0 {
		conditions = append(conditions, fmt.Sprintf("ld.tags && $%d", next()))
		args = append(args, pq.Array(f.Tags))
	}

	if cond := lifecycle.ApprovalCondition(f.Role, f.Pending, "ld.is_approved"); cond != "" {
		conditions = append(conditions, cond)
	}

	return conditions, args
}

func (r *Repository) List(ctx context.Context, f *ListFilter, orderBy string) ([]LegalDocument, int64, error) {
	conditions, args := buildConditions(f)
	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := fmt.Sprintf(
		`SELECT COUNT(*) FROM legal_documents ld WHERE %s`, where)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM legal_documents ld
		LEFT JOIN users u ON ld.uploaded_by = u.id
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d`,
		selectColumns, where, orderBy, len(args)+1, len(args)+2)
	args = append(args, f.Limit, f.Offset)

	docs := []LegalDocument{}
	if err := r.db.SelectContext(ctx, &docs, query, args...); err != nil {
		return nil, 0, err
	}

	now := time.Now()
	for i := range docs {
		docs[i].Status = deriveStatus(now, &docs[i])
	}

	return docs, total, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*LegalDocument, error) {
	var doc LegalDocument
	query := fmt.Sprintf(`
		SELECT %s
		FROM legal_documents ld
		LEFT JOIN users u ON ld.uploaded_by = u.id
		WHERE ld.id = $1 AND ld.is_active = true`, selectColumns)
	err := r.db.GetContext(ctx, &doc, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, lifecycle.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	doc.Status = deriveStatus(time.Now(), &doc)
	return &doc, nil
}

func (r *Repository) DocumentNumberExists(ctx context.Context, number string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `
		SELECT EXISTS(
			SELECT 1 FROM legal_documents
			WHERE document_number = $1 AND is_active = true AND id <> $2
		)`, number, excludeID)
	return exists, err
}

func (r *Repository) Create(ctx context.Context, doc *LegalDocument) (*LegalDocument, error) {
	doc.Status = deriveStatus(time.Now(), doc)

	var created LegalDocument
	err := r.db.GetContext(ctx, &created, `
		INSERT INTO legal_documents (
			title, document_number, document_type, issuing_authority,
			issued_date, effective_date, expiry_date, status, tags,
			file_url, file_size, uploaded_by, is_important, is_approved, html_content
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, title, document_number, document_type, issuing_authority,
			issued_date, effective_date, expiry_date, status, tags,
			file_url, file_size, download_count, uploaded_by,
			is_important, is_approved, is_active, html_content, ts_create, ts_update`,
		doc.Title, doc.DocumentNumber, doc.DocumentType, doc.IssuingAuthority,
		doc.IssuedDate, doc.EffectiveDate, doc.ExpiryDate, doc.Status, doc.Tags,
		doc.FileURL, doc.FileSize, doc.UploadedBy, doc.IsImportant, doc.IsApproved,
		doc.HTMLContent)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: document number already exists", lifecycle.ErrConflict)
		}
		return nil, err
	}
	return &created, nil
}

// UpdatePatch carries the merged column values to persist. The caller
// resolves which fields change; the repository recomputes the stored
// status from the merged dates inside the same transaction.
type UpdatePatch struct {
	Title            string
	DocumentNumber   string
	DocumentType     string
	IssuingAuthority string
	IssuedDate       *time.Time
	EffectiveDate    *time.Time
	ExpiryDate       *time.Time
	Tags             pq.StringArray
	FileURL          *string
	FileSize         int64
	IsImportant      bool
	HTMLContent      *string
}

// lockForUpdate loads the current row inside tx with a row lock, so the
// merge-and-recompute cannot race a concurrent update.
func lockForUpdate(ctx context.Context, tx *sqlx.Tx, id int64) (*LegalDocument, error) {
	var doc LegalDocument
	err := tx.GetContext(ctx, &doc, `
		SELECT id, title, document_number, document_type, issuing_authority,
			issued_date, effective_date, expiry_date, status, tags,
			file_url, file_size, download_count, uploaded_by,
			is_important, is_approved, is_active, html_content, ts_create, ts_update
		FROM legal_documents
		WHERE id = $1 AND is_active = true
		FOR UPDATE`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, lifecycle.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *Repository) Update(ctx context.Context, id int64, merge func(*LegalDocument) (*UpdatePatch, error)) (*LegalDocument, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	existing, err := lockForUpdate(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	patch, err := merge(existing)
	if err != nil {
		return nil, err
	}

	status := lifecycle.DeriveStatus(time.Now(), lifecycle.Dates{
		Issued:    patch.IssuedDate,
		Effective: patch.EffectiveDate,
		Expiry:    patch.ExpiryDate,
	})

	var updated LegalDocument
	err = tx.GetContext(ctx, &updated, `
		UPDATE legal_documents SET
			title = $2, document_number = $3, document_type = $4,
			issuing_authority = $5, issued_date = $6, effective_date = $7,
			expiry_date = $8, status = $9, tags = $10, file_url = $11,
			file_size = $12, is_important = $13, html_content = $14,
			ts_update = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING id, title, document_number, document_type, issuing_authority,
			issued_date, effective_date, expiry_date, status, tags,
			file_url, file_size, download_count, uploaded_by,
			is_important, is_approved, is_active, html_content, ts_create, ts_update`,
		id, patch.Title, patch.DocumentNumber, patch.DocumentType,
		patch.IssuingAuthority, patch.IssuedDate, patch.EffectiveDate,
		patch.ExpiryDate, string(status), patch.Tags, patch.FileURL,
		patch.FileSize, patch.IsImportant, patch.HTMLContent)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: document number already exists", lifecycle.ErrConflict)
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *Repository) SetApproved(ctx context.Context, id int64, approved bool) (*LegalDocument, error) {
	var updated LegalDocument
	err := r.db.GetContext(ctx, &updated, `
		UPDATE legal_documents
		SET is_approved = $2, ts_update = CURRENT_TIMESTAMP
		WHERE id = $1 AND is_active = true
		RETURNING id, title, document_number, document_type, issuing_authority,
			issued_date, effective_date, expiry_date, status, tags,
			file_url, file_size, download_count, uploaded_by,
			is_important, is_approved, is_active, html_content, ts_create, ts_update`,
		id, approved)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, lifecycle.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *Repository) SoftDelete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE legal_documents
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

func (r *Repository) IncrementDownloadCount(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE legal_documents
		SET download_count = download_count + 1, ts_update = CURRENT_TIMESTAMP
		WHERE id = $1`, id)
	return err
}

func (r *Repository) ClearFile(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE legal_documents
		SET file_url = NULL, file_size = 0, ts_update = CURRENT_TIMESTAMP
		WHERE id = $1`, id)
	return err
}

// ResyncStatuses rewrites the stored status column for every row whose
// derived status drifted, typically after midnight moves a document
// across an effective or expiry boundary. Returns the number of rows fixed.
func (r *Repository) ResyncStatuses(ctx context.Context) (int64, error) {
	statusCase := lifecycle.StatusCase("")
	res, err := r.db.ExecContext(ctx, fmt.Sprintf(`
		UPDATE legal_documents
		SET status = %s, ts_update = CURRENT_TIMESTAMP
		WHERE status <> %s`, statusCase, statusCase))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func deriveStatus(now time.Time, doc *LegalDocument) string {
	return string(lifecycle.DeriveStatus(now, lifecycle.Dates{
		Issued:    doc.IssuedDate,
		Effective: doc.EffectiveDate,
		Expiry:    doc.ExpiryDate,
	}))
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
