package admin

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/demowin23/vilaw-be/lifecycle"
	"github.com/demowin23/vilaw-be/user"
)

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) ListUsers(ctx context.Context, f *ListUsersFilter) ([]user.User, int64, error) {
	conditions := []string{"1=1"}
	var args []interface{}
	idx := 1

	if f.Role != "" {
		conditions = append(conditions, fmt.Sprintf("role = $%d", idx))
		args = append(args, f.Role)
		idx++
	}

	if f.IsActive != nil {
		conditions = append(conditions, fmt.Sprintf("is_active = $%d", idx))
		args = append(args, *f.IsActive)
		idx++
	}

	if f.Search != "" {
		conditions = append(conditions,
			fmt.Sprintf("(full_name ILIKE $%d OR phone ILIKE $%d OR email ILIKE $%d)", idx, idx, idx))
		args = append(args, "%"+f.Search+"%")
		idx++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM users WHERE %s`, where)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT * FROM users
		WHERE %s
		ORDER BY ts_create DESC
		LIMIT $%d OFFSET $%d`, where, idx, idx+1)
	args = append(args, f.Limit, f.Offset)

	users := []user.User{}
	if err := r.db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// GetUser loads a user regardless of active state; the admin surface
// manages deactivated accounts too.
func (r *Repository) GetUser(ctx context.Context, id int64) (*user.User, error) {
	var u user.User
	err := r.db.GetContext(ctx, &u, `SELECT * FROM users WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, lifecycle.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) CreateUser(ctx context.Context, req *CreateUserRequest, hashedPassword *string, role string, dateOfBirth interface{}) (*user.User, error) {
	var u user.User
	err := r.db.GetContext(ctx, &u, `
		INSERT INTO users (phone, email, full_name, password, role, address, date_of_birth, gender, is_phone_verified)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, true)
		RETURNING *`,
		req.Phone, req.Email, req.FullName, hashedPassword, role,
		req.Address, dateOfBirth, req.Gender)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: phone or email already in use", lifecycle.ErrConflict)
		}
		return nil, err
	}
	return &u, nil
}

func (r *Repository) UpdateUser(ctx context.Context, id int64, req *UpdateUserRequest, hashedPassword *string, dateOfBirth interface{}) (*user.User, error) {
	var u user.User
	err := r.db.GetContext(ctx, &u, `
		UPDATE users
		SET email = COALESCE($1, email),
			full_name = COALESCE($2, full_name),
			password = COALESCE($3, password),
			role = COALESCE($4, role),
			is_active = COALESCE($5, is_active),
			address = COALESCE($6, address),
			date_of_birth = COALESCE($7, date_of_birth),
			gender = COALESCE($8, gender),
			ts_update = CURRENT_TIMESTAMP
		WHERE id = $9
		RETURNING *`,
		req.Email, req.FullName, hashedPassword, req.Role, req.IsActive,
		req.Address, dateOfBirth, req.Gender, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, lifecycle.ErrNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: phone or email already in use", lifecycle.ErrConflict)
		}
		return nil, err
	}
	return &u, nil
}

func (r *Repository) DeactivateUser(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET is_active = false, ts_update = CURRENT_TIMESTAMP
		WHERE id = $1`, id)
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

func (r *Repository) ChangeRole(ctx context.Context, id int64, role string) (*user.User, error) {
	var u user.User
	err := r.db.GetContext(ctx, &u, `
		UPDATE users
		SET role = $1, ts_update = CURRENT_TIMESTAMP
		WHERE id = $2
		RETURNING *`, role, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, lifecycle.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// LogAction appends to the audit trail. Audit failures are logged and
// swallowed so they never fail the admin operation itself.
func (r *Repository) LogAction(ctx context.Context, audit *AuditContext, actionType string, targetID int64, details interface{}) {
	payload, err := json.Marshal(details)
	if err != nil {
		log.Printf("admin audit: marshal details: %v", err)
		return
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO admin_management (admin_id, action_type, target_user_id, details, ip_address, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		audit.AdminID, actionType, targetID, payload, audit.IPAddress, audit.UserAgent)
	if err != nil {
		log.Printf("admin audit: insert action: %v", err)
	}
}

func (r *Repository) ListActions(ctx context.Context, actionType string, limit, offset int) ([]Action, error) {
	conditions := []string{"1=1"}
	var args []interface{}
	idx := 1

	if actionType != "" {
		conditions = append(conditions, fmt.Sprintf("am.action_type = $%d", idx))
		args = append(args, actionType)
		idx++
	}

	query := fmt.Sprintf(`
		SELECT am.id, am.admin_id, am.action_type, am.target_user_id, am.details,
			am.ip_address, am.user_agent, am.ts_create,
			a.phone AS admin_phone, a.full_name AS admin_name,
			t.phone AS target_phone, t.full_name AS target_name
		FROM admin_management am
		LEFT JOIN users a ON am.admin_id = a.id
		LEFT JOIN users t ON am.target_user_id = t.id
		WHERE %s
		ORDER BY am.ts_create DESC
		LIMIT $%d OFFSET $%d`, strings.Join(conditions, " AND "), idx, idx+1)
	args = append(args, limit, offset)

	actions := []Action{}
	if err := r.db.SelectContext(ctx, &actions, query, args...); err != nil {
		return nil, err
	}
	return actions, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
