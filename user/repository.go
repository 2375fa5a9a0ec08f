package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/demowin23/vilaw-be/lifecycle"
)

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

const userColumns = `id, phone, email, full_name, password, role, is_active,
	is_phone_verified, is_email_verified, avatar, address, date_of_birth, gender,
	is_online, last_seen, last_login, ts_create, ts_update`

func (r *Repository) GetByPhone(ctx context.Context, phone string) (*User, error) {
	var user User
	query := fmt.Sprintf(`SELECT %s FROM users WHERE phone = $1 AND is_active = true`, userColumns)
	err := r.db.GetContext(ctx, &user, query, phone)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, lifecycle.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*User, error) {
	var user User
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1 AND is_active = true`, userColumns)
	err := r.db.GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, lifecycle.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) PhoneExists(ctx context.Context, phone string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM users WHERE phone = $1)`, phone)
	return exists, err
}

func (r *Repository) Create(ctx context.Context, phone, fullName string, email, password *string) (*User, error) {
	var user User
	query := fmt.Sprintf(`
		INSERT INTO users (phone, full_name, email, password, role, is_phone_verified)
		VALUES ($1, $2, $3, $4, 'user', true)
		RETURNING %s`, userColumns)
	err := r.db.GetContext(ctx, &user, query, phone, fullName, email, password)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) TouchLastLogin(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET last_login = NOW(), ts_update = NOW() WHERE id = $1`, id)
	return err
}

func (r *Repository) SetOnline(ctx context.Context, id int64, online bool) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET is_online = $2, last_seen = NOW() WHERE id = $1`, id, online)
	return err
}

func (r *Repository) UpdateProfile(ctx context.Context, id int64, req *UpdateProfileRequest, dateOfBirth *time.Time) (*User, error) {
	var user User
	query := fmt.Sprintf(`
		UPDATE users SET
			full_name = COALESCE($2, full_name),
			email = COALESCE($3, email),
			avatar = COALESCE($4, avatar),
			address = COALESCE($5, address),
			date_of_birth = COALESCE($6, date_of_birth),
			gender = COALESCE($7, gender),
			ts_update = NOW()
		WHERE id = $1 AND is_active = true
		RETURNING %s`, userColumns)
	err := r.db.GetContext(ctx, &user, query, id,
		req.FullName, req.Email, req.Avatar, req.Address, dateOfBirth, req.Gender)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, lifecycle.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
