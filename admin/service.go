package admin

import (
	"context"
	"fmt"

	"github.com/demowin23/vilaw-be/lifecycle"
	"github.com/demowin23/vilaw-be/user"
	"github.com/demowin23/vilaw-be/util"
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListUsers(ctx context.Context, f *ListUsersFilter) ([]user.User, int64, error) {
	if f.Role != "" && !lifecycle.ParseRole(f.Role).Valid() {
		return nil, 0, fmt.Errorf("%w: invalid role filter", lifecycle.ErrValidation)
	}
	return s.repo.ListUsers(ctx, f)
}

func (s *Service) GetUser(ctx context.Context, id int64) (*user.User, error) {
	return s.repo.GetUser(ctx, id)
}

func (s *Service) CreateUser(ctx context.Context, audit *AuditContext, req *CreateUserRequest) (*user.User, error) {
	role := req.Role
	if role == "" {
		role = string(lifecycle.RoleUser)
	}
	if !lifecycle.ParseRole(role).Valid() {
		return nil, fmt.Errorf("%w: invalid role", lifecycle.ErrValidation)
	}

	var hashed *string
	if req.Password != "" {
		h, err := util.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		hashed = &h
	}

	dateOfBirth, err := parseOptionalDate(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.CreateUser(ctx, req, hashed, role, dateOfBirth)
	if err != nil {
		return nil, err
	}

	s.repo.LogAction(ctx, audit, "create_user", created.ID, map[string]interface{}{
		"phone":     created.Phone,
		"email":     created.Email,
		"full_name": created.FullName,
		"role":      created.Role,
	})

	return created, nil
}

func (s *Service) UpdateUser(ctx context.Context, audit *AuditContext, id int64, req *UpdateUserRequest) (*user.User, error) {
	old, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Role != nil {
		if !lifecycle.ParseRole(*req.Role).Valid() {
			return nil, fmt.Errorf("%w: invalid role", lifecycle.ErrValidation)
		}
		if id == audit.AdminID && *req.Role != old.Role {
			return nil, fmt.Errorf("%w: cannot change your own role", lifecycle.ErrForbidden)
		}
	}

	var hashed *string
	if req.Password != nil && *req.Password != "" {
		h, err := util.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		hashed = &h
	}

	dateOfBirth, err := parseOptionalDate(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateUser(ctx, id, req, hashed, dateOfBirth)
	if err != nil {
		return nil, err
	}

	s.repo.LogAction(ctx, audit, "update_user", updated.ID, map[string]interface{}{
		"old": map[string]interface{}{
			"email":     old.Email,
			"full_name": old.FullName,
			"role":      old.Role,
			"is_active": old.IsActive,
		},
		"new": map[string]interface{}{
			"email":     updated.Email,
			"full_name": updated.FullName,
			"role":      updated.Role,
			"is_active": updated.IsActive,
		},
	})

	return updated, nil
}

func (s *Service) DeleteUser(ctx context.Context, audit *AuditContext, id int64) error {
	if id == audit.AdminID {
		return fmt.Errorf("%w: cannot delete your own account", lifecycle.ErrForbidden)
	}

	target, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.DeactivateUser(ctx, id); err != nil {
		return err
	}

	s.repo.LogAction(ctx, audit, "delete_user", id, map[string]interface{}{
		"phone":     target.Phone,
		"full_name": target.FullName,
		"role":      target.Role,
	})

	return nil
}

func (s *Service) ChangeRole(ctx context.Context, audit *AuditContext, id int64, role string) (*user.User, error) {
	if !lifecycle.ParseRole(role).Valid() {
		return nil, fmt.Errorf("%w: invalid role", lifecycle.ErrValidation)
	}

	if id == audit.AdminID {
		return nil, fmt.Errorf("%w: cannot change your own role", lifecycle.ErrForbidden)
	}

	old, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.ChangeRole(ctx, id, role)
	if err != nil {
		return nil, err
	}

	s.repo.LogAction(ctx, audit, "change_role", updated.ID, map[string]interface{}{
		"old_role":  old.Role,
		"new_role":  updated.Role,
		"phone":     updated.Phone,
		"full_name": updated.FullName,
	})

	return updated, nil
}

func (s *Service) Actions(ctx context.Context, actionType string, limit, offset int) ([]Action, error) {
	return s.repo.ListActions(ctx, actionType, limit, offset)
}

func parseOptionalDate(raw *string) (interface{}, error) {
	if raw == nil {
		return nil, nil
	}
	parsed, err := lifecycle.ParseDate(*raw)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date_of_birth", lifecycle.ErrValidation)
	}
	if parsed == nil {
		return nil, nil
	}
	return *parsed, nil
}
