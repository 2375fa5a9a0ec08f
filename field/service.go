package field

import (
	"context"
	"fmt"

	"github.com/demowin23/vilaw-be/lifecycle"
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

const defaultColor = "#3B82F6"

func (s *Service) List(ctx context.Context, f *ListFilter) ([]LegalField, int64, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) Pending(ctx context.Context, role lifecycle.Role) ([]LegalField, error) {
	if !lifecycle.CanApprove(role) {
		return nil, fmt.Errorf("%w: only admin can list pending fields", lifecycle.ErrForbidden)
	}
	return s.repo.ListPending(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*LegalField, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*LegalField, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *Service) Dropdown(ctx context.Context) ([]DropdownItem, error) {
	return s.repo.Dropdown(ctx)
}

func (s *Service) Create(ctx context.Context, callerID int64, role lifecycle.Role, req *CreateRequest) (*LegalField, error) {
	slug := req.Slug
	if slug == "" {
		slug = Slugify(req.Name)
	}
	if slug == "" {
		return nil, fmt.Errorf("%w: name produces an empty slug", lifecycle.ErrValidation)
	}

	exists, err := s.repo.SlugExists(ctx, slug, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: slug already exists", lifecycle.ErrConflict)
	}

	color := req.Color
	if color == "" {
		color = defaultColor
	}

	lf := &LegalField{
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       color,
		SortOrder:   req.SortOrder,
		CreatedBy:   &callerID,
		IsApproved:  lifecycle.ApprovedAtCreation(role),
	}

	return s.repo.Create(ctx, lf)
}

func (s *Service) Update(ctx context.Context, id int64, req *UpdateRequest) (*LegalField, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if req.Slug != nil && *req.Slug == "" && req.Name != nil {
		slug := Slugify(*req.Name)
		req.Slug = &slug
	}
	if req.Slug != nil {
		if *req.Slug == "" {
			return nil, fmt.Errorf("%w: slug cannot be empty", lifecycle.ErrValidation)
		}
		exists, err := s.repo.SlugExists(ctx, *req.Slug, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("%w: slug already exists", lifecycle.ErrConflict)
		}
	}

	return s.repo.Update(ctx, id, req)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.SoftDelete(ctx, id)
}

func (s *Service) DeletePermanent(ctx context.Context, id int64, role lifecycle.Role) error {
	if role != lifecycle.RoleAdmin {
		return fmt.Errorf("%w: only admin can permanently delete fields", lifecycle.ErrForbidden)
	}
	return s.repo.HardDelete(ctx, id)
}

func (s *Service) Approve(ctx context.Context, id int64, role lifecycle.Role, approved bool) (*LegalField, error) {
	if !lifecycle.CanApprove(role) {
		return nil, fmt.Errorf("%w: only admin can approve fields", lifecycle.ErrForbidden)
	}
	return s.repo.SetApproved(ctx, id, approved)
}
