package category

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

func (s *Service) List(ctx context.Context, role lifecycle.Role) ([]Category, error) {
	return s.repo.ListVisible(ctx, role)
}

func (s *Service) Pending(ctx context.Context, role lifecycle.Role) ([]Category, error) {
	if !lifecycle.CanApprove(role) {
		return nil, fmt.Errorf("%w: only admin can list pending categories", lifecycle.ErrForbidden)
	}
	return s.repo.ListPending(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, role lifecycle.Role, req *CreateRequest) (*Category, error) {
	return s.repo.Create(ctx, req, lifecycle.ApprovedAtCreation(role))
}

func (s *Service) Update(ctx context.Context, id int64, role lifecycle.Role, req *UpdateRequest) (*Category, error) {
	if !role.Elevated() {
		return nil, fmt.Errorf("%w: no permission to update categories", lifecycle.ErrForbidden)
	}
	return s.repo.Update(ctx, id, req)
}

func (s *Service) Delete(ctx context.Context, id int64, role lifecycle.Role) error {
	if !role.Elevated() {
		return fmt.Errorf("%w: no permission to delete categories", lifecycle.ErrForbidden)
	}
	return s.repo.SoftDelete(ctx, id)
}

func (s *Service) Approve(ctx context.Context, id int64, role lifecycle.Role, approved bool) (*Category, error) {
	if !lifecycle.CanApprove(role) {
		return nil, fmt.Errorf("%w: only admin can approve categories", lifecycle.ErrForbidden)
	}
	return s.repo.SetApproved(ctx, id, approved)
}
