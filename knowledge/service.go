package knowledge

import (
	"context"
	"fmt"

	"github.com/demowin23/vilaw-be/category"
	"github.com/demowin23/vilaw-be/lifecycle"
)

type Service struct {
	repo       *Repository
	categories *category.Repository
}

func NewService(repo *Repository, categories *category.Repository) *Service {
	return &Service{repo: repo, categories: categories}
}

func (s *Service) List(ctx context.Context, f *ListFilter) ([]LegalKnowledge, int64, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) Featured(ctx context.Context, f *ListFilter) ([]LegalKnowledge, int64, error) {
	f.IsFeatured = true
	f.Role = lifecycle.RoleNone
	f.Pending = lifecycle.PendingUnset
	return s.repo.List(ctx, f)
}

func (s *Service) Pending(ctx context.Context, role lifecycle.Role, f *ListFilter) ([]LegalKnowledge, int64, error) {
	if !lifecycle.CanApprove(role) {
		return nil, 0, fmt.Errorf("%w: only admin can list pending articles", lifecycle.ErrForbidden)
	}
	f.Role = role
	f.Pending = lifecycle.PendingOnly
	return s.repo.List(ctx, f)
}

// Get returns one article with the category catalog attached and counts
// the view.
func (s *Service) Get(ctx context.Context, id int64) (*ArticleDetail, error) {
	article, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.IncrementViewCount(ctx, id); err != nil {
		return nil, err
	}
	article.ViewCount++

	categories, err := s.categories.ListVisible(ctx, lifecycle.RoleNone)
	if err != nil {
		return nil, err
	}

	detail := &ArticleDetail{LegalKnowledge: *article, Categories: categories}
	for i := range categories {
		if categories[i].Value == article.Category {
			detail.CategoryDetail = &categories[i]
			break
		}
	}

	return detail, nil
}

func (s *Service) validCategory(ctx context.Context, value string) error {
	ok, err := s.categories.ValueExists(ctx, value)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: unknown category %q", lifecycle.ErrValidation, value)
	}
	return nil
}

func (s *Service) Create(ctx context.Context, callerID int64, role lifecycle.Role, req *CreateRequest, image *string) (*LegalKnowledge, error) {
	if err := s.validCategory(ctx, req.Category); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = "draft"
	}

	article := &LegalKnowledge{
		Title:      req.Title,
		Content:    req.Content,
		Category:   req.Category,
		Author:     req.Author,
		Status:     status,
		IsFeatured: req.IsFeatured,
		CreatedBy:  &callerID,
		IsApproved: lifecycle.ApprovedAtCreation(role),
	}
	if image != nil {
		article.Image = image
	} else if req.Image != "" {
		article.Image = &req.Image
	}
	if req.Summary != "" {
		article.Summary = &req.Summary
	}

	return s.repo.Create(ctx, article)
}

func (s *Service) Update(ctx context.Context, id, callerID int64, role lifecycle.Role, req *UpdateRequest, image *string) (*LegalKnowledge, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var creatorID int64
	if existing.CreatedBy != nil {
		creatorID = *existing.CreatedBy
	}
	if !lifecycle.CanMutate(role, callerID, creatorID) {
		return nil, fmt.Errorf("%w: no permission to update this article", lifecycle.ErrForbidden)
	}

	if req.Category != nil {
		if err := s.validCategory(ctx, *req.Category); err != nil {
			return nil, err
		}
	}

	if image == nil {
		image = req.Image
	}

	return s.repo.Update(ctx, id, req, image)
}

func (s *Service) Delete(ctx context.Context, id, callerID int64, role lifecycle.Role) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	var creatorID int64
	if existing.CreatedBy != nil {
		creatorID = *existing.CreatedBy
	}
	if !lifecycle.CanMutate(role, callerID, creatorID) {
		return fmt.Errorf("%w: no permission to delete this article", lifecycle.ErrForbidden)
	}

	return s.repo.Delete(ctx, id)
}

func (s *Service) Approve(ctx context.Context, id int64, role lifecycle.Role, approved bool) (*LegalKnowledge, error) {
	if !lifecycle.CanApprove(role) {
		return nil, fmt.Errorf("%w: only admin can approve articles", lifecycle.ErrForbidden)
	}
	return s.repo.SetApproved(ctx, id, approved)
}

func (s *Service) Categories(ctx context.Context) ([]category.Category, error) {
	return s.categories.ListVisible(ctx, lifecycle.RoleNone)
}
