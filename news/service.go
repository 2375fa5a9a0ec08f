package news

import (
	"context"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/demowin23/vilaw-be/lifecycle"
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, f *ListFilter) ([]LegalNews, int64, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) Pending(ctx context.Context, role lifecycle.Role, f *ListFilter) ([]LegalNews, int64, error) {
	if !lifecycle.CanApprove(role) {
		return nil, 0, fmt.Errorf("%w: only admin can list pending news", lifecycle.ErrForbidden)
	}
	f.Role = role
	f.Pending = lifecycle.PendingOnly
	return s.repo.List(ctx, f)
}

func (s *Service) Get(ctx context.Context, id int64) (*LegalNews, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.IncrementViewCount(ctx, id); err != nil {
		return nil, err
	}
	item.ViewCount++

	return item, nil
}

func (s *Service) Create(ctx context.Context, callerID int64, role lifecycle.Role, req *CreateRequest, image *string) (*LegalNews, error) {
	status := req.Status
	if status == "" {
		status = "published"
	}

	item := &LegalNews{
		Title:      req.Title,
		Content:    req.Content,
		Status:     status,
		TagsArray:  splitTags(req.Tags),
		AuthorID:   &callerID,
		IsApproved: lifecycle.ApprovedAtCreation(role),
	}
	if req.Description != "" {
		item.Description = &req.Description
	}
	if image != nil {
		item.Image = image
	} else if req.Image != "" {
		item.Image = &req.Image
	}

	return s.repo.Create(ctx, item)
}

func (s *Service) Update(ctx context.Context, id, callerID int64, role lifecycle.Role, req *UpdateRequest, image *string) (*LegalNews, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var authorID int64
	if existing.AuthorID != nil {
		authorID = *existing.AuthorID
	}
	if !lifecycle.CanMutate(role, callerID, authorID) {
		return nil, fmt.Errorf("%w: no permission to update this news item", lifecycle.ErrForbidden)
	}

	if image == nil {
		image = req.Image
	}

	var tags pq.StringArray
	if req.Tags != nil {
		tags = splitTags(*req.Tags)
		if tags == nil {
			tags = pq.StringArray{}
		}
	}

	return s.repo.Update(ctx, id, req, image, tags)
}

func (s *Service) Delete(ctx context.Context, id, callerID int64, role lifecycle.Role) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	var authorID int64
	if existing.AuthorID != nil {
		authorID = *existing.AuthorID
	}
	if !lifecycle.CanMutate(role, callerID, authorID) {
		return fmt.Errorf("%w: no permission to delete this news item", lifecycle.ErrForbidden)
	}

	return s.repo.Delete(ctx, id)
}

func (s *Service) Approve(ctx context.Context, id int64, role lifecycle.Role, approved bool) (*LegalNews, error) {
	if !lifecycle.CanApprove(role) {
		return nil, fmt.Errorf("%w: only admin can approve news", lifecycle.ErrForbidden)
	}
	return s.repo.SetApproved(ctx, id, approved)
}

func (s *Service) Recent(ctx context.Context, limit int) ([]LegalNews, error) {
	return s.repo.Recent(ctx, limit)
}

func (s *Service) Popular(ctx context.Context, limit int) ([]LegalNews, error) {
	return s.repo.Popular(ctx, limit)
}

func splitTags(s string) pq.StringArray {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	tags := make(pq.StringArray, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}
