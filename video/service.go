package video

import (
	"context"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/demowin23/vilaw-be/lifecycle"
)

type Service struct {
	repo     *Repository
	comments *CommentRepository
}

func NewService(repo *Repository, comments *CommentRepository) *Service {
	return &Service{repo: repo, comments: comments}
}

var ageGroups = []string{"all", "13+", "16+", "18+"}

func validAgeGroup(g string) bool {
	for _, v := range ageGroups {
		if v == g {
			return true
		}
	}
	return false
}

func (s *Service) List(ctx context.Context, viewerID int64, f *ListFilter) ([]Video, int64, error) {
	videos, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	if viewerID != 0 {
		if err := s.repo.AttachUserActions(ctx, videos, viewerID); err != nil {
			return nil, 0, err
		}
	}
	return videos, total, nil
}

func (s *Service) Pending(ctx context.Context, role lifecycle.Role, f *ListFilter) ([]Video, int64, error) {
	if !lifecycle.CanApprove(role) {
		return nil, 0, fmt.Errorf("%w: only admin can list pending videos", lifecycle.ErrForbidden)
	}
	f.Role = role
	f.Pending = lifecycle.PendingOnly
	return s.repo.List(ctx, f)
}

func (s *Service) Get(ctx context.Context, id, viewerID int64) (*Video, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if viewerID != 0 {
		single := []Video{*v}
		if err := s.repo.AttachUserActions(ctx, single, viewerID); err != nil {
			return nil, err
		}
		v.UserAction = single[0].UserAction
	}

	if err := s.repo.IncrementViewCount(ctx, id); err != nil {
		return nil, err
	}
	v.ViewCount++

	return v, nil
}

func (s *Service) Create(ctx context.Context, callerID int64, role lifecycle.Role, req *CreateRequest, videoURL, thumbnailURL *string) (*Video, error) {
	if videoURL == nil {
		return nil, fmt.Errorf("%w: video file is required", lifecycle.ErrValidation)
	}

	ageGroup := req.AgeGroup
	if ageGroup == "" {
		ageGroup = "all"
	}
	if !validAgeGroup(ageGroup) {
		return nil, fmt.Errorf("%w: invalid age group", lifecycle.ErrValidation)
	}

	v := &Video{
		Type:       req.Type,
		Title:      req.Title,
		Video:      *videoURL,
		Thumbnail:  thumbnailURL,
		Duration:   req.Duration,
		AgeGroup:   &ageGroup,
		Hashtags:   splitHashtags(req.Hashtags),
		CreatedBy:  &callerID,
		IsApproved: lifecycle.ApprovedAtCreation(role),
	}
	if req.Description != "" {
		v.Description = &req.Description
	}

	return s.repo.Create(ctx, v)
}

func (s *Service) Update(ctx context.Context, id, callerID int64, role lifecycle.Role, req *UpdateRequest, videoURL, thumbnailURL *string) (*Video, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var creatorID int64
	if existing.CreatedBy != nil {
		creatorID = *existing.CreatedBy
	}
	if !lifecycle.CanMutate(role, callerID, creatorID) {
		return nil, fmt.Errorf("%w: no permission to update this video", lifecycle.ErrForbidden)
	}

	if req.AgeGroup != nil && !validAgeGroup(*req.AgeGroup) {
		return nil, fmt.Errorf("%w: invalid age group", lifecycle.ErrValidation)
	}

	var hashtags pq.StringArray
	if req.Hashtags != nil {
		hashtags = splitHashtags(*req.Hashtags)
	}

	return s.repo.Update(ctx, id, req, videoURL, thumbnailURL, hashtags)
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
		return fmt.Errorf("%w: no permission to delete this video", lifecycle.ErrForbidden)
	}

	return s.repo.Delete(ctx, id)
}

func (s *Service) Approve(ctx context.Context, id int64, role lifecycle.Role, approved bool) (*Video, error) {
	if !lifecycle.CanApprove(role) {
		return nil, fmt.Errorf("%w: only admin can approve videos", lifecycle.ErrForbidden)
	}
	return s.repo.SetApproved(ctx, id, approved)
}

func (s *Service) ToggleLike(ctx context.Context, videoID, userID int64, action string) (*string, error) {
	if action != "like" && action != "dislike" {
		return nil, fmt.Errorf("%w: action must be 'like' or 'dislike'", lifecycle.ErrValidation)
	}
	if _, err := s.repo.GetByID(ctx, videoID); err != nil {
		return nil, err
	}
	return s.repo.ToggleLike(ctx, videoID, userID, action)
}

func (s *Service) Comments(ctx context.Context, videoID, viewerID int64, limit, offset int) ([]Comment, int64, error) {
	if _, err := s.repo.GetByID(ctx, videoID); err != nil {
		return nil, 0, err
	}

	comments, total, err := s.comments.ListByVideo(ctx, videoID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	if viewerID != 0 {
		if err := s.comments.AttachUserLikes(ctx, comments, viewerID); err != nil {
			return nil, 0, err
		}
	}
	return comments, total, nil
}

func (s *Service) AddComment(ctx context.Context, videoID, userID int64, req *CommentRequest) (*Comment, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: comment content cannot be empty", lifecycle.ErrValidation)
	}

	if _, err := s.repo.GetByID(ctx, videoID); err != nil {
		return nil, err
	}

	if req.ParentID != nil {
		exists, err := s.comments.ParentExists(ctx, *req.ParentID, videoID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, fmt.Errorf("%w: parent comment not found", lifecycle.ErrNotFound)
		}
	}

	return s.comments.Create(ctx, videoID, userID, content, req.ParentID)
}

func (s *Service) ToggleCommentLike(ctx context.Context, commentID, userID int64) (bool, error) {
	if _, err := s.comments.GetByID(ctx, commentID); err != nil {
		return false, err
	}
	return s.comments.ToggleLike(ctx, commentID, userID)
}

func (s *Service) DeleteComment(ctx context.Context, commentID, callerID int64, role lifecycle.Role) error {
	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	if !lifecycle.CanMutate(role, callerID, comment.UserID) {
		return fmt.Errorf("%w: no permission to delete this comment", lifecycle.ErrForbidden)
	}

	return s.comments.SoftDelete(ctx, commentID)
}

func (s *Service) Types(ctx context.Context) ([]string, error) {
	return s.repo.Types(ctx)
}

func (s *Service) AgeGroups() []string {
	return ageGroups
}

func (s *Service) PopularHashtags(ctx context.Context, limit int) ([]HashtagCount, error) {
	return s.repo.PopularHashtags(ctx, limit)
}

func (s *Service) MostViewed(ctx context.Context, f *ListFilter, limit int) ([]Video, error) {
	return s.repo.TopBy(ctx, f, "view_count", limit)
}

func (s *Service) MostLiked(ctx context.Context, f *ListFilter, limit int) ([]Video, error) {
	return s.repo.TopBy(ctx, f, "like_count", limit)
}

func splitHashtags(s string) pq.StringArray {
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
