package video

import (
	"time"

	"github.com/lib/pq"

	"github.com/demowin23/vilaw-be/lifecycle"
)

type Video struct {
	ID           int64          `db:"id" json:"id"`
	Type         string         `db:"type" json:"type"`
	Title        string         `db:"title" json:"title"`
	Video        string         `db:"video" json:"video"`
	Description  *string        `db:"description" json:"description"`
	Thumbnail    *string        `db:"thumbnail" json:"thumbnail"`
	Duration     int            `db:"duration" json:"duration"`
	ViewCount    int64          `db:"view_count" json:"view_count"`
	LikeCount    int64          `db:"like_count" json:"like_count"`
	DislikeCount int64          `db:"dislike_count" json:"dislike_count"`
	Hashtags     pq.StringArray `db:"hashtags" json:"hashtags"`
	AgeGroup     *string        `db:"age_group" json:"age_group"`
	CreatedBy    *int64         `db:"created_by" json:"created_by"`
	CreatorName  *string        `db:"creator_name" json:"creator_name"`
	IsFeatured   bool           `db:"is_featured" json:"is_featured"`
	IsApproved   bool           `db:"is_approved" json:"is_approved"`
	IsActive     bool           `db:"is_active" json:"is_active"`
	TsCreate     time.Time      `db:"ts_create" json:"ts_create"`
	TsUpdate     time.Time      `db:"ts_update" json:"ts_update"`

	// UserAction reflects the requesting user's like/dislike, when known.
	UserAction *string `db:"-" json:"user_action,omitempty"`
}

type Comment struct {
	ID        int64     `db:"id" json:"id"`
	VideoID   int64     `db:"video_id" json:"video_id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Content   string    `db:"content" json:"content"`
	ParentID  *int64    `db:"parent_id" json:"parent_id"`
	LikeCount int64     `db:"like_count" json:"like_count"`
	IsActive  bool      `db:"is_active" json:"-"`
	TsCreate  time.Time `db:"ts_create" json:"ts_create"`
	TsUpdate  time.Time `db:"ts_update" json:"ts_update"`

	UserName   *string `db:"user_name" json:"user_name"`
	UserAvatar *string `db:"user_avatar" json:"user_avatar"`
	UserRole   *string `db:"user_role" json:"user_role"`
	ReplyCount int64   `db:"reply_count" json:"reply_count"`

	UserLiked bool      `db:"-" json:"user_liked"`
	Replies   []Comment `db:"-" json:"replies"`
}

type ListFilter struct {
	Limit      int
	Offset     int
	Type       string
	Search     string
	Hashtag    string
	AgeGroup   string
	IsFeatured bool
	SortBy     string
	SortOrder  string
	Pending    lifecycle.PendingHint
	Role       lifecycle.Role
}

type CreateRequest struct {
	Type        string `form:"type" json:"type" binding:"required"`
	Title       string `form:"title" json:"title" binding:"required"`
	Description string `form:"description" json:"description"`
	Duration    int    `form:"duration" json:"duration"`
	AgeGroup    string `form:"age_group" json:"age_group"`
	Hashtags    string `form:"hashtags" json:"hashtags"`
}

type UpdateRequest struct {
	Type        *string `form:"type" json:"type"`
	Title       *string `form:"title" json:"title"`
	Description *string `form:"description" json:"description"`
	Duration    *int    `form:"duration" json:"duration"`
	AgeGroup    *string `form:"age_group" json:"age_group"`
	Hashtags    *string `form:"hashtags" json:"hashtags"`
	IsFeatured  *bool   `form:"is_featured" json:"is_featured"`
}

type ApproveRequest struct {
	IsApproved *bool `json:"is_approved" binding:"required"`
}

type LikeRequest struct {
	Action string `json:"action" binding:"required"`
}

type CommentRequest struct {
	Content  string `json:"content" binding:"required"`
	ParentID *int64 `json:"parent_id"`
}

// HashtagCount is a popular-hashtag aggregation row.
type HashtagCount struct {
	Hashtag string `db:"hashtag" json:"hashtag"`
	Count   int64  `db:"count" json:"count"`
}
