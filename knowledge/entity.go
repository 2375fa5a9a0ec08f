package knowledge

import (
	"time"

	"github.com/demowin23/vilaw-be/category"
	"github.com/demowin23/vilaw-be/lifecycle"
)

type LegalKnowledge struct {
	ID            int64     `db:"id" json:"id"`
	Title         string    `db:"title" json:"title"`
	Image         *string   `db:"image" json:"image"`
	Summary       *string   `db:"summary" json:"summary"`
	Category      string    `db:"category" json:"category"`
	Author        string    `db:"author" json:"author"`
	Status        string    `db:"status" json:"status"`
	ViewCount     int64     `db:"view_count" json:"view_count"`
	LikeCount     int64     `db:"like_count" json:"like_count"`
	CreatedBy     *int64    `db:"created_by" json:"created_by"`
	CreatedByName *string   `db:"created_by_name" json:"created_by_name,omitempty"`
	IsFeatured    bool      `db:"is_featured" json:"is_featured"`
	IsApproved    bool      `db:"is_approved" json:"is_approved"`
	IsActive      bool      `db:"is_active" json:"-"`
	Content       string    `db:"content" json:"content"`
	TsCreate      time.Time `db:"ts_create" json:"ts_create"`
	TsUpdate      time.Time `db:"ts_update" json:"ts_update"`
}

// ArticleDetail resolves the category value against the category table so
// clients get the display label alongside the article.
type ArticleDetail struct {
	LegalKnowledge
	CategoryDetail *category.Category  `json:"category_detail"`
	Categories     []category.Category `json:"categories"`
}

type ListFilter struct {
	Limit      int
	Offset     int
	Search     string
	Category   string
	Status     string
	IsFeatured bool
	Pending    lifecycle.PendingHint
	Role       lifecycle.Role
}

type CreateRequest struct {
	Title      string `json:"title" form:"title" binding:"required"`
	Summary    string `json:"summary" form:"summary"`
	Content    string `json:"content" form:"content" binding:"required"`
	Category   string `json:"category" form:"category" binding:"required"`
	Author     string `json:"author" form:"author" binding:"required"`
	Status     string `json:"status" form:"status"`
	Image      string `json:"image" form:"image"`
	IsFeatured bool   `json:"is_featured" form:"is_featured"`
}

type UpdateRequest struct {
	Title      *string `json:"title" form:"title"`
	Summary    *string `json:"summary" form:"summary"`
	Content    *string `json:"content" form:"content"`
	Category   *string `json:"category" form:"category"`
	Author     *string `json:"author" form:"author"`
	Status     *string `json:"status" form:"status"`
	Image      *string `json:"image" form:"image"`
	IsFeatured *bool   `json:"is_featured" form:"is_featured"`
}

type ApproveRequest struct {
	IsApproved *bool `json:"is_approved" binding:"required"`
}
