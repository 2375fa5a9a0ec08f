package news

import (
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/demowin23/vilaw-be/lifecycle"
)

type LegalNews struct {
	ID          int64          `db:"id" json:"id"`
	Title       string         `db:"title" json:"title"`
	Content     string         `db:"content" json:"content"`
	Description *string        `db:"description" json:"description"`
	Image       *string        `db:"image" json:"image"`
	ViewCount   int64          `db:"view_count" json:"view_count"`
	Status      string         `db:"status" json:"status"`
	TagsArray   pq.StringArray `db:"tags" json:"-"`
	Tags        string         `db:"-" json:"tags"`
	AuthorID    *int64         `db:"author_id" json:"author_id"`
	AuthorName  *string        `db:"author_name" json:"author_name,omitempty"`
	AuthorRole  *string        `db:"author_role" json:"author_role,omitempty"`
	IsApproved  bool           `db:"is_approved" json:"is_approved"`
	TsCreate    time.Time      `db:"ts_create" json:"ts_create"`
	TsUpdate    time.Time      `db:"ts_update" json:"ts_update"`
}

// flattenTags exposes the stored array as the comma separated string
// clients expect.
func (n *LegalNews) flattenTags() {
	n.Tags = strings.Join(n.TagsArray, ", ")
}

type ListFilter struct {
	Limit   int
	Offset  int
	Search  string
	Status  string
	Tags    []string
	Pending lifecycle.PendingHint
	Role    lifecycle.Role
}

type CreateRequest struct {
	Title       string `json:"title" form:"title" binding:"required"`
	Content     string `json:"content" form:"content" binding:"required"`
	Description string `json:"description" form:"description"`
	Status      string `json:"status" form:"status"`
	Tags        string `json:"tags" form:"tags"`
	Image       string `json:"image" form:"image"`
}

type UpdateRequest struct {
	Title       *string `json:"title" form:"title"`
	Content     *string `json:"content" form:"content"`
	Description *string `json:"description" form:"description"`
	Status      *string `json:"status" form:"status"`
	Tags        *string `json:"tags" form:"tags"`
	Image       *string `json:"image" form:"image"`
}

type ApproveRequest struct {
	IsApproved *bool `json:"is_approved" binding:"required"`
}
