package field

import (
	"time"

	"github.com/demowin23/vilaw-be/lifecycle"
)

type LegalField struct {
	ID            int64     `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	Slug          string    `db:"slug" json:"slug"`
	Description   *string   `db:"description" json:"description"`
	Icon          *string   `db:"icon" json:"icon"`
	Color         string    `db:"color" json:"color"`
	SortOrder     int       `db:"sort_order" json:"sort_order"`
	CreatedBy     *int64    `db:"created_by" json:"created_by"`
	CreatedByName *string   `db:"created_by_name" json:"created_by_name,omitempty"`
	IsApproved    bool      `db:"is_approved" json:"is_approved"`
	IsActive      bool      `db:"is_active" json:"is_active"`
	TsCreate      time.Time `db:"ts_create" json:"ts_create"`
	TsUpdate      time.Time `db:"ts_update" json:"ts_update"`
}

// DropdownItem is the trimmed shape used by select inputs.
type DropdownItem struct {
	ID    int64   `db:"id" json:"id"`
	Name  string  `db:"name" json:"name"`
	Slug  string  `db:"slug" json:"slug"`
	Color string  `db:"color" json:"color"`
	Icon  *string `db:"icon" json:"icon"`
}

type ListFilter struct {
	Limit    int
	Offset   int
	Search   string
	IsActive *bool
	Pending  lifecycle.PendingHint
	Role     lifecycle.Role
}

type CreateRequest struct {
	Name        string  `json:"name" binding:"required"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Color       string  `json:"color"`
	SortOrder   int     `json:"sort_order"`
}

type UpdateRequest struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Color       *string `json:"color"`
	SortOrder   *int    `json:"sort_order"`
	IsActive    *bool   `json:"is_active"`
}

type ApproveRequest struct {
	IsApproved *bool `json:"is_approved" binding:"required"`
}
