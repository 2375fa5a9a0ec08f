package category

import "time"

type Category struct {
	ID          int64     `db:"id" json:"id"`
	Value       string    `db:"value" json:"value"`
	Label       string    `db:"label" json:"label"`
	Description *string   `db:"description" json:"description"`
	IsApproved  bool      `db:"is_approved" json:"is_approved"`
	IsActive    bool      `db:"is_active" json:"-"`
	TsCreate    time.Time `db:"ts_create" json:"ts_create"`
	TsUpdate    time.Time `db:"ts_update" json:"ts_update"`
}

type CreateRequest struct {
	Value       string  `json:"value" binding:"required"`
	Label       string  `json:"label" binding:"required"`
	Description *string `json:"description"`
}

type UpdateRequest struct {
	Value       *string `json:"value"`
	Label       *string `json:"label"`
	Description *string `json:"description"`
}

type ApproveRequest struct {
	IsApproved *bool `json:"is_approved" binding:"required"`
}
