package admin

import (
	"time"

	"github.com/jmoiron/sqlx/types"
)

type ListUsersFilter struct {
	Limit    int
	Offset   int
	Role     string
	IsActive *bool
	Search   string
}

type CreateUserRequest struct {
	Phone       string  `json:"phone" binding:"required"`
	FullName    string  `json:"full_name" binding:"required"`
	Email       *string `json:"email"`
	Password    string  `json:"password"`
	Role        string  `json:"role"`
	Address     *string `json:"address"`
	DateOfBirth *string `json:"date_of_birth"`
	Gender      *string `json:"gender"`
}

type UpdateUserRequest struct {
	Email       *string `json:"email"`
	FullName    *string `json:"full_name"`
	Password    *string `json:"password"`
	Role        *string `json:"role"`
	IsActive    *bool   `json:"is_active"`
	Address     *string `json:"address"`
	DateOfBirth *string `json:"date_of_birth"`
	Gender      *string `json:"gender"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// Action is a row in the admin audit trail. Details holds the change
// payload as JSON.
type Action struct {
	ID         int64          `db:"id" json:"id"`
	AdminID    *int64         `db:"admin_id" json:"admin_id"`
	ActionType string         `db:"action_type" json:"action_type"`
	TargetID   *int64         `db:"target_user_id" json:"target_user_id"`
	Details    types.JSONText `db:"details" json:"details"`
	IPAddress  *string        `db:"ip_address" json:"ip_address"`
	UserAgent  *string        `db:"user_agent" json:"user_agent"`
	TsCreate   time.Time      `db:"ts_create" json:"ts_create"`

	AdminPhone  *string `db:"admin_phone" json:"admin_phone,omitempty"`
	AdminName   *string `db:"admin_name" json:"admin_name,omitempty"`
	TargetPhone *string `db:"target_phone" json:"target_phone,omitempty"`
	TargetName  *string `db:"target_name" json:"target_name,omitempty"`
}

// AuditContext carries the request metadata recorded with each action.
type AuditContext struct {
	AdminID   int64
	IPAddress string
	UserAgent string
}
