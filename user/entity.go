package user

import "time"

type User struct {
	ID              int64      `db:"id" json:"id"`
	Phone           string     `db:"phone" json:"phone"`
	Email           *string    `db:"email" json:"email"`
	FullName        string     `db:"full_name" json:"full_name"`
	Password        *string    `db:"password" json:"-"`
	Role            string     `db:"role" json:"role"`
	IsActive        bool       `db:"is_active" json:"is_active"`
	IsPhoneVerified bool       `db:"is_phone_verified" json:"is_phone_verified"`
	IsEmailVerified bool       `db:"is_email_verified" json:"is_email_verified"`
	Avatar          *string    `db:"avatar" json:"avatar"`
	Address         *string    `db:"address" json:"address"`
	DateOfBirth     *time.Time `db:"date_of_birth" json:"date_of_birth"`
	Gender          *string    `db:"gender" json:"gender"`
	IsOnline        bool       `db:"is_online" json:"is_online"`
	LastSeen        *time.Time `db:"last_seen" json:"last_seen"`
	LastLogin       *time.Time `db:"last_login" json:"last_login"`
	TsCreate        time.Time  `db:"ts_create" json:"ts_create"`
	TsUpdate        time.Time  `db:"ts_update" json:"ts_update"`
}

type SendOTPRequest struct {
	Phone string `json:"phone" binding:"required"`
}

type RegisterRequest struct {
	Phone    string `json:"phone" binding:"required"`
	OTP      string `json:"otp" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginOTPRequest struct {
	Phone string `json:"phone" binding:"required"`
	OTP   string `json:"otp" binding:"required"`
}

type LoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	FullName    *string `json:"full_name"`
	Email       *string `json:"email"`
	Avatar      *string `json:"avatar"`
	Address     *string `json:"address"`
	DateOfBirth *string `json:"date_of_birth"`
	Gender      *string `json:"gender"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
