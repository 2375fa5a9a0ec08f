package user

import (
	"context"
	"fmt"
	"time"

	"github.com/demowin23/vilaw-be/auth"
	"github.com/demowin23/vilaw-be/lifecycle"
	"github.com/demowin23/vilaw-be/util"
)

type Service struct {
	repo *Repository
	otp  *OTPService
}

func NewService(repo *Repository, otp *OTPService) *Service {
	return &Service{repo: repo, otp: otp}
}

func (s *Service) SendRegistrationOTP(ctx context.Context, phone string) error {
	exists, err := s.repo.PhoneExists(ctx, phone)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: phone number already registered", lifecycle.ErrConflict)
	}
	return s.otp.Issue(ctx, phone, OTPPurposeRegister)
}

func (s *Service) SendLoginOTP(ctx context.Context, phone string) error {
	if _, err := s.repo.GetByPhone(ctx, phone); err != nil {
		return err
	}
	return s.otp.Issue(ctx, phone, OTPPurposeLogin)
}

func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*LoginResponse, error) {
	if !ValidPhone(req.Phone) {
		return nil, fmt.Errorf("%w: invalid phone number", lifecycle.ErrValidation)
	}

	if err := s.otp.Verify(ctx, req.Phone, req.OTP, OTPPurposeRegister); err != nil {
		return nil, err
	}

	exists, err := s.repo.PhoneExists(ctx, req.Phone)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: phone number already registered", lifecycle.ErrConflict)
	}

	var email, password *string
	if req.Email != "" {
		email = &req.Email
	}
	if req.Password != "" {
		hashed, err := util.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		password = &hashed
	}

	user, err := s.repo.Create(ctx, req.Phone, req.FullName, email, password)
	if err != nil {
		return nil, err
	}

	return s.issueToken(ctx, user)
}

func (s *Service) LoginWithOTP(ctx context.Context, req *LoginOTPRequest) (*LoginResponse, error) {
	if err := s.otp.Verify(ctx, req.Phone, req.OTP, OTPPurposeLogin); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByPhone(ctx, req.Phone)
	if err != nil {
		return nil, err
	}

	return s.issueToken(ctx, user)
}

func (s *Service) LoginWithPassword(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	user, err := s.repo.GetByPhone(ctx, req.Phone)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", lifecycle.ErrValidation)
	}

	if user.Password == nil || util.VerifyPassword(*user.Password, req.Password) != nil {
		return nil, fmt.Errorf("%w: invalid credentials", lifecycle.ErrValidation)
	}

	return s.issueToken(ctx, user)
}

func (s *Service) issueToken(ctx context.Context, user *User) (*LoginResponse, error) {
	token, err := auth.GenerateToken(user.ID, user.Phone, user.Role)
	if err != nil {
		return nil, err
	}

	if err := s.repo.TouchLastLogin(ctx, user.ID); err != nil {
		return nil, err
	}

	return &LoginResponse{Token: token, User: user}, nil
}

func (s *Service) Logout(ctx context.Context, userID int64) error {
	return s.repo.SetOnline(ctx, userID, false)
}

func (s *Service) Me(ctx context.Context, userID int64) (*User, error) {
	return s.repo.GetByID(ctx, userID)
}

func (s *Service) UpdateProfile(ctx context.Context, userID int64, req *UpdateProfileRequest) (*User, error) {
	var dob *time.Time
	if req.DateOfBirth != nil && *req.DateOfBirth != "" {
		parsed, err := lifecycle.ParseDate(*req.DateOfBirth)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date_of_birth", lifecycle.ErrValidation)
		}
		dob = parsed
	}
	return s.repo.UpdateProfile(ctx, userID, req, dob)
}
