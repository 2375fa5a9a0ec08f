package user

import (
	"context"
	"crypto/rand"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"math/big"
	"os"
	"regexp"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/demowin23/vilaw-be/lifecycle"
)

const (
	OTPPurposeRegister = "register"
	OTPPurposeLogin    = "login"

	otpTTL = 5 * time.Minute
)

var phonePattern = regexp.MustCompile(`^(\+84|84|0)[35789][0-9]{8}$`)

// ValidPhone reports whether s looks like a Vietnamese mobile number.
func ValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// SMSSender delivers an OTP code to a phone number. The default
// implementation only logs; a real gateway is configured in production.
type SMSSender interface {
	Send(phone, code string) error
}

type logSender struct{}

func (logSender) Send(phone, code string) error {
	if os.Getenv("APP_ENV") == "production" {
		return errors.New("no SMS gateway configured")
	}
	log.Printf("[SMS] OTP for %s: %s", phone, code)
	return nil
}

type OTPService struct {
	db     *sqlx.DB
	sender SMSSender
}

func NewOTPService(db *sqlx.DB) *OTPService {
	return &OTPService{db: db, sender: logSender{}}
}

func generateCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		panic(err)
	}
	return fmt.Sprintf("%06d", n)
}

// Issue creates a fresh OTP for the phone/purpose pair and hands it to the
// SMS sender. Earlier unused codes for the same pair are invalidated.
func (s *OTPService) Issue(ctx context.Context, phone, purpose string) error {
	if !ValidPhone(phone) {
		return fmt.Errorf("%w: invalid phone number", lifecycle.ErrValidation)
	}

	code := generateCode()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`UPDATE otp_verification SET is_used = true WHERE phone = $1 AND purpose = $2 AND is_used = false`,
		phone, purpose)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO otp_verification (phone, otp_code, purpose, expires_at)
		VALUES ($1, $2, $3, $4)`,
		phone, code, purpose, time.Now().Add(otpTTL))
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return s.sender.Send(phone, code)
}

// Verify consumes the latest matching code. A wrong, expired or already
// used code is a validation error.
func (s *OTPService) Verify(ctx context.Context, phone, code, purpose string) error {
	var id int64
	err := s.db.GetContext(ctx, &id, `
		SELECT id FROM otp_verification
		WHERE phone = $1 AND otp_code = $2 AND purpose = $3
		  AND is_used = false AND expires_at > NOW()
		ORDER BY ts_create DESC
		LIMIT 1`,
		phone, code, purpose)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: OTP is invalid or expired", lifecycle.ErrValidation)
	}
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`UPDATE otp_verification SET is_used = true WHERE id = $1`, id)
	return err
}

// PurgeExpired deletes stale OTP rows, run periodically from the scheduler.
func (s *OTPService) PurgeExpired(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM otp_verification WHERE expires_at < NOW() OR is_used = true`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
