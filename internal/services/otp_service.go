package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"time"

	"github.com/you/authsvc/domain"
)

// OTPServiceImpl implements domain.OTPService
type OTPServiceImpl struct {
	otpRepo         domain.OTPRepository
	notificationSvc domain.NotificationService
	config          OTPConfig
}

type OTPConfig struct {
	Length  int
	TTL     time.Duration
	Channel string // "email" or "sms"
}

// NewOTPService creates a new OTP service
func NewOTPService(otpRepo domain.OTPRepository, notificationSvc domain.NotificationService, config OTPConfig) domain.OTPService {
	if config.Length == 0 {
		config.Length = 6
	}
	if config.TTL == 0 {
		config.TTL = 2 * time.Minute
	}
	if config.Channel == "" {
		config.Channel = "email"
	}
	return &OTPServiceImpl{
		otpRepo:         otpRepo,
		notificationSvc: notificationSvc,
		config:          config,
	}
}

// Issue implements domain.OTPService. Any prior record for the user is
// overwritten in one store write, so the most recent code is always the
// only live one. Delivery is best-effort on a separate goroutine: a send
// failure is logged and never fails or delays the flow.
func (s *OTPServiceImpl) Issue(ctx context.Context, user *domain.User) (*domain.OTPRecord, error) {
	code, err := s.generateCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate OTP code: %w", err)
	}

	record := &domain.OTPRecord{
		UserID:    user.ID,
		Code:      code,
		Verified:  false,
		ExpiresAt: time.Now().Add(s.config.TTL),
	}

	if err := s.otpRepo.Upsert(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to store OTP: %w", err)
	}

	go s.deliver(user, code)

	return record, nil
}

// Verify implements domain.OTPService. The code comparison runs before the
// expiry check. A record that already verified stays replayable until it
// expires or is overwritten; that window is intentional.
func (s *OTPServiceImpl) Verify(ctx context.Context, user *domain.User, code string) error {
	record, err := s.otpRepo.FindByUserID(ctx, user.ID)
	if err != nil {
		return err
	}

	if record.Code != code {
		return domain.ErrOTPMismatch
	}

	if !time.Now().Before(record.ExpiresAt) {
		return domain.ErrOTPExpired
	}

	record.Verified = true
	if err := s.otpRepo.Upsert(ctx, record); err != nil {
		return fmt.Errorf("failed to mark OTP verified: %w", err)
	}

	return nil
}

func (s *OTPServiceImpl) deliver(user *domain.User, code string) {
	switch s.config.Channel {
	case "sms":
		message := fmt.Sprintf("Your OTP code is %s. Valid for %d minutes.", code, int(s.config.TTL.Minutes()))
		if err := s.notificationSvc.SendSMS(user.Phone, message); err != nil {
			log.Printf("otp: failed to send SMS to user %d: %v", user.ID, err)
		}
	default:
		subject := "Your OTP Code"
		body := fmt.Sprintf("Dear %s,\n\nYour OTP code is %s. Please use this code to verify your account.\n\nThank you!", user.Name, code)
		if err := s.notificationSvc.SendEmail(user.Email, subject, body); err != nil {
			log.Printf("otp: failed to send email to user %d: %v", user.ID, err)
		}
	}
}

// generateCode draws a uniform code with no leading zeros: for the default
// length of 6 the range is [100000, 999999].
func (s *OTPServiceImpl) generateCode() (string, error) {
	lower := int64(1)
	for i := 1; i < s.config.Length; i++ {
		lower *= 10
	}

	n, err := rand.Int(rand.Reader, big.NewInt(9*lower))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%d", lower+n.Int64()), nil
}
