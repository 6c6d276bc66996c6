package mocks

import (
	"context"
	"time"

	"github.com/you/authsvc/domain"
)

// MockOTPService implements domain.OTPService interface for testing
type MockOTPService struct {
	IssueFunc  func(ctx context.Context, user *domain.User) (*domain.OTPRecord, error)
	VerifyFunc func(ctx context.Context, user *domain.User, code string) error
}

// NewMockOTPService creates a new MockOTPService with default behaviors
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

// Issue issues a passcode
func (m *MockOTPService) Issue(ctx context.Context, user *domain.User) (*domain.OTPRecord, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(ctx, user)
	}
	// Default behavior: fixed record
	return &domain.OTPRecord{
		UserID:    user.ID,
		Code:      "123456",
		Verified:  false,
		ExpiresAt: time.Now().Add(2 * time.Minute),
	}, nil
}

// Verify verifies a passcode
func (m *MockOTPService) Verify(ctx context.Context, user *domain.User, code string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, user, code)
	}
	// Default behavior: success
	return nil
}
