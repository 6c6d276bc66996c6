package services

import (
	"testing"
	"time"

	"github.com/you/authsvc/domain"
	"github.com/you/authsvc/internal/mocks"
)

// createAuthServiceForTest creates an AuthService with mock dependencies for testing
func createAuthServiceForTest(t *testing.T,
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	otpSvc domain.OTPService) domain.AuthService {
	t.Helper()

	// Use provided mocks or create defaults
	if userRepo == nil {
		userRepo = mocks.NewMockUserRepository()
	}
	if passwordSvc == nil {
		passwordSvc = mocks.NewMockPasswordService()
	}
	if tokenSvc == nil {
		tokenSvc = mocks.NewMockTokenService()
	}
	if otpSvc == nil {
		otpSvc = mocks.NewMockOTPService()
	}

	return NewAuthService(userRepo, passwordSvc, tokenSvc, otpSvc, 900)
}

// createValidUser creates a valid user entity for testing
func createValidUser(t *testing.T) *domain.User {
	t.Helper()
	return &domain.User{
		ID:           1,
		Name:         "Alice",
		Email:        "a@x.com",
		Phone:        "555",
		PasswordHash: "hashed_pw123",
		RoleID:       2,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}
