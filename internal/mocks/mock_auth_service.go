package mocks

import (
	"context"

	"github.com/you/authsvc/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	LoginFunc        func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	RegisterFunc     func(ctx context.Context, name, email, phone, password string, roleID uint) (*domain.User, error)
	SendOTPFunc      func(ctx context.Context, email string) error
	VerifyOTPFunc    func(ctx context.Context, email, code string) (*domain.AuthResult, error)
	RefreshTokenFunc func(ctx context.Context, refreshToken string) (string, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Login authenticates a user
func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// Register creates a user
func (m *MockAuthService) Register(ctx context.Context, name, email, phone, password string, roleID uint) (*domain.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, name, email, phone, password, roleID)
	}
	// Default behavior: echo back a created user
	return &domain.User{ID: 1, Name: name, Email: email, Phone: phone, RoleID: roleID}, nil
}

// SendOTP issues a passcode
func (m *MockAuthService) SendOTP(ctx context.Context, email string) error {
	if m.SendOTPFunc != nil {
		return m.SendOTPFunc(ctx, email)
	}
	// Default behavior: success
	return nil
}

// VerifyOTP completes an OTP login
func (m *MockAuthService) VerifyOTP(ctx context.Context, email, code string) (*domain.AuthResult, error) {
	if m.VerifyOTPFunc != nil {
		return m.VerifyOTPFunc(ctx, email, code)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// RefreshToken exchanges a refresh token
func (m *MockAuthService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	if m.RefreshTokenFunc != nil {
		return m.RefreshTokenFunc(ctx, refreshToken)
	}
	// Default behavior: invalid
	return "", domain.ErrTokenInvalid
}
