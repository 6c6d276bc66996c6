package mocks

import (
	"fmt"

	"github.com/you/authsvc/domain"
)

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	GenerateAccessTokenFunc  func(claims *domain.TokenClaims) (string, error)
	GenerateRefreshTokenFunc func(claims *domain.TokenClaims) (string, error)
	ValidateFunc             func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// GenerateAccessToken generates an access token
func (m *MockTokenService) GenerateAccessToken(claims *domain.TokenClaims) (string, error) {
	if m.GenerateAccessTokenFunc != nil {
		return m.GenerateAccessTokenFunc(claims)
	}
	// Default behavior: deterministic fake token
	return fmt.Sprintf("access_token_%d", claims.UserID), nil
}

// GenerateRefreshToken generates a refresh token
func (m *MockTokenService) GenerateRefreshToken(claims *domain.TokenClaims) (string, error) {
	if m.GenerateRefreshTokenFunc != nil {
		return m.GenerateRefreshTokenFunc(claims)
	}
	// Default behavior: deterministic fake token
	return fmt.Sprintf("refresh_token_%d", claims.UserID), nil
}

// Validate validates a token
func (m *MockTokenService) Validate(token string) (*domain.TokenClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	// Default behavior: invalid
	return nil, domain.ErrTokenInvalid
}
