package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/you/authsvc/domain"
)

// reservedRoleID can never be assigned through registration.
const reservedRoleID = 1

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	otpSvc      domain.OTPService
	accessTTL   int64
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	otpSvc domain.OTPService,
	accessTTLSeconds int64,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		otpSvc:      otpSvc,
		accessTTL:   accessTTLSeconds,
	}
}

// Login implements domain.AuthService. A missing user and a wrong password
// surface as distinct errors; collapsing them is future hardening for the
// transport layer.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

// Register implements domain.AuthService
func (s *AuthServiceImpl) Register(ctx context.Context, name, email, phone, password string, roleID uint) (*domain.User, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" ||
		strings.TrimSpace(phone) == "" || password == "" || roleID == 0 {
		return nil, domain.ErrInvalidInput
	}

	if roleID == reservedRoleID {
		return nil, domain.ErrRoleNotAssignable
	}

	// A match on either email or phone blocks registration
	existing, err := s.userRepo.FindByEmailOrPhone(ctx, email, phone)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrUserAlreadyExists
	}

	role, err := s.userRepo.FindRoleByID(ctx, roleID)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: hashedPassword,
		RoleID:       role.ID,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// SendOTP implements domain.AuthService. The generated code is never
// returned to the caller; it only travels through the notification channel.
func (s *AuthServiceImpl) SendOTP(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	if _, err := s.otpSvc.Issue(ctx, user); err != nil {
		return fmt.Errorf("failed to issue OTP: %w", err)
	}

	return nil
}

// VerifyOTP implements domain.AuthService. A successful verification
// completes the login: tokens are issued exactly as in Login.
func (s *AuthServiceImpl) VerifyOTP(ctx context.Context, email, code string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := s.otpSvc.Verify(ctx, user, code); err != nil {
		return nil, err
	}

	return s.issueTokens(user)
}

// RefreshToken implements domain.AuthService. The refresh token itself is
// not rotated; only a new access token is minted from its claims.
func (s *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokenSvc.Validate(refreshToken)
	if err != nil {
		return "", domain.ErrTokenInvalid
	}

	accessToken, err := s.tokenSvc.GenerateAccessToken(&domain.TokenClaims{
		UserID: claims.UserID,
		Name:   claims.Name,
		Email:  claims.Email,
		Phone:  claims.Phone,
		RoleID: claims.RoleID,
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}

	return accessToken, nil
}

func (s *AuthServiceImpl) issueTokens(user *domain.User) (*domain.AuthResult, error) {
	claims := domain.ClaimsFor(user)

	accessToken, err := s.tokenSvc.GenerateAccessToken(claims)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.tokenSvc.GenerateRefreshToken(claims)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &domain.AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    s.accessTTL,
	}, nil
}
