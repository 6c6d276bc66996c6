package domain

import "context"

// UserRepository defines user and role data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByEmailOrPhone(ctx context.Context, email, phone string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	FindRoleByID(ctx context.Context, id uint) (*Role, error)
}

// OTPRepository defines one-time passcode persistence. Upsert must replace
// any existing record for the same user atomically; it is the sole
// synchronization point for concurrent issue calls.
type OTPRepository interface {
	FindByUserID(ctx context.Context, userID uint) (*OTPRecord, error)
	Upsert(ctx context.Context, record *OTPRecord) error
}

// AuthService defines authentication business logic
type AuthService interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Register(ctx context.Context, name, email, phone, password string, roleID uint) (*User, error)
	SendOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, code string) (*AuthResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, error)
}

// OTPService defines the passcode lifecycle
type OTPService interface {
	Issue(ctx context.Context, user *User) (*OTPRecord, error)
	Verify(ctx context.Context, user *User, code string) error
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines token operations
type TokenService interface {
	GenerateAccessToken(claims *TokenClaims) (string, error)
	GenerateRefreshToken(claims *TokenClaims) (string, error)
	Validate(token string) (*TokenClaims, error)
}

// NotificationService defines outbound message delivery
type NotificationService interface {
	SendEmail(to, subject, body string) error
	SendSMS(to, message string) error
}
