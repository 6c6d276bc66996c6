package domain

import "time"

// User represents a registered account
type User struct {
	ID           uint
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	RoleID       uint
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Role is read-only reference data. Role 1 is reserved and never
// assignable through registration.
type Role struct {
	ID   uint
	Name string
}

// OTPRecord is the single live one-time passcode for a user. A reissue
// overwrites the record in place; verification flips Verified.
type OTPRecord struct {
	UserID    uint      `json:"user_id"`
	Code      string    `json:"code"`
	Verified  bool      `json:"verified"`
	ExpiresAt time.Time `json:"expires_at"`
}

// TokenClaims is the payload embedded in both access and refresh tokens.
type TokenClaims struct {
	UserID    uint   `json:"user_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	RoleID    uint   `json:"role_id"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// AuthResult represents a successful authentication outcome
type AuthResult struct {
	User         *User
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// ClaimsFor builds the token payload for a user.
func ClaimsFor(u *User) *TokenClaims {
	return &TokenClaims{
		UserID: u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Phone:  u.Phone,
		RoleID: u.RoleID,
	}
}
