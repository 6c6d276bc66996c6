package domain

import "errors"

// Registration errors
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrRoleNotAssignable = errors.New("role is not assignable")
	ErrRoleNotFound      = errors.New("role not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("incorrect password")
)

// OTP errors
var (
	ErrOTPMismatch = errors.New("otp mismatched")
	ErrOTPExpired  = errors.New("otp has expired")
	ErrOTPNotFound = errors.New("otp not found")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid or expired token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)
