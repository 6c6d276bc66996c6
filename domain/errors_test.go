package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		expectedMsg string
	}{
		{name: "ErrInvalidInput", err: ErrInvalidInput, expectedMsg: "invalid input"},
		{name: "ErrRoleNotAssignable", err: ErrRoleNotAssignable, expectedMsg: "role is not assignable"},
		{name: "ErrRoleNotFound", err: ErrRoleNotFound, expectedMsg: "role not found"},
		{name: "ErrUserAlreadyExists", err: ErrUserAlreadyExists, expectedMsg: "user already exists"},
		{name: "ErrUserNotFound", err: ErrUserNotFound, expectedMsg: "user not found"},
		{name: "ErrInvalidCredentials", err: ErrInvalidCredentials, expectedMsg: "incorrect password"},
		{name: "ErrOTPMismatch", err: ErrOTPMismatch, expectedMsg: "otp mismatched"},
		{name: "ErrOTPExpired", err: ErrOTPExpired, expectedMsg: "otp has expired"},
		{name: "ErrOTPNotFound", err: ErrOTPNotFound, expectedMsg: "otp not found"},
		{name: "ErrTokenInvalid", err: ErrTokenInvalid, expectedMsg: "invalid or expired token"},
		{name: "ErrTokenExpired", err: ErrTokenExpired, expectedMsg: "token has expired"},
		{name: "ErrTokenMalformed", err: ErrTokenMalformed, expectedMsg: "malformed token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Fatal("error should not be nil")
			}
			if tt.err.Error() != tt.expectedMsg {
				t.Errorf("expected error message %q, got %q", tt.expectedMsg, tt.err.Error())
			}

			// Wrapped errors keep their identity
			wrapped := fmt.Errorf("context: %w", tt.err)
			if !errors.Is(wrapped, tt.err) {
				t.Error("wrapped error lost its identity")
			}
		})
	}
}

func TestErrorsAreDistinct(t *testing.T) {
	all := []error{
		ErrInvalidInput, ErrRoleNotAssignable, ErrRoleNotFound, ErrUserAlreadyExists,
		ErrUserNotFound, ErrInvalidCredentials, ErrOTPMismatch, ErrOTPExpired,
		ErrOTPNotFound, ErrTokenInvalid, ErrTokenExpired, ErrTokenMalformed,
	}

	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors %v and %v are not distinct", a, b)
			}
		}
	}
}
