package mocks

import (
	"context"

	"github.com/you/authsvc/domain"
)

// MockUserRepository implements domain.UserRepository interface for testing
type MockUserRepository struct {
	CreateFunc             func(ctx context.Context, user *domain.User) error
	FindByEmailFunc        func(ctx context.Context, email string) (*domain.User, error)
	FindByEmailOrPhoneFunc func(ctx context.Context, email, phone string) (*domain.User, error)
	FindByIDFunc           func(ctx context.Context, id uint) (*domain.User, error)
	FindRoleByIDFunc       func(ctx context.Context, id uint) (*domain.Role, error)
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

// Create creates a new user
func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	// Default behavior: success
	return nil
}

// FindByEmail finds a user by email
func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// FindByEmailOrPhone finds a user matching either field
func (m *MockUserRepository) FindByEmailOrPhone(ctx context.Context, email, phone string) (*domain.User, error) {
	if m.FindByEmailOrPhoneFunc != nil {
		return m.FindByEmailOrPhoneFunc(ctx, email, phone)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// FindByID finds a user by ID
func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// FindRoleByID finds a role by ID
func (m *MockUserRepository) FindRoleByID(ctx context.Context, id uint) (*domain.Role, error) {
	if m.FindRoleByIDFunc != nil {
		return m.FindRoleByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrRoleNotFound
}
