package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/you/authsvc/domain"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(&DBUser{}, &DBRole{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	if err := SeedRoles(db); err != nil {
		t.Fatalf("failed to seed roles: %v", err)
	}

	return db
}

func seedUser(t *testing.T, db *gorm.DB) *DBUser {
	t.Helper()
	user := &DBUser{
		ID:           1,
		Name:         "Alice",
		Email:        "a@x.com",
		Phone:        "555",
		PasswordHash: "hashed_pw123",
		RoleID:       2,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func TestUserRepositoryImpl_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user := &domain.User{
		Name:         "Alice",
		Email:        "a@x.com",
		Phone:        "555",
		PasswordHash: "hashed_pw123",
		RoleID:       2,
	}

	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("create: %v", err)
	}
	if user.ID == 0 {
		t.Error("created user has no ID")
	}

	// Duplicate email must be rejected by the unique index
	dup := &domain.User{Name: "Bob", Email: "a@x.com", Phone: "556", PasswordHash: "h", RoleID: 2}
	if err := repo.Create(context.Background(), dup); err == nil {
		t.Error("expected duplicate email to fail")
	}
}

func TestUserRepositoryImpl_FindByEmail(t *testing.T) {
	tests := []struct {
		name          string
		setupData     func(db *gorm.DB)
		email         string
		expectedError error
	}{
		{
			name:      "successful find",
			setupData: func(db *gorm.DB) { seedUser(t, db) },
			email:     "a@x.com",
		},
		{
			name:          "not found",
			setupData:     func(db *gorm.DB) {},
			email:         "missing@x.com",
			expectedError: domain.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			tt.setupData(db)
			repo := NewUserRepository(db)

			user, err := repo.FindByEmail(context.Background(), tt.email)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if user.Email != tt.email {
				t.Errorf("email %q, want %q", user.Email, tt.email)
			}
			if user.Name != "Alice" || user.RoleID != 2 {
				t.Errorf("unexpected user %+v", user)
			}
		})
	}
}

func TestUserRepositoryImpl_FindByEmailOrPhone(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		phone         string
		expectedError error
	}{
		{name: "match on email", email: "a@x.com", phone: "999"},
		{name: "match on phone", email: "other@x.com", phone: "555"},
		{name: "match on both", email: "a@x.com", phone: "555"},
		{name: "no match", email: "other@x.com", phone: "999", expectedError: domain.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			seedUser(t, db)
			repo := NewUserRepository(db)

			user, err := repo.FindByEmailOrPhone(context.Background(), tt.email, tt.phone)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if user.ID != 1 {
				t.Errorf("matched user %d, want 1", user.ID)
			}
		})
	}
}

func TestUserRepositoryImpl_FindRoleByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	role, err := repo.FindRoleByID(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if role.Name != "user" {
		t.Errorf("role name %q, want user", role.Name)
	}

	if _, err := repo.FindRoleByID(context.Background(), 99); !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
}

func TestUserRepositoryImpl_FindByID(t *testing.T) {
	db := setupTestDB(t)
	seedUser(t, db)
	repo := NewUserRepository(db)

	user, err := repo.FindByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "a@x.com" {
		t.Errorf("email %q, want a@x.com", user.Email)
	}

	if _, err := repo.FindByID(context.Background(), 42); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
