package repositories

import (
	"context"
	"time"

	"github.com/you/authsvc/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID           uint      `gorm:"primaryKey"`
	Name         string    `gorm:"size:255"`
	Email        string    `gorm:"uniqueIndex;size:255"`
	Phone        string    `gorm:"uniqueIndex;size:32"`
	PasswordHash string    `gorm:"column:password"`
	RoleID       uint      `gorm:"index"`
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// DBRole represents the database model for Role
type DBRole struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;size:64"`
}

// TableName returns the table name for GORM
func (DBRole) TableName() string {
	return "roles"
}

// SeedRoles ensures the reference roles exist. Role 1 is reserved.
func SeedRoles(db *gorm.DB) error {
	roles := []DBRole{
		{ID: 1, Name: "admin"},
		{ID: 2, Name: "user"},
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&roles).Error
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		return err
	}
	user.ID = dbUser.ID
	user.CreatedAt = dbUser.CreatedAt
	user.UpdatedAt = dbUser.UpdatedAt
	return nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByEmailOrPhone implements domain.UserRepository. Either field
// matching an existing row counts as the same user.
func (r *UserRepositoryImpl) FindByEmailOrPhone(ctx context.Context, email, phone string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("email = ? OR phone = ?", email, phone).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindRoleByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindRoleByID(ctx context.Context, id uint) (*domain.Role, error) {
	var dbRole DBRole
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbRole).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrRoleNotFound
		}
		return nil, err
	}
	return &domain.Role{ID: dbRole.ID, Name: dbRole.Name}, nil
}

func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Phone:        user.Phone,
		PasswordHash: user.PasswordHash,
		RoleID:       user.RoleID,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:           dbUser.ID,
		Name:         dbUser.Name,
		Email:        dbUser.Email,
		Phone:        dbUser.Phone,
		PasswordHash: dbUser.PasswordHash,
		RoleID:       dbUser.RoleID,
		CreatedAt:    dbUser.CreatedAt,
		UpdatedAt:    dbUser.UpdatedAt,
	}
}
