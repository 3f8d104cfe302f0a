// Package repository provides the data access layer for the rental service.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wanderlust-rentals/rental-service/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when no record matches the lookup.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a write violates a unique constraint.
	ErrDuplicate = errors.New("duplicate record")
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	// FindByResetToken returns the user holding digest with an expiry strictly after now.
	FindByResetToken(ctx context.Context, digest string, now time.Time) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, user *models.User) error
	UpdateProfile(ctx context.Context, user *models.User) error
	SetResetToken(ctx context.Context, id, digest string, expiresAt time.Time) error
	ClearResetToken(ctx context.Context, id string) error
	// UpdatePassword stores a new hash and clears the reset fields in the same write.
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

// profileFields are the struct fields UpdateProfile writes.
var profileFields = []string{
	"FullName", "ProfileImage", "DateOfBirth", "Gender", "PhoneNumber", "NIC",
	"Address", "Bio", "TravelStyle", "TravelBudget", "TravelInterest", "UpdatedAt",
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new gorm-backed UserRepository instance.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", translateGormError(err))
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find user by id %s: %w", id, translateGormError(err))
	}
	return &user, nil
}

func (r *userRepository) FindByResetToken(ctx context.Context, digest string, now time.Time) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("reset_token = ? AND reset_token_expires_at > ?", digest, now).
		First(&user).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find user by reset token: %w", translateGormError(err))
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Order("created_on DESC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", translateGormError(err))
	}
	return nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	result := r.db.WithContext(ctx).Model(user).Select(profileFields).Updates(user)
	if result.Error != nil {
		return fmt.Errorf("failed to update user id %s: %w", user.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to update user id %s: %w", user.ID, ErrNotFound)
	}
	return nil
}

func (r *userRepository) SetResetToken(ctx context.Context, id, digest string, expiresAt time.Time) error {
	return r.updateColumns(ctx, id, "set reset token", map[string]interface{}{
		"reset_token":            digest,
		"reset_token_expires_at": expiresAt,
	})
}

func (r *userRepository) ClearResetToken(ctx context.Context, id string) error {
	return r.updateColumns(ctx, id, "clear reset token", map[string]interface{}{
		"reset_token":            nil,
		"reset_token_expires_at": nil,
	})
}

func (r *userRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return r.updateColumns(ctx, id, "update password", map[string]interface{}{
		"password_hash":          passwordHash,
		"reset_token":            nil,
		"reset_token_expires_at": nil,
	})
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.User{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete user id %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete user id %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *userRepository) Ping(ctx context.Context) error {
	return pingGorm(ctx, r.db)
}

func (r *userRepository) updateColumns(ctx context.Context, id, action string, columns map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		return fmt.Errorf("failed to %s for user id %s: %w", action, id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to %s for user id %s: %w", action, id, ErrNotFound)
	}
	return nil
}

func translateGormError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}

func pingGorm(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql handle: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}
