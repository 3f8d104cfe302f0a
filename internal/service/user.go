package service

import (
	"context"
	"errors"

	"github.com/wanderlust-rentals/rental-service/internal/apperr"
	"github.com/wanderlust-rentals/rental-service/internal/models"
	"github.com/wanderlust-rentals/rental-service/internal/repository"
)

// Client-facing user management messages.
const (
	MsgUserNotFound       = "User not found"
	MsgForbiddenProfile   = "Forbidden: You can only update your own profile"
	MsgUsersFetched       = "Users fetched successfully"
	MsgProfileUpdated     = "Profile updated successfully"
	MsgUserDeleted        = "User deleted successfully"
	MsgAdminRequired      = "Unauthorized: Admin access required"
	MsgAuthenticationFail = "Authentication failed. Invalid token."
)

// UserService manages user accounts.
type UserService interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	// UpdateProfile applies update to targetID, or to the caller when targetID is empty.
	// Only admins may target another user.
	UpdateProfile(ctx context.Context, callerID, targetID string, update models.ProfileUpdate) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
	// RequireAdmin fails unless id belongs to an admin.
	RequireAdmin(ctx context.Context, id string) error
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService instance.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound(MsgUserNotFound)
		}
		return nil, internal(err, "user_lookup_failed", "user_id", id)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, internal(err, "user_list_failed")
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

func (s *userService) UpdateProfile(ctx context.Context, callerID, targetID string, update models.ProfileUpdate) (*models.User, error) {
	caller, err := s.GetUser(ctx, callerID)
	if err != nil {
		return nil, err
	}

	if targetID == "" {
		targetID = callerID
	}
	if targetID != callerID && !caller.IsAdmin() {
		return nil, apperr.Forbidden(MsgForbiddenProfile)
	}

	target := caller
	if targetID != callerID {
		if target, err = s.GetUser(ctx, targetID); err != nil {
			return nil, err
		}
	}

	update.Apply(target)
	if err := s.userRepo.UpdateProfile(ctx, target); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound(MsgUserNotFound)
		}
		return nil, internal(err, "profile_update_failed", "user_id", target.ID)
	}

	return target, nil
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound(MsgUserNotFound)
		}
		return internal(err, "user_delete_failed", "user_id", id)
	}
	return nil
}

func (s *userService) RequireAdmin(ctx context.Context, id string) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.Auth(MsgAuthenticationFail)
		}
		return internal(err, "user_lookup_failed", "user_id", id)
	}
	if !user.IsAdmin() {
		return apperr.Forbidden(MsgAdminRequired)
	}
	return nil
}
