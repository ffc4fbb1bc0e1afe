package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

// UserService provides user profile business logic and account deletion.
type UserService struct {
	userRepo    repository.UserRepository
	cascadeRepo repository.CascadeRepository
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository, cascadeRepo repository.CascadeRepository) *UserService {
	return &UserService{
		userRepo:    userRepo,
		cascadeRepo: cascadeRepo,
	}
}

// UpdateProfileInput carries the mutable profile fields. Empty strings
// leave the current value in place.
type UpdateProfileInput struct {
	UserID      uint
	TargetID    uint
	DisplayName string
	Avatar      string
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return s.userRepo.List(ctx, limit, offset)
}

func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	if in.UserID != in.TargetID {
		return nil, models.NewUnauthorizedError("You can only update your own profile")
	}

	user, err := s.userRepo.GetByID(ctx, in.TargetID)
	if err != nil {
		return nil, err
	}

	if in.DisplayName != "" {
		user.DisplayName = in.DisplayName
	}
	if in.Avatar != "" {
		user.Avatar = in.Avatar
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the account together with every post, comment and
// relationship/like edge that references it, as one cascade. The deleted
// user's public projection is returned.
func (s *UserService) DeleteUser(ctx context.Context, userID, targetID uint) (*models.PublicProfile, error) {
	if userID != targetID {
		return nil, models.NewUnauthorizedError("You can only delete your own account")
	}

	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if err := s.cascadeRepo.DeleteUserCascade(ctx, targetID); err != nil {
		return nil, err
	}

	profile := user.Public()
	return &profile, nil
}
