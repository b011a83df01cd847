package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"healthtrack-backend-go/internal/db"
	"healthtrack-backend-go/internal/models"
)

// ErrProfileNotFound is returned for explicit profile fetches of
// identities that never signed in.
var ErrProfileNotFound = errors.New("profile not found")

// userService implements UserService.
type userService struct {
	profiles db.ProfileRepository
}

// NewUserService creates a UserService.
func NewUserService(profiles db.ProfileRepository) UserService {
	return &userService{profiles: profiles}
}

// EnsureProfile returns the stored profile for the identity, creating
// it from the identity-provider claims when absent. Called once per
// sign-in by the client.
func (s *userService) EnsureProfile(ctx context.Context, identity *models.Identity) (*models.UserProfile, bool, error) {
	if identity == nil || identity.ID == "" {
		return nil, false, validationErr("an authenticated identity is required")
	}

	profile, err := s.profiles.Get(ctx, identity.ID)
	if err == nil {
		return profile, false, nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to fetch profile '%s': %w", identity.ID, err)
	}

	now := time.Now().UTC()
	profile = &models.UserProfile{
		UserID:    identity.ID,
		FullName:  identity.DisplayName,
		Email:     identity.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, false, fmt.Errorf("failed to create profile '%s': %w", identity.ID, err)
	}
	return profile, true, nil
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, userID)
		}
		return nil, fmt.Errorf("failed to fetch profile '%s': %w", userID, err)
	}
	return profile, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (*models.UserProfile, error) {
	if req.FullName == "" {
		return nil, validationErr("full name is required")
	}
	if req.Age != nil && (*req.Age < 0 || *req.Age > 150) {
		return nil, validationErr("age must be between 0 and 150")
	}

	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile.FullName = req.FullName
	profile.Age = req.Age
	profile.Gender = req.Gender
	profile.UpdatedAt = time.Now().UTC()

	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update profile '%s': %w", userID, err)
	}
	return profile, nil
}
