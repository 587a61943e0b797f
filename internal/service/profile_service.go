package service

import (
	"context"

	"github.com/spec-kit/shift-scheduler/internal/domain"
	"github.com/spec-kit/shift-scheduler/internal/repository"
)

// ProfileService answers profile and role questions for the current
// identity.
type ProfileService struct {
	profiles repository.ProfileRepository
}

// NewProfileService builds the service.
func NewProfileService(profiles repository.ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// GetProfile fetches exactly one profile row by id. A missing identity or
// failed lookup yields nil, not an error; there is no retry.
func (s *ProfileService) GetProfile(ctx context.Context, userID string) *domain.Profile {
	if userID == "" {
		return nil
	}
	profile, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return nil
	}
	return profile
}

// IsAdmin reports whether the identity resolves to an admin profile.
// Absent identity or profile means false, never an error.
func (s *ProfileService) IsAdmin(ctx context.Context, userID string) bool {
	return s.GetProfile(ctx, userID).IsAdmin()
}

// ListOrgMembers returns every profile in the organization.
func (s *ProfileService) ListOrgMembers(ctx context.Context, orgID string) ([]domain.Profile, error) {
	return s.profiles.ListByOrg(ctx, orgID)
}
