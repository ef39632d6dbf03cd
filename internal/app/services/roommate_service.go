package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/campuslink/campuslink/internal/app/models"
	"github.com/campuslink/campuslink/internal/app/repositories"
	"github.com/campuslink/campuslink/internal/pkg/apperrors"
)

// RoommateFilter narrows list results; the zero value matches everything.
type RoommateFilter struct {
	UniversityID  string
	SeekingGender string
}

// RoommateService defines the interface for roommate directory operations
type RoommateService interface {
	GetProfiles(ctx context.Context, filter RoommateFilter) ([]models.RoommateProfile, error)
	GetProfile(ctx context.Context, id string) (*models.RoommateProfile, error)
	CreateProfile(ctx context.Context, profile models.RoommateProfile) (*models.RoommateProfile, error)
	UpdateProfile(ctx context.Context, id string, patch models.RoommateProfilePatch) error
	ReplaceProfile(ctx context.Context, profile models.RoommateProfile) error
	DeleteProfile(ctx context.Context, id string) error
}

type roommateServiceImpl struct {
	store repositories.RoommateStore
}

// NewRoommateService creates a new roommate service instance
func NewRoommateService(store repositories.RoommateStore) RoommateService {
	return &roommateServiceImpl{store: store}
}

func (s *roommateServiceImpl) GetProfiles(ctx context.Context, filter RoommateFilter) ([]models.RoommateProfile, error) {
	profiles, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if filter.UniversityID == "" && filter.SeekingGender == "" {
		return profiles, nil
	}
	out := make([]models.RoommateProfile, 0, len(profiles))
	for _, p := range profiles {
		if filter.UniversityID != "" && p.UniversityID != filter.UniversityID {
			continue
		}
		if filter.SeekingGender != "" && p.SeekingGender != filter.SeekingGender {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *roommateServiceImpl) GetProfile(ctx context.Context, id string) (*models.RoommateProfile, error) {
	return s.store.GetByID(ctx, id)
}

func (s *roommateServiceImpl) CreateProfile(ctx context.Context, profile models.RoommateProfile) (*models.RoommateProfile, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}
	return s.store.Add(ctx, profile)
}

func (s *roommateServiceImpl) UpdateProfile(ctx context.Context, id string, patch models.RoommateProfilePatch) error {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	return s.store.Update(ctx, id, patch)
}

func (s *roommateServiceImpl) ReplaceProfile(ctx context.Context, profile models.RoommateProfile) error {
	if strings.TrimSpace(profile.ID) == "" {
		return fmt.Errorf("%w: id cannot be empty", apperrors.ErrValidationFailed)
	}
	if err := validateProfile(profile); err != nil {
		return err
	}
	return s.store.Set(ctx, profile)
}

func (s *roommateServiceImpl) DeleteProfile(ctx context.Context, id string) error {
	return s.store.Remove(ctx, id)
}

func validateProfile(profile models.RoommateProfile) error {
	if strings.TrimSpace(profile.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(profile.Email) == "" {
		return fmt.Errorf("%w: email cannot be empty", apperrors.ErrValidationFailed)
	}
	return nil
}
