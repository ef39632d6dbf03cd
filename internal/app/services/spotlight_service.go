package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/campuslink/campuslink/internal/app/models"
	"github.com/campuslink/campuslink/internal/app/models/dto"
	"github.com/campuslink/campuslink/internal/app/repositories"
	"github.com/campuslink/campuslink/internal/pkg/apperrors"
	"github.com/campuslink/campuslink/internal/pkg/logger"
	"github.com/campuslink/campuslink/internal/pkg/objectstore"
)

// SpotlightService defines the interface for student-spotlight operations
type SpotlightService interface {
	GetNominees(ctx context.Context) ([]models.SpotlightNominee, error)
	GetNominee(ctx context.Context, id string) (*models.SpotlightNominee, error)
	Nominate(ctx context.Context, req dto.NominationRequest, image *multipart.FileHeader) (*models.SpotlightNominee, error)
	Vote(ctx context.Context, id string) (int, error)
	UpdateNominee(ctx context.Context, id string, patch models.SpotlightNomineePatch) error
	DeleteNominee(ctx context.Context, id string) error
}

type spotlightServiceImpl struct {
	store   repositories.SpotlightStore
	uploads *objectstore.Service
}

// NewSpotlightService creates a new spotlight service instance
func NewSpotlightService(store repositories.SpotlightStore, uploads *objectstore.Service) SpotlightService {
	return &spotlightServiceImpl{store: store, uploads: uploads}
}

func (s *spotlightServiceImpl) GetNominees(ctx context.Context) ([]models.SpotlightNominee, error) {
	return s.store.GetAll(ctx)
}

func (s *spotlightServiceImpl) GetNominee(ctx context.Context, id string) (*models.SpotlightNominee, error) {
	return s.store.GetByID(ctx, id)
}

// Nominate builds a nominee from the submitted form. The bio is composed
// from the about text plus the activities, the interests are the
// comma-separated activities, and votes always start at zero.
func (s *spotlightServiceImpl) Nominate(ctx context.Context, req dto.NominationRequest, image *multipart.FileHeader) (*models.SpotlightNominee, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(req.Major) == "" {
		return nil, fmt.Errorf("%w: major cannot be empty", apperrors.ErrValidationFailed)
	}

	nominee := models.SpotlightNominee{
		Name:         strings.TrimSpace(req.Name),
		Major:        strings.TrimSpace(req.Major),
		Bio:          composeBio(req.About, req.Activities),
		UniversityID: strings.TrimSpace(req.UniversityID),
		Gender:       strings.TrimSpace(req.Gender),
		Votes:        0,
		Interests:    splitActivities(req.Activities),
	}

	if image != nil {
		url, err := s.uploads.UploadImage(ctx, image, models.CollectionSpotlight, "")
		if err != nil {
			return nil, err
		}
		nominee.Image = url
	}

	return s.store.Add(ctx, nominee)
}

func (s *spotlightServiceImpl) Vote(ctx context.Context, id string) (int, error) {
	return s.store.Vote(ctx, id)
}

func (s *spotlightServiceImpl) UpdateNominee(ctx context.Context, id string, patch models.SpotlightNomineePatch) error {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	return s.store.Update(ctx, id, patch)
}

func (s *spotlightServiceImpl) DeleteNominee(ctx context.Context, id string) error {
	// Removing the stored portrait is best-effort; an orphaned object must
	// not block the delete.
	if nominee, err := s.store.GetByID(ctx, id); err == nil && nominee.Image != "" {
		if err := s.uploads.DeleteImage(ctx, nominee.Image, models.CollectionSpotlight); err != nil {
			logger.Warn().Err(err).Str("id", id).Msg("Failed to delete nominee image")
		}
	}
	return s.store.Remove(ctx, id)
}

func composeBio(about, activities string) string {
	about = strings.TrimSpace(about)
	activities = strings.TrimSpace(activities)
	switch {
	case about == "":
		return activities
	case activities == "":
		return about
	default:
		return about + "\n\n" + activities
	}
}

func splitActivities(activities string) []string {
	parts := strings.Split(activities, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
