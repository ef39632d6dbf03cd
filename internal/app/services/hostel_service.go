package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/campuslink/campuslink/internal/app/models"
	"github.com/campuslink/campuslink/internal/app/repositories"
	"github.com/campuslink/campuslink/internal/cache"
	"github.com/campuslink/campuslink/internal/pkg/apperrors"
	"github.com/campuslink/campuslink/internal/pkg/logger"
)

const hostelListCacheKey = "campuslink:hostels:all"

// HostelFilter narrows list results; the zero value matches everything.
type HostelFilter struct {
	UniversityID string
	Recommended  *bool
}

// HostelService defines the interface for hostel listing operations
type HostelService interface {
	GetHostels(ctx context.Context, filter HostelFilter) ([]models.Hostel, error)
	GetHostel(ctx context.Context, id string) (*models.Hostel, error)
	CreateHostel(ctx context.Context, hostel models.Hostel) (*models.Hostel, error)
	UpdateHostel(ctx context.Context, id string, patch models.HostelPatch) error
	ReplaceHostel(ctx context.Context, hostel models.Hostel) error
	DeleteHostel(ctx context.Context, id string) error
}

// hostelServiceImpl implements the HostelService interface
type hostelServiceImpl struct {
	store repositories.HostelStore
	cache cache.Cache
}

// NewHostelService creates a new hostel service instance
func NewHostelService(store repositories.HostelStore, c cache.Cache) HostelService {
	return &hostelServiceImpl{store: store, cache: c}
}

func (s *hostelServiceImpl) GetHostels(ctx context.Context, filter HostelFilter) ([]models.Hostel, error) {
	// The cache holds the unfiltered list; filters are applied per request.
	var cached []models.Hostel
	hit, err := s.cache.GetJSON(ctx, hostelListCacheKey, &cached)
	if err != nil {
		logger.Warn().Err(err).Msg("Hostel list cache read failed")
	}
	if hit {
		return filterHostels(cached, filter), nil
	}

	hostels, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetJSON(ctx, hostelListCacheKey, hostels, cache.DefaultTTL); err != nil {
		logger.Warn().Err(err).Msg("Hostel list cache write failed")
	}
	return filterHostels(hostels, filter), nil
}

func filterHostels(hostels []models.Hostel, filter HostelFilter) []models.Hostel {
	if filter.UniversityID == "" && filter.Recommended == nil {
		return hostels
	}
	out := make([]models.Hostel, 0, len(hostels))
	for _, h := range hostels {
		if filter.UniversityID != "" && h.UniversityID != filter.UniversityID {
			continue
		}
		if filter.Recommended != nil && h.Recommended != *filter.Recommended {
			continue
		}
		out = append(out, h)
	}
	return out
}

func (s *hostelServiceImpl) GetHostel(ctx context.Context, id string) (*models.Hostel, error) {
	return s.store.GetByID(ctx, id)
}

func (s *hostelServiceImpl) CreateHostel(ctx context.Context, hostel models.Hostel) (*models.Hostel, error) {
	if err := validateHostel(hostel); err != nil {
		return nil, err
	}
	stored, err := s.store.Add(ctx, hostel)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return stored, nil
}

func (s *hostelServiceImpl) UpdateHostel(ctx context.Context, id string, patch models.HostelPatch) error {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if err := s.store.Update(ctx, id, patch); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *hostelServiceImpl) ReplaceHostel(ctx context.Context, hostel models.Hostel) error {
	if strings.TrimSpace(hostel.ID) == "" {
		return fmt.Errorf("%w: id cannot be empty", apperrors.ErrValidationFailed)
	}
	if err := validateHostel(hostel); err != nil {
		return err
	}
	if err := s.store.Set(ctx, hostel); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *hostelServiceImpl) DeleteHostel(ctx context.Context, id string) error {
	if err := s.store.Remove(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *hostelServiceImpl) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, hostelListCacheKey); err != nil {
		logger.Warn().Err(err).Msg("Hostel list cache invalidation failed")
	}
}

func validateHostel(hostel models.Hostel) error {
	if strings.TrimSpace(hostel.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if hostel.Rating < 0 || hostel.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 0 and 5", apperrors.ErrValidationFailed)
	}
	return nil
}
