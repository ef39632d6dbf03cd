package services

import (
	"context"

	"github.com/campuslink/campuslink/internal/app/models"
	"github.com/campuslink/campuslink/internal/fixtures"
	"github.com/campuslink/campuslink/internal/pkg/apperrors"
)

// CatalogService serves the static reference catalogs: universities, the
// service directory and the per-university service providers. Catalog data
// is compiled in and never persisted.
type CatalogService interface {
	GetUniversities(ctx context.Context) ([]models.University, error)
	GetUniversity(ctx context.Context, id string) (*models.University, error)
	GetServices(ctx context.Context) ([]models.Service, error)
	GetProviders(ctx context.Context, universityID, serviceID string) ([]models.ServiceProvider, error)
}

type catalogServiceImpl struct{}

// NewCatalogService creates a new catalog service instance
func NewCatalogService() CatalogService {
	return &catalogServiceImpl{}
}

func (s *catalogServiceImpl) GetUniversities(_ context.Context) ([]models.University, error) {
	return fixtures.Universities(), nil
}

func (s *catalogServiceImpl) GetUniversity(_ context.Context, id string) (*models.University, error) {
	for _, u := range fixtures.Universities() {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, apperrors.ErrUniversityNotFound
}

func (s *catalogServiceImpl) GetServices(_ context.Context) ([]models.Service, error) {
	return fixtures.Services(), nil
}

// GetProviders resolves the university and service, then returns the matching
// providers. An empty provider list for a valid pair is not an error.
func (s *catalogServiceImpl) GetProviders(ctx context.Context, universityID, serviceID string) ([]models.ServiceProvider, error) {
	university, err := s.GetUniversity(ctx, universityID)
	if err != nil {
		return nil, err
	}

	known := false
	for _, svc := range fixtures.Services() {
		if svc.ID == serviceID {
			known = true
			break
		}
	}
	if !known {
		return nil, apperrors.ErrServiceNotFound
	}

	providers := fixtures.ProvidersFor(university.Name, serviceID)
	if providers == nil {
		providers = []models.ServiceProvider{}
	}
	return providers, nil
}
