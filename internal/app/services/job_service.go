package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/campuslink/campuslink/internal/app/models"
	"github.com/campuslink/campuslink/internal/app/repositories"
	"github.com/campuslink/campuslink/internal/pkg/apperrors"
)

// JobService defines the interface for job posting operations
type JobService interface {
	GetJobs(ctx context.Context) ([]models.Job, error)
	GetJob(ctx context.Context, id string) (*models.Job, error)
	CreateJob(ctx context.Context, job models.Job) (*models.Job, error)
	UpdateJob(ctx context.Context, id string, patch models.JobPatch) error
	ReplaceJob(ctx context.Context, job models.Job) error
	DeleteJob(ctx context.Context, id string) error
}

type jobServiceImpl struct {
	store repositories.JobStore
}

// NewJobService creates a new job service instance
func NewJobService(store repositories.JobStore) JobService {
	return &jobServiceImpl{store: store}
}

func (s *jobServiceImpl) GetJobs(ctx context.Context) ([]models.Job, error) {
	return s.store.GetAll(ctx)
}

func (s *jobServiceImpl) GetJob(ctx context.Context, id string) (*models.Job, error) {
	return s.store.GetByID(ctx, id)
}

func (s *jobServiceImpl) CreateJob(ctx context.Context, job models.Job) (*models.Job, error) {
	if strings.TrimSpace(job.Title) == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(job.Company) == "" {
		return nil, fmt.Errorf("%w: company cannot be empty", apperrors.ErrValidationFailed)
	}
	return s.store.Add(ctx, job)
}

func (s *jobServiceImpl) UpdateJob(ctx context.Context, id string, patch models.JobPatch) error {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	return s.store.Update(ctx, id, patch)
}

func (s *jobServiceImpl) ReplaceJob(ctx context.Context, job models.Job) error {
	if strings.TrimSpace(job.ID) == "" {
		return fmt.Errorf("%w: id cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(job.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	return s.store.Set(ctx, job)
}

func (s *jobServiceImpl) DeleteJob(ctx context.Context, id string) error {
	return s.store.Remove(ctx, id)
}
