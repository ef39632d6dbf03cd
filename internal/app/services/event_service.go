package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/campuslink/campuslink/internal/app/models"
	"github.com/campuslink/campuslink/internal/app/repositories"
	"github.com/campuslink/campuslink/internal/pkg/apperrors"
)

// EventService defines the interface for event listing operations
type EventService interface {
	GetEvents(ctx context.Context) ([]models.Event, error)
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	CreateEvent(ctx context.Context, event models.Event) (*models.Event, error)
	UpdateEvent(ctx context.Context, id string, patch models.EventPatch) error
	ReplaceEvent(ctx context.Context, event models.Event) error
	DeleteEvent(ctx context.Context, id string) error
}

type eventServiceImpl struct {
	store repositories.EventStore
}

// NewEventService creates a new event service instance
func NewEventService(store repositories.EventStore) EventService {
	return &eventServiceImpl{store: store}
}

func (s *eventServiceImpl) GetEvents(ctx context.Context) ([]models.Event, error) {
	return s.store.GetAll(ctx)
}

func (s *eventServiceImpl) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	return s.store.GetByID(ctx, id)
}

func (s *eventServiceImpl) CreateEvent(ctx context.Context, event models.Event) (*models.Event, error) {
	if strings.TrimSpace(event.Title) == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	return s.store.Add(ctx, event)
}

func (s *eventServiceImpl) UpdateEvent(ctx context.Context, id string, patch models.EventPatch) error {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	return s.store.Update(ctx, id, patch)
}

func (s *eventServiceImpl) ReplaceEvent(ctx context.Context, event models.Event) error {
	if strings.TrimSpace(event.ID) == "" {
		return fmt.Errorf("%w: id cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(event.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	return s.store.Set(ctx, event)
}

func (s *eventServiceImpl) DeleteEvent(ctx context.Context, id string) error {
	return s.store.Remove(ctx, id)
}
