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

const newsListCacheKey = "campuslink:news:all"

// NewsService defines the interface for news feed operations
type NewsService interface {
	GetNews(ctx context.Context, featured *bool) ([]models.NewsItem, error)
	GetNewsItem(ctx context.Context, id string) (*models.NewsItem, error)
	CreateNewsItem(ctx context.Context, item models.NewsItem) (*models.NewsItem, error)
	UpdateNewsItem(ctx context.Context, id string, patch models.NewsItemPatch) error
	ReplaceNewsItem(ctx context.Context, item models.NewsItem) error
	DeleteNewsItem(ctx context.Context, id string) error
}

type newsServiceImpl struct {
	store repositories.NewsStore
	cache cache.Cache
}

// NewNewsService creates a new news service instance
func NewNewsService(store repositories.NewsStore, c cache.Cache) NewsService {
	return &newsServiceImpl{store: store, cache: c}
}

func (s *newsServiceImpl) GetNews(ctx context.Context, featured *bool) ([]models.NewsItem, error) {
	// The cache holds the unfiltered list; filters are applied per request.
	var cached []models.NewsItem
	hit, err := s.cache.GetJSON(ctx, newsListCacheKey, &cached)
	if err != nil {
		logger.Warn().Err(err).Msg("News list cache read failed")
	}
	if hit {
		return filterNews(cached, featured), nil
	}

	items, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetJSON(ctx, newsListCacheKey, items, cache.DefaultTTL); err != nil {
		logger.Warn().Err(err).Msg("News list cache write failed")
	}
	return filterNews(items, featured), nil
}

func filterNews(items []models.NewsItem, featured *bool) []models.NewsItem {
	if featured == nil {
		return items
	}
	out := make([]models.NewsItem, 0, len(items))
	for _, item := range items {
		if item.Featured == *featured {
			out = append(out, item)
		}
	}
	return out
}

func (s *newsServiceImpl) GetNewsItem(ctx context.Context, id string) (*models.NewsItem, error) {
	return s.store.GetByID(ctx, id)
}

func (s *newsServiceImpl) CreateNewsItem(ctx context.Context, item models.NewsItem) (*models.NewsItem, error) {
	if strings.TrimSpace(item.Title) == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	stored, err := s.store.Add(ctx, item)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return stored, nil
}

func (s *newsServiceImpl) UpdateNewsItem(ctx context.Context, id string, patch models.NewsItemPatch) error {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	if err := s.store.Update(ctx, id, patch); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *newsServiceImpl) ReplaceNewsItem(ctx context.Context, item models.NewsItem) error {
	if strings.TrimSpace(item.ID) == "" {
		return fmt.Errorf("%w: id cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(item.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	if err := s.store.Set(ctx, item); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *newsServiceImpl) DeleteNewsItem(ctx context.Context, id string) error {
	if err := s.store.Remove(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *newsServiceImpl) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, newsListCacheKey); err != nil {
		logger.Warn().Err(err).Msg("News list cache invalidation failed")
	}
}
