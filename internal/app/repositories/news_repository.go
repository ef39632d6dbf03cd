package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuslink/campuslink/internal/app/models"
	"github.com/campuslink/campuslink/internal/pkg/apperrors"
	"github.com/campuslink/campuslink/internal/pkg/logger"
)

// NewsRepository handles news feed database operations
type NewsRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewNewsRepository creates a new NewsRepository
func NewNewsRepository(db *pgxpool.Pool) *NewsRepository {
	return &NewsRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var newsColumns = []string{"id", "title", "description", "image", "source", "published_at", "featured"}

// GetAll retrieves every news item, newest first
func (r *NewsRepository) GetAll(ctx context.Context) ([]models.NewsItem, error) {
	sql, args, err := r.sb.Select(newsColumns...).
		From("news").
		OrderBy("published_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list news query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing news")
		return nil, fmt.Errorf("error listing news: %w", err)
	}
	defer rows.Close()

	items := []models.NewsItem{}
	for rows.Next() {
		var n models.NewsItem
		if err := rows.Scan(&n.ID, &n.Title, &n.Description, &n.Image, &n.Source, &n.PublishedAt, &n.Featured); err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	return items, rows.Err()
}

// GetByID retrieves a news item by ID
func (r *NewsRepository) GetByID(ctx context.Context, id string) (*models.NewsItem, error) {
	sql, args, err := r.sb.Select(newsColumns...).
		From("news").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get news query: %w", err)
	}

	n := &models.NewsItem{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&n.ID, &n.Title, &n.Description, &n.Image, &n.Source, &n.PublishedAt, &n.Featured)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNewsItemNotFound
		}
		logger.Error().Err(err).Str("newsId", id).Msg("Error getting news item")
		return nil, fmt.Errorf("error getting news item: %w", err)
	}
	return n, nil
}

// Add inserts a news item under a freshly assigned id and returns the stored record
func (r *NewsRepository) Add(ctx context.Context, item models.NewsItem) (*models.NewsItem, error) {
	item.ID = models.NewID(models.CollectionNews)

	sql, args, err := r.sb.Insert("news").
		Columns(newsColumns...).
		Values(item.ID, item.Title, item.Description, item.Image, item.Source, item.PublishedAt, item.Featured).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert news query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error inserting news item")
		return nil, fmt.Errorf("error inserting news item: %w", err)
	}
	return &item, nil
}

// Update merges the patch into an existing news item. An unknown id is a no-op.
func (r *NewsRepository) Update(ctx context.Context, id string, patch models.NewsItemPatch) error {
	set := map[string]interface{}{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Image != nil {
		set["image"] = *patch.Image
	}
	if patch.Source != nil {
		set["source"] = *patch.Source
	}
	if patch.PublishedAt != nil {
		set["published_at"] = *patch.PublishedAt
	}
	if patch.Featured != nil {
		set["featured"] = *patch.Featured
	}
	if len(set) == 0 {
		return nil
	}

	sql, args, err := r.sb.Update("news").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update news query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("newsId", id).Msg("Error updating news item")
		return fmt.Errorf("error updating news item: %w", err)
	}
	return nil
}

// Set replaces the news item with a matching id, or inserts it when absent
func (r *NewsRepository) Set(ctx context.Context, item models.NewsItem) error {
	sql, args, err := r.sb.Insert("news").
		Columns(newsColumns...).
		Values(item.ID, item.Title, item.Description, item.Image, item.Source, item.PublishedAt, item.Featured).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title, description = EXCLUDED.description, image = EXCLUDED.image,
			source = EXCLUDED.source, published_at = EXCLUDED.published_at, featured = EXCLUDED.featured`).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert news query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("newsId", item.ID).Msg("Error upserting news item")
		return fmt.Errorf("error upserting news item: %w", err)
	}
	return nil
}

// Remove deletes a news item. An unknown id is a no-op.
func (r *NewsRepository) Remove(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete("news").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete news query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("newsId", id).Msg("Error deleting news item")
		return fmt.Errorf("error deleting news item: %w", err)
	}
	return nil
}
