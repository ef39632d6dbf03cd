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

// EventRepository handles event database operations
type EventRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// "time" needs quoting, it is reserved in some dialects
var eventColumns = []string{"id", "title", "date", "day", "month", "location", "image", `"time"`, "price", "description"}

// GetAll retrieves every event listing
func (r *EventRepository) GetAll(ctx context.Context) ([]models.Event, error) {
	sql, args, err := r.sb.Select(eventColumns...).
		From("events").
		OrderBy("date").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list events query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing events")
		return nil, fmt.Errorf("error listing events: %w", err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Date, &e.Day, &e.Month, &e.Location, &e.Image, &e.Time, &e.Price, &e.Description); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(ctx context.Context, id string) (*models.Event, error) {
	sql, args, err := r.sb.Select(eventColumns...).
		From("events").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get event query: %w", err)
	}

	e := &models.Event{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&e.ID, &e.Title, &e.Date, &e.Day, &e.Month, &e.Location, &e.Image, &e.Time, &e.Price, &e.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		logger.Error().Err(err).Str("eventId", id).Msg("Error getting event")
		return nil, fmt.Errorf("error getting event: %w", err)
	}
	return e, nil
}

// Add inserts an event under a freshly assigned id and returns the stored record
func (r *EventRepository) Add(ctx context.Context, event models.Event) (*models.Event, error) {
	event.ID = models.NewID(models.CollectionEvents)

	sql, args, err := r.sb.Insert("events").
		Columns(eventColumns...).
		Values(event.ID, event.Title, event.Date, event.Day, event.Month, event.Location, event.Image, event.Time, event.Price, event.Description).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert event query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error inserting event")
		return nil, fmt.Errorf("error inserting event: %w", err)
	}
	return &event, nil
}

// Update merges the patch into an existing event. An unknown id is a no-op.
func (r *EventRepository) Update(ctx context.Context, id string, patch models.EventPatch) error {
	set := map[string]interface{}{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Date != nil {
		set["date"] = *patch.Date
	}
	if patch.Day != nil {
		set["day"] = *patch.Day
	}
	if patch.Month != nil {
		set["month"] = *patch.Month
	}
	if patch.Location != nil {
		set["location"] = *patch.Location
	}
	if patch.Image != nil {
		set["image"] = *patch.Image
	}
	if patch.Time != nil {
		set[`"time"`] = *patch.Time
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if len(set) == 0 {
		return nil
	}

	sql, args, err := r.sb.Update("events").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update event query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("eventId", id).Msg("Error updating event")
		return fmt.Errorf("error updating event: %w", err)
	}
	return nil
}

// Set replaces the event with a matching id, or inserts it when absent
func (r *EventRepository) Set(ctx context.Context, event models.Event) error {
	sql, args, err := r.sb.Insert("events").
		Columns(eventColumns...).
		Values(event.ID, event.Title, event.Date, event.Day, event.Month, event.Location, event.Image, event.Time, event.Price, event.Description).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title, date = EXCLUDED.date, day = EXCLUDED.day, month = EXCLUDED.month,
			location = EXCLUDED.location, image = EXCLUDED.image, "time" = EXCLUDED."time",
			price = EXCLUDED.price, description = EXCLUDED.description`).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert event query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("eventId", event.ID).Msg("Error upserting event")
		return fmt.Errorf("error upserting event: %w", err)
	}
	return nil
}

// Remove deletes an event. An unknown id is a no-op.
func (r *EventRepository) Remove(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete("events").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete event query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("eventId", id).Msg("Error deleting event")
		return fmt.Errorf("error deleting event: %w", err)
	}
	return nil
}
