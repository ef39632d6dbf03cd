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
	"github.com/campuslink/campuslink/internal/pkg/helpers"
	"github.com/campuslink/campuslink/internal/pkg/logger"
)

// HostelRepository handles hostel database operations
type HostelRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewHostelRepository creates a new HostelRepository
func NewHostelRepository(db *pgxpool.Pool) *HostelRepository {
	return &HostelRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var hostelColumns = []string{"id", "name", "location", "price_range", "images", "rating", "university_id", "amenities", "recommended"}

// GetAll retrieves every hostel listing
func (r *HostelRepository) GetAll(ctx context.Context) ([]models.Hostel, error) {
	sql, args, err := r.sb.Select(hostelColumns...).
		From("hostels").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list hostels query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing hostels")
		return nil, fmt.Errorf("error listing hostels: %w", err)
	}
	defer rows.Close()

	hostels := []models.Hostel{}
	for rows.Next() {
		h, err := scanHostel(rows)
		if err != nil {
			return nil, err
		}
		hostels = append(hostels, *h)
	}
	return hostels, rows.Err()
}

// GetByID retrieves a hostel by ID
func (r *HostelRepository) GetByID(ctx context.Context, id string) (*models.Hostel, error) {
	sql, args, err := r.sb.Select(hostelColumns...).
		From("hostels").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get hostel query: %w", err)
	}

	h, err := scanHostel(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrHostelNotFound
		}
		logger.Error().Err(err).Str("hostelId", id).Msg("Error getting hostel")
		return nil, fmt.Errorf("error getting hostel: %w", err)
	}
	return h, nil
}

// Add inserts a hostel under a freshly assigned id and returns the stored record
func (r *HostelRepository) Add(ctx context.Context, hostel models.Hostel) (*models.Hostel, error) {
	hostel.ID = models.NewID(models.CollectionHostels)

	images, err := helpers.MarshalList(hostel.Images)
	if err != nil {
		return nil, fmt.Errorf("failed to encode hostel images: %w", err)
	}
	amenities, err := helpers.MarshalList(hostel.Amenities)
	if err != nil {
		return nil, fmt.Errorf("failed to encode hostel amenities: %w", err)
	}

	sql, args, err := r.sb.Insert("hostels").
		Columns(hostelColumns...).
		Values(hostel.ID, hostel.Name, hostel.Location, hostel.PriceRange, images, hostel.Rating, hostel.UniversityID, amenities, hostel.Recommended).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert hostel query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error inserting hostel")
		return nil, fmt.Errorf("error inserting hostel: %w", err)
	}
	return &hostel, nil
}

// Update merges the patch into an existing hostel. An unknown id is a no-op.
func (r *HostelRepository) Update(ctx context.Context, id string, patch models.HostelPatch) error {
	set := map[string]interface{}{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Location != nil {
		set["location"] = *patch.Location
	}
	if patch.PriceRange != nil {
		set["price_range"] = *patch.PriceRange
	}
	if patch.Images != nil {
		images, err := helpers.MarshalList(*patch.Images)
		if err != nil {
			return fmt.Errorf("failed to encode hostel images: %w", err)
		}
		set["images"] = images
	}
	if patch.Rating != nil {
		set["rating"] = *patch.Rating
	}
	if patch.UniversityID != nil {
		set["university_id"] = *patch.UniversityID
	}
	if patch.Amenities != nil {
		amenities, err := helpers.MarshalList(*patch.Amenities)
		if err != nil {
			return fmt.Errorf("failed to encode hostel amenities: %w", err)
		}
		set["amenities"] = amenities
	}
	if patch.Recommended != nil {
		set["recommended"] = *patch.Recommended
	}
	if len(set) == 0 {
		return nil
	}

	sql, args, err := r.sb.Update("hostels").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update hostel query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("hostelId", id).Msg("Error updating hostel")
		return fmt.Errorf("error updating hostel: %w", err)
	}
	return nil
}

// Set replaces the hostel with a matching id, or inserts it when absent
func (r *HostelRepository) Set(ctx context.Context, hostel models.Hostel) error {
	images, err := helpers.MarshalList(hostel.Images)
	if err != nil {
		return fmt.Errorf("failed to encode hostel images: %w", err)
	}
	amenities, err := helpers.MarshalList(hostel.Amenities)
	if err != nil {
		return fmt.Errorf("failed to encode hostel amenities: %w", err)
	}

	sql, args, err := r.sb.Insert("hostels").
		Columns(hostelColumns...).
		Values(hostel.ID, hostel.Name, hostel.Location, hostel.PriceRange, images, hostel.Rating, hostel.UniversityID, amenities, hostel.Recommended).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, location = EXCLUDED.location, price_range = EXCLUDED.price_range,
			images = EXCLUDED.images, rating = EXCLUDED.rating, university_id = EXCLUDED.university_id,
			amenities = EXCLUDED.amenities, recommended = EXCLUDED.recommended`).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert hostel query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("hostelId", hostel.ID).Msg("Error upserting hostel")
		return fmt.Errorf("error upserting hostel: %w", err)
	}
	return nil
}

// Remove deletes a hostel. An unknown id is a no-op.
func (r *HostelRepository) Remove(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete("hostels").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete hostel query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("hostelId", id).Msg("Error deleting hostel")
		return fmt.Errorf("error deleting hostel: %w", err)
	}
	return nil
}

func scanHostel(row pgx.Row) (*models.Hostel, error) {
	h := &models.Hostel{}
	var images, amenities string
	if err := row.Scan(&h.ID, &h.Name, &h.Location, &h.PriceRange, &images, &h.Rating, &h.UniversityID, &amenities, &h.Recommended); err != nil {
		return nil, err
	}
	if err := helpers.UnmarshalList(images, &h.Images); err != nil {
		return nil, fmt.Errorf("failed to decode hostel images: %w", err)
	}
	if err := helpers.UnmarshalList(amenities, &h.Amenities); err != nil {
		return nil, fmt.Errorf("failed to decode hostel amenities: %w", err)
	}
	return h, nil
}
