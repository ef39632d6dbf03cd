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

// SpotlightRepository handles spotlight nominee database operations
type SpotlightRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSpotlightRepository creates a new SpotlightRepository
func NewSpotlightRepository(db *pgxpool.Pool) *SpotlightRepository {
	return &SpotlightRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var spotlightColumns = []string{"id", "name", "major", "bio", "image", "university_id", "gender", "votes", "interests"}

// GetAll retrieves every spotlight nominee, most voted first
func (r *SpotlightRepository) GetAll(ctx context.Context) ([]models.SpotlightNominee, error) {
	sql, args, err := r.sb.Select(spotlightColumns...).
		From("spotlight").
		OrderBy("votes DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list nominees query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing spotlight nominees")
		return nil, fmt.Errorf("error listing spotlight nominees: %w", err)
	}
	defer rows.Close()

	nominees := []models.SpotlightNominee{}
	for rows.Next() {
		n, err := scanNominee(rows)
		if err != nil {
			return nil, err
		}
		nominees = append(nominees, *n)
	}
	return nominees, rows.Err()
}

// GetByID retrieves a nominee by ID
func (r *SpotlightRepository) GetByID(ctx context.Context, id string) (*models.SpotlightNominee, error) {
	sql, args, err := r.sb.Select(spotlightColumns...).
		From("spotlight").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get nominee query: %w", err)
	}

	n, err := scanNominee(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNomineeNotFound
		}
		logger.Error().Err(err).Str("nomineeId", id).Msg("Error getting nominee")
		return nil, fmt.Errorf("error getting nominee: %w", err)
	}
	return n, nil
}

// Add inserts a nominee under a freshly assigned id and returns the stored record
func (r *SpotlightRepository) Add(ctx context.Context, nominee models.SpotlightNominee) (*models.SpotlightNominee, error) {
	nominee.ID = models.NewID(models.CollectionSpotlight)

	interests, err := helpers.MarshalList(nominee.Interests)
	if err != nil {
		return nil, fmt.Errorf("failed to encode nominee interests: %w", err)
	}

	sql, args, err := r.sb.Insert("spotlight").
		Columns(spotlightColumns...).
		Values(nominee.ID, nominee.Name, nominee.Major, nominee.Bio, nominee.Image, nominee.UniversityID, nominee.Gender, nominee.Votes, interests).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert nominee query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error inserting nominee")
		return nil, fmt.Errorf("error inserting nominee: %w", err)
	}
	return &nominee, nil
}

// Update merges the patch into an existing nominee. An unknown id is a no-op.
func (r *SpotlightRepository) Update(ctx context.Context, id string, patch models.SpotlightNomineePatch) error {
	set := map[string]interface{}{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Major != nil {
		set["major"] = *patch.Major
	}
	if patch.Bio != nil {
		set["bio"] = *patch.Bio
	}
	if patch.Image != nil {
		set["image"] = *patch.Image
	}
	if patch.UniversityID != nil {
		set["university_id"] = *patch.UniversityID
	}
	if patch.Gender != nil {
		set["gender"] = *patch.Gender
	}
	if patch.Votes != nil {
		set["votes"] = *patch.Votes
	}
	if patch.Interests != nil {
		interests, err := helpers.MarshalList(*patch.Interests)
		if err != nil {
			return fmt.Errorf("failed to encode nominee interests: %w", err)
		}
		set["interests"] = interests
	}
	if len(set) == 0 {
		return nil
	}

	sql, args, err := r.sb.Update("spotlight").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update nominee query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("nomineeId", id).Msg("Error updating nominee")
		return fmt.Errorf("error updating nominee: %w", err)
	}
	return nil
}

// Set replaces the nominee with a matching id, or inserts it when absent
func (r *SpotlightRepository) Set(ctx context.Context, nominee models.SpotlightNominee) error {
	interests, err := helpers.MarshalList(nominee.Interests)
	if err != nil {
		return fmt.Errorf("failed to encode nominee interests: %w", err)
	}

	sql, args, err := r.sb.Insert("spotlight").
		Columns(spotlightColumns...).
		Values(nominee.ID, nominee.Name, nominee.Major, nominee.Bio, nominee.Image, nominee.UniversityID, nominee.Gender, nominee.Votes, interests).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, major = EXCLUDED.major, bio = EXCLUDED.bio, image = EXCLUDED.image,
			university_id = EXCLUDED.university_id, gender = EXCLUDED.gender,
			votes = EXCLUDED.votes, interests = EXCLUDED.interests`).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert nominee query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("nomineeId", nominee.ID).Msg("Error upserting nominee")
		return fmt.Errorf("error upserting nominee: %w", err)
	}
	return nil
}

// Remove deletes a nominee. An unknown id is a no-op.
func (r *SpotlightRepository) Remove(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete("spotlight").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete nominee query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("nomineeId", id).Msg("Error deleting nominee")
		return fmt.Errorf("error deleting nominee: %w", err)
	}
	return nil
}

// Vote atomically increments the nominee's vote count and returns the new total
func (r *SpotlightRepository) Vote(ctx context.Context, id string) (int, error) {
	sql, args, err := r.sb.Update("spotlight").
		Set("votes", squirrel.Expr("votes + 1")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING votes").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build vote query: %w", err)
	}

	var votes int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&votes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrNomineeNotFound
		}
		logger.Error().Err(err).Str("nomineeId", id).Msg("Error recording vote")
		return 0, fmt.Errorf("error recording vote: %w", err)
	}
	return votes, nil
}

func scanNominee(row pgx.Row) (*models.SpotlightNominee, error) {
	n := &models.SpotlightNominee{}
	var interests string
	if err := row.Scan(&n.ID, &n.Name, &n.Major, &n.Bio, &n.Image, &n.UniversityID, &n.Gender, &n.Votes, &interests); err != nil {
		return nil, err
	}
	if err := helpers.UnmarshalList(interests, &n.Interests); err != nil {
		return nil, fmt.Errorf("failed to decode nominee interests: %w", err)
	}
	return n, nil
}
