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

// RoommateRepository handles roommate profile database operations
type RoommateRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewRoommateRepository creates a new RoommateRepository
func NewRoommateRepository(db *pgxpool.Pool) *RoommateRepository {
	return &RoommateRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var roommateColumns = []string{
	"id", "name", "email", "phone", "university_id", "course", "year", "budget",
	"move_in_date", "lease_duration", "bio", "smoker", "drinking", "study_schedule",
	"cleanliness", "guest_frequency", "hobbies", "gender", "seeking_gender",
}

// GetAll retrieves every roommate profile
func (r *RoommateRepository) GetAll(ctx context.Context) ([]models.RoommateProfile, error) {
	sql, args, err := r.sb.Select(roommateColumns...).
		From("roommates").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list roommates query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing roommate profiles")
		return nil, fmt.Errorf("error listing roommate profiles: %w", err)
	}
	defer rows.Close()

	profiles := []models.RoommateProfile{}
	for rows.Next() {
		p, err := scanRoommate(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	return profiles, rows.Err()
}

// GetByID retrieves a roommate profile by ID
func (r *RoommateRepository) GetByID(ctx context.Context, id string) (*models.RoommateProfile, error) {
	sql, args, err := r.sb.Select(roommateColumns...).
		From("roommates").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get roommate query: %w", err)
	}

	p, err := scanRoommate(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRoommateProfileNotFound
		}
		logger.Error().Err(err).Str("roommateId", id).Msg("Error getting roommate profile")
		return nil, fmt.Errorf("error getting roommate profile: %w", err)
	}
	return p, nil
}

// Add inserts a roommate profile under a freshly assigned id and returns the stored record
func (r *RoommateRepository) Add(ctx context.Context, profile models.RoommateProfile) (*models.RoommateProfile, error) {
	profile.ID = models.NewID(models.CollectionRoommates)

	hobbies, err := helpers.MarshalList(profile.Hobbies)
	if err != nil {
		return nil, fmt.Errorf("failed to encode roommate hobbies: %w", err)
	}

	sql, args, err := r.sb.Insert("roommates").
		Columns(roommateColumns...).
		Values(profile.ID, profile.Name, profile.Email, profile.Phone, profile.UniversityID,
			profile.Course, profile.Year, profile.Budget, profile.MoveInDate, profile.LeaseDuration,
			profile.Bio, profile.Smoker, profile.Drinking, profile.StudySchedule, profile.Cleanliness,
			profile.GuestFrequency, hobbies, profile.Gender, profile.SeekingGender).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert roommate query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error inserting roommate profile")
		return nil, fmt.Errorf("error inserting roommate profile: %w", err)
	}
	return &profile, nil
}

// Update merges the patch into an existing roommate profile. An unknown id is a no-op.
func (r *RoommateRepository) Update(ctx context.Context, id string, patch models.RoommateProfilePatch) error {
	set := map[string]interface{}{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.Phone != nil {
		set["phone"] = *patch.Phone
	}
	if patch.UniversityID != nil {
		set["university_id"] = *patch.UniversityID
	}
	if patch.Course != nil {
		set["course"] = *patch.Course
	}
	if patch.Year != nil {
		set["year"] = *patch.Year
	}
	if patch.Budget != nil {
		set["budget"] = *patch.Budget
	}
	if patch.MoveInDate != nil {
		set["move_in_date"] = *patch.MoveInDate
	}
	if patch.LeaseDuration != nil {
		set["lease_duration"] = *patch.LeaseDuration
	}
	if patch.Bio != nil {
		set["bio"] = *patch.Bio
	}
	if patch.Smoker != nil {
		set["smoker"] = *patch.Smoker
	}
	if patch.Drinking != nil {
		set["drinking"] = *patch.Drinking
	}
	if patch.StudySchedule != nil {
		set["study_schedule"] = *patch.StudySchedule
	}
	if patch.Cleanliness != nil {
		set["cleanliness"] = *patch.Cleanliness
	}
	if patch.GuestFrequency != nil {
		set["guest_frequency"] = *patch.GuestFrequency
	}
	if patch.Hobbies != nil {
		hobbies, err := helpers.MarshalList(*patch.Hobbies)
		if err != nil {
			return fmt.Errorf("failed to encode roommate hobbies: %w", err)
		}
		set["hobbies"] = hobbies
	}
	if patch.Gender != nil {
		set["gender"] = *patch.Gender
	}
	if patch.SeekingGender != nil {
		set["seeking_gender"] = *patch.SeekingGender
	}
	if len(set) == 0 {
		return nil
	}

	sql, args, err := r.sb.Update("roommates").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update roommate query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("roommateId", id).Msg("Error updating roommate profile")
		return fmt.Errorf("error updating roommate profile: %w", err)
	}
	return nil
}

// Set replaces the roommate profile with a matching id, or inserts it when absent
func (r *RoommateRepository) Set(ctx context.Context, profile models.RoommateProfile) error {
	hobbies, err := helpers.MarshalList(profile.Hobbies)
	if err != nil {
		return fmt.Errorf("failed to encode roommate hobbies: %w", err)
	}

	sql, args, err := r.sb.Insert("roommates").
		Columns(roommateColumns...).
		Values(profile.ID, profile.Name, profile.Email, profile.Phone, profile.UniversityID,
			profile.Course, profile.Year, profile.Budget, profile.MoveInDate, profile.LeaseDuration,
			profile.Bio, profile.Smoker, profile.Drinking, profile.StudySchedule, profile.Cleanliness,
			profile.GuestFrequency, hobbies, profile.Gender, profile.SeekingGender).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, email = EXCLUDED.email, phone = EXCLUDED.phone,
			university_id = EXCLUDED.university_id, course = EXCLUDED.course, year = EXCLUDED.year,
			budget = EXCLUDED.budget, move_in_date = EXCLUDED.move_in_date,
			lease_duration = EXCLUDED.lease_duration, bio = EXCLUDED.bio, smoker = EXCLUDED.smoker,
			drinking = EXCLUDED.drinking, study_schedule = EXCLUDED.study_schedule,
			cleanliness = EXCLUDED.cleanliness, guest_frequency = EXCLUDED.guest_frequency,
			hobbies = EXCLUDED.hobbies, gender = EXCLUDED.gender, seeking_gender = EXCLUDED.seeking_gender`).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert roommate query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("roommateId", profile.ID).Msg("Error upserting roommate profile")
		return fmt.Errorf("error upserting roommate profile: %w", err)
	}
	return nil
}

// Remove deletes a roommate profile. An unknown id is a no-op.
func (r *RoommateRepository) Remove(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete("roommates").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete roommate query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("roommateId", id).Msg("Error deleting roommate profile")
		return fmt.Errorf("error deleting roommate profile: %w", err)
	}
	return nil
}

func scanRoommate(row pgx.Row) (*models.RoommateProfile, error) {
	p := &models.RoommateProfile{}
	var hobbies string
	if err := row.Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.UniversityID, &p.Course, &p.Year,
		&p.Budget, &p.MoveInDate, &p.LeaseDuration, &p.Bio, &p.Smoker, &p.Drinking,
		&p.StudySchedule, &p.Cleanliness, &p.GuestFrequency, &hobbies, &p.Gender, &p.SeekingGender); err != nil {
		return nil, err
	}
	if err := helpers.UnmarshalList(hobbies, &p.Hobbies); err != nil {
		return nil, fmt.Errorf("failed to decode roommate hobbies: %w", err)
	}
	return p, nil
}
