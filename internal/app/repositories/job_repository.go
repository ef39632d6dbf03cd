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

// JobRepository handles job posting database operations
type JobRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *pgxpool.Pool) *JobRepository {
	return &JobRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var jobColumns = []string{"id", "title", "deadline", "company", "image", "location", "type", "description", "responsibilities", "qualifications", "how_to_apply"}

// GetAll retrieves every job posting
func (r *JobRepository) GetAll(ctx context.Context) ([]models.Job, error) {
	sql, args, err := r.sb.Select(jobColumns...).
		From("jobs").
		OrderBy("deadline").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list jobs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing jobs")
		return nil, fmt.Errorf("error listing jobs: %w", err)
	}
	defer rows.Close()

	jobs := []models.Job{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *j)
	}
	return jobs, rows.Err()
}

// GetByID retrieves a job posting by ID
func (r *JobRepository) GetByID(ctx context.Context, id string) (*models.Job, error) {
	sql, args, err := r.sb.Select(jobColumns...).
		From("jobs").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get job query: %w", err)
	}

	j, err := scanJob(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrJobNotFound
		}
		logger.Error().Err(err).Str("jobId", id).Msg("Error getting job")
		return nil, fmt.Errorf("error getting job: %w", err)
	}
	return j, nil
}

// Add inserts a job posting under a freshly assigned id and returns the stored record
func (r *JobRepository) Add(ctx context.Context, job models.Job) (*models.Job, error) {
	job.ID = models.NewID(models.CollectionJobs)

	responsibilities, err := helpers.MarshalList(job.Responsibilities)
	if err != nil {
		return nil, fmt.Errorf("failed to encode job responsibilities: %w", err)
	}
	qualifications, err := helpers.MarshalList(job.Qualifications)
	if err != nil {
		return nil, fmt.Errorf("failed to encode job qualifications: %w", err)
	}

	sql, args, err := r.sb.Insert("jobs").
		Columns(jobColumns...).
		Values(job.ID, job.Title, job.Deadline, job.Company, job.Image, job.Location, job.Type, job.Description, responsibilities, qualifications, job.HowToApply).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert job query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error inserting job")
		return nil, fmt.Errorf("error inserting job: %w", err)
	}
	return &job, nil
}

// Update merges the patch into an existing job posting. An unknown id is a no-op.
func (r *JobRepository) Update(ctx context.Context, id string, patch models.JobPatch) error {
	set := map[string]interface{}{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Deadline != nil {
		set["deadline"] = *patch.Deadline
	}
	if patch.Company != nil {
		set["company"] = *patch.Company
	}
	if patch.Image != nil {
		set["image"] = *patch.Image
	}
	if patch.Location != nil {
		set["location"] = *patch.Location
	}
	if patch.Type != nil {
		set["type"] = *patch.Type
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Responsibilities != nil {
		responsibilities, err := helpers.MarshalList(*patch.Responsibilities)
		if err != nil {
			return fmt.Errorf("failed to encode job responsibilities: %w", err)
		}
		set["responsibilities"] = responsibilities
	}
	if patch.Qualifications != nil {
		qualifications, err := helpers.MarshalList(*patch.Qualifications)
		if err != nil {
			return fmt.Errorf("failed to encode job qualifications: %w", err)
		}
		set["qualifications"] = qualifications
	}
	if patch.HowToApply != nil {
		set["how_to_apply"] = *patch.HowToApply
	}
	if len(set) == 0 {
		return nil
	}

	sql, args, err := r.sb.Update("jobs").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update job query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("jobId", id).Msg("Error updating job")
		return fmt.Errorf("error updating job: %w", err)
	}
	return nil
}

// Set replaces the job posting with a matching id, or inserts it when absent
func (r *JobRepository) Set(ctx context.Context, job models.Job) error {
	responsibilities, err := helpers.MarshalList(job.Responsibilities)
	if err != nil {
		return fmt.Errorf("failed to encode job responsibilities: %w", err)
	}
	qualifications, err := helpers.MarshalList(job.Qualifications)
	if err != nil {
		return fmt.Errorf("failed to encode job qualifications: %w", err)
	}

	sql, args, err := r.sb.Insert("jobs").
		Columns(jobColumns...).
		Values(job.ID, job.Title, job.Deadline, job.Company, job.Image, job.Location, job.Type, job.Description, responsibilities, qualifications, job.HowToApply).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title, deadline = EXCLUDED.deadline, company = EXCLUDED.company,
			image = EXCLUDED.image, location = EXCLUDED.location, type = EXCLUDED.type,
			description = EXCLUDED.description, responsibilities = EXCLUDED.responsibilities,
			qualifications = EXCLUDED.qualifications, how_to_apply = EXCLUDED.how_to_apply`).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert job query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("jobId", job.ID).Msg("Error upserting job")
		return fmt.Errorf("error upserting job: %w", err)
	}
	return nil
}

// Remove deletes a job posting. An unknown id is a no-op.
func (r *JobRepository) Remove(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete("jobs").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete job query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("jobId", id).Msg("Error deleting job")
		return fmt.Errorf("error deleting job: %w", err)
	}
	return nil
}

func scanJob(row pgx.Row) (*models.Job, error) {
	j := &models.Job{}
	var responsibilities, qualifications string
	if err := row.Scan(&j.ID, &j.Title, &j.Deadline, &j.Company, &j.Image, &j.Location, &j.Type, &j.Description, &responsibilities, &qualifications, &j.HowToApply); err != nil {
		return nil, err
	}
	if err := helpers.UnmarshalList(responsibilities, &j.Responsibilities); err != nil {
		return nil, fmt.Errorf("failed to decode job responsibilities: %w", err)
	}
	if err := helpers.UnmarshalList(qualifications, &j.Qualifications); err != nil {
		return nil, fmt.Errorf("failed to decode job qualifications: %w", err)
	}
	return j, nil
}
