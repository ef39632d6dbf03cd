package localdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/campuslink/campuslink/internal/app/models"
	"github.com/campuslink/campuslink/internal/app/repositories"
	"github.com/campuslink/campuslink/internal/pkg/apperrors"
	"github.com/campuslink/campuslink/internal/pkg/helpers"
	"github.com/campuslink/campuslink/internal/pkg/logger"
)

// Stores exposes the embedded database behind the backend-neutral interfaces.
func Stores(db *DB) *repositories.Stores {
	sb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
	return &repositories.Stores{
		Hostels:   &hostelStore{db: db, sb: sb},
		News:      &newsStore{db: db, sb: sb},
		Events:    &eventStore{db: db, sb: sb},
		Jobs:      &jobStore{db: db, sb: sb},
		Roommates: &roommateStore{db: db, sb: sb},
		Spotlight: &spotlightStore{db: db, sb: sb},
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// exec runs a mutation and snapshots the image afterwards.
func exec(ctx context.Context, db *DB, query string, args []interface{}) error {
	if _, err := db.conn.ExecContext(ctx, query, args...); err != nil {
		return err
	}
	if err := db.Save(ctx); err != nil {
		logger.Error().Err(err).Msg("Failed to persist embedded database snapshot")
		return err
	}
	return nil
}

type hostelStore struct {
	db *DB
	sb squirrel.StatementBuilderType
}

var hostelColumns = []string{"id", "name", "location", "price_range", "images", "rating", "university_id", "amenities", "recommended"}

func (s *hostelStore) GetAll(ctx context.Context) ([]models.Hostel, error) {
	query, args, err := s.sb.Select(hostelColumns...).From("hostels").OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list hostels query: %w", err)
	}
	rows, err := s.db.conn.QueryContext(ctx, query, args...)
	if err != nil {
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

func (s *hostelStore) GetByID(ctx context.Context, id string) (*models.Hostel, error) {
	query, args, err := s.sb.Select(hostelColumns...).From("hostels").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get hostel query: %w", err)
	}
	h, err := scanHostel(s.db.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrHostelNotFound
		}
		return nil, fmt.Errorf("error getting hostel: %w", err)
	}
	return h, nil
}

func (s *hostelStore) Add(ctx context.Context, hostel models.Hostel) (*models.Hostel, error) {
	hostel.ID = models.NewID(models.CollectionHostels)
	if err := s.put(ctx, hostel, false); err != nil {
		return nil, err
	}
	return &hostel, nil
}

func (s *hostelStore) Update(ctx context.Context, id string, patch models.HostelPatch) error {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrHostelNotFound) {
			return nil
		}
		return err
	}
	patch.Apply(existing)
	return s.put(ctx, *existing, true)
}

func (s *hostelStore) Set(ctx context.Context, hostel models.Hostel) error {
	return s.put(ctx, hostel, true)
}

func (s *hostelStore) Remove(ctx context.Context, id string) error {
	query, args, err := s.sb.Delete("hostels").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete hostel query: %w", err)
	}
	return exec(ctx, s.db, query, args)
}

func (s *hostelStore) put(ctx context.Context, hostel models.Hostel, replace bool) error {
	images, err := helpers.MarshalList(hostel.Images)
	if err != nil {
		return fmt.Errorf("failed to encode hostel images: %w", err)
	}
	amenities, err := helpers.MarshalList(hostel.Amenities)
	if err != nil {
		return fmt.Errorf("failed to encode hostel amenities: %w", err)
	}
	builder := s.sb.Insert("hostels").
		Columns(hostelColumns...).
		Values(hostel.ID, hostel.Name, hostel.Location, hostel.PriceRange, images, hostel.Rating, hostel.UniversityID, amenities, hostel.Recommended)
	if replace {
		builder = builder.Options("OR REPLACE")
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build put hostel query: %w", err)
	}
	return exec(ctx, s.db, query, args)
}

func scanHostel(row rowScanner) (*models.Hostel, error) {
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

type newsStore struct {
	db *DB
	sb squirrel.StatementBuilderType
}

var newsColumns = []string{"id", "title", "description", "image", "source", "published_at", "featured"}

func (s *newsStore) GetAll(ctx context.Context) ([]models.NewsItem, error) {
	query, args, err := s.sb.Select(newsColumns...).From("news").OrderBy("published_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list news query: %w", err)
	}
	rows, err := s.db.conn.QueryContext(ctx, query, args...)
	if err != nil {
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

func (s *newsStore) GetByID(ctx context.Context, id string) (*models.NewsItem, error) {
	query, args, err := s.sb.Select(newsColumns...).From("news").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get news query: %w", err)
	}
	n := &models.NewsItem{}
	err = s.db.conn.QueryRowContext(ctx, query, args...).
		Scan(&n.ID, &n.Title, &n.Description, &n.Image, &n.Source, &n.PublishedAt, &n.Featured)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNewsItemNotFound
		}
		return nil, fmt.Errorf("error getting news item: %w", err)
	}
	return n, nil
}

func (s *newsStore) Add(ctx context.Context, item models.NewsItem) (*models.NewsItem, error) {
	item.ID = models.NewID(models.CollectionNews)
	if err := s.put(ctx, item, false); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *newsStore) Update(ctx context.Context, id string, patch models.NewsItemPatch) error {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNewsItemNotFound) {
			return nil
		}
		return err
	}
	patch.Apply(existing)
	return s.put(ctx, *existing, true)
}

func (s *newsStore) Set(ctx context.Context, item models.NewsItem) error {
	return s.put(ctx, item, true)
}

func (s *newsStore) Remove(ctx context.Context, id string) error {
	query, args, err := s.sb.Delete("news").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete news query: %w", err)
	}
	return exec(ctx, s.db, query, args)
}

func (s *newsStore) put(ctx context.Context, item models.NewsItem, replace bool) error {
	builder := s.sb.Insert("news").
		Columns(newsColumns...).
		Values(item.ID, item.Title, item.Description, item.Image, item.Source, item.PublishedAt, item.Featured)
	if replace {
		builder = builder.Options("OR REPLACE")
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build put news query: %w", err)
	}
	return exec(ctx, s.db, query, args)
}

type eventStore struct {
	db *DB
	sb squirrel.StatementBuilderType
}

var eventColumns = []string{"id", "title", "date", "day", "month", "location", "image", "time", "price", "description"}

func (s *eventStore) GetAll(ctx context.Context) ([]models.Event, error) {
	query, args, err := s.sb.Select(eventColumns...).From("events").OrderBy("date").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list events query: %w", err)
	}
	rows, err := s.db.conn.QueryContext(ctx, query, args...)
	if err != nil {
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

func (s *eventStore) GetByID(ctx context.Context, id string) (*models.Event, error) {
	query, args, err := s.sb.Select(eventColumns...).From("events").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get event query: %w", err)
	}
	e := &models.Event{}
	err = s.db.conn.QueryRowContext(ctx, query, args...).
		Scan(&e.ID, &e.Title, &e.Date, &e.Day, &e.Month, &e.Location, &e.Image, &e.Time, &e.Price, &e.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error getting event: %w", err)
	}
	return e, nil
}

func (s *eventStore) Add(ctx context.Context, event models.Event) (*models.Event, error) {
	event.ID = models.NewID(models.CollectionEvents)
	if err := s.put(ctx, event, false); err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *eventStore) Update(ctx context.Context, id string, patch models.EventPatch) error {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrEventNotFound) {
			return nil
		}
		return err
	}
	patch.Apply(existing)
	return s.put(ctx, *existing, true)
}

func (s *eventStore) Set(ctx context.Context, event models.Event) error {
	return s.put(ctx, event, true)
}

func (s *eventStore) Remove(ctx context.Context, id string) error {
	query, args, err := s.sb.Delete("events").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete event query: %w", err)
	}
	return exec(ctx, s.db, query, args)
}

func (s *eventStore) put(ctx context.Context, event models.Event, replace bool) error {
	builder := s.sb.Insert("events").
		Columns(eventColumns...).
		Values(event.ID, event.Title, event.Date, event.Day, event.Month, event.Location, event.Image, event.Time, event.Price, event.Description)
	if replace {
		builder = builder.Options("OR REPLACE")
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build put event query: %w", err)
	}
	return exec(ctx, s.db, query, args)
}

type jobStore struct {
	db *DB
	sb squirrel.StatementBuilderType
}

var jobColumns = []string{"id", "title", "deadline", "company", "image", "location", "type", "description", "responsibilities", "qualifications", "how_to_apply"}

func (s *jobStore) GetAll(ctx context.Context) ([]models.Job, error) {
	query, args, err := s.sb.Select(jobColumns...).From("jobs").OrderBy("deadline").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list jobs query: %w", err)
	}
	rows, err := s.db.conn.QueryContext(ctx, query, args...)
	if err != nil {
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

func (s *jobStore) GetByID(ctx context.Context, id string) (*models.Job, error) {
	query, args, err := s.sb.Select(jobColumns...).From("jobs").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get job query: %w", err)
	}
	j, err := scanJob(s.db.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("error getting job: %w", err)
	}
	return j, nil
}

func (s *jobStore) Add(ctx context.Context, job models.Job) (*models.Job, error) {
	job.ID = models.NewID(models.CollectionJobs)
	if err := s.put(ctx, job, false); err != nil {
		return nil, err
	}
	return &job, nil
}

func (s *jobStore) Update(ctx context.Context, id string, patch models.JobPatch) error {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrJobNotFound) {
			return nil
		}
		return err
	}
	patch.Apply(existing)
	return s.put(ctx, *existing, true)
}

func (s *jobStore) Set(ctx context.Context, job models.Job) error {
	return s.put(ctx, job, true)
}

func (s *jobStore) Remove(ctx context.Context, id string) error {
	query, args, err := s.sb.Delete("jobs").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete job query: %w", err)
	}
	return exec(ctx, s.db, query, args)
}

func (s *jobStore) put(ctx context.Context, job models.Job, replace bool) error {
	responsibilities, err := helpers.MarshalList(job.Responsibilities)
	if err != nil {
		return fmt.Errorf("failed to encode job responsibilities: %w", err)
	}
	qualifications, err := helpers.MarshalList(job.Qualifications)
	if err != nil {
		return fmt.Errorf("failed to encode job qualifications: %w", err)
	}
	builder := s.sb.Insert("jobs").
		Columns(jobColumns...).
		Values(job.ID, job.Title, job.Deadline, job.Company, job.Image, job.Location, job.Type, job.Description, responsibilities, qualifications, job.HowToApply)
	if replace {
		builder = builder.Options("OR REPLACE")
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build put job query: %w", err)
	}
	return exec(ctx, s.db, query, args)
}

func scanJob(row rowScanner) (*models.Job, error) {
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

type roommateStore struct {
	db *DB
	sb squirrel.StatementBuilderType
}

var roommateColumns = []string{
	"id", "name", "email", "phone", "university_id", "course", "year", "budget",
	"move_in_date", "lease_duration", "bio", "smoker", "drinking", "study_schedule",
	"cleanliness", "guest_frequency", "hobbies", "gender", "seeking_gender",
}

func (s *roommateStore) GetAll(ctx context.Context) ([]models.RoommateProfile, error) {
	query, args, err := s.sb.Select(roommateColumns...).From("roommates").OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list roommates query: %w", err)
	}
	rows, err := s.db.conn.QueryContext(ctx, query, args...)
	if err != nil {
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

func (s *roommateStore) GetByID(ctx context.Context, id string) (*models.RoommateProfile, error) {
	query, args, err := s.sb.Select(roommateColumns...).From("roommates").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get roommate query: %w", err)
	}
	p, err := scanRoommate(s.db.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrRoommateProfileNotFound
		}
		return nil, fmt.Errorf("error getting roommate profile: %w", err)
	}
	return p, nil
}

func (s *roommateStore) Add(ctx context.Context, profile models.RoommateProfile) (*models.RoommateProfile, error) {
	profile.ID = models.NewID(models.CollectionRoommates)
	if err := s.put(ctx, profile, false); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *roommateStore) Update(ctx context.Context, id string, patch models.RoommateProfilePatch) error {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrRoommateProfileNotFound) {
			return nil
		}
		return err
	}
	patch.Apply(existing)
	return s.put(ctx, *existing, true)
}

func (s *roommateStore) Set(ctx context.Context, profile models.RoommateProfile) error {
	return s.put(ctx, profile, true)
}

func (s *roommateStore) Remove(ctx context.Context, id string) error {
	query, args, err := s.sb.Delete("roommates").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete roommate query: %w", err)
	}
	return exec(ctx, s.db, query, args)
}

func (s *roommateStore) put(ctx context.Context, profile models.RoommateProfile, replace bool) error {
	hobbies, err := helpers.MarshalList(profile.Hobbies)
	if err != nil {
		return fmt.Errorf("failed to encode roommate hobbies: %w", err)
	}
	builder := s.sb.Insert("roommates").
		Columns(roommateColumns...).
		Values(profile.ID, profile.Name, profile.Email, profile.Phone, profile.UniversityID,
			profile.Course, profile.Year, profile.Budget, profile.MoveInDate, profile.LeaseDuration,
			profile.Bio, profile.Smoker, profile.Drinking, profile.StudySchedule, profile.Cleanliness,
			profile.GuestFrequency, hobbies, profile.Gender, profile.SeekingGender)
	if replace {
		builder = builder.Options("OR REPLACE")
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build put roommate query: %w", err)
	}
	return exec(ctx, s.db, query, args)
}

func scanRoommate(row rowScanner) (*models.RoommateProfile, error) {
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

type spotlightStore struct {
	db *DB
	sb squirrel.StatementBuilderType
}

var spotlightColumns = []string{"id", "name", "major", "bio", "image", "university_id", "gender", "votes", "interests"}

func (s *spotlightStore) GetAll(ctx context.Context) ([]models.SpotlightNominee, error) {
	query, args, err := s.sb.Select(spotlightColumns...).From("spotlight").OrderBy("votes DESC", "id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list nominees query: %w", err)
	}
	rows, err := s.db.conn.QueryContext(ctx, query, args...)
	if err != nil {
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

func (s *spotlightStore) GetByID(ctx context.Context, id string) (*models.SpotlightNominee, error) {
	query, args, err := s.sb.Select(spotlightColumns...).From("spotlight").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get nominee query: %w", err)
	}
	n, err := scanNominee(s.db.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNomineeNotFound
		}
		return nil, fmt.Errorf("error getting nominee: %w", err)
	}
	return n, nil
}

func (s *spotlightStore) Add(ctx context.Context, nominee models.SpotlightNominee) (*models.SpotlightNominee, error) {
	nominee.ID = models.NewID(models.CollectionSpotlight)
	if err := s.put(ctx, nominee, false); err != nil {
		return nil, err
	}
	return &nominee, nil
}

func (s *spotlightStore) Update(ctx context.Context, id string, patch models.SpotlightNomineePatch) error {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNomineeNotFound) {
			return nil
		}
		return err
	}
	patch.Apply(existing)
	return s.put(ctx, *existing, true)
}

func (s *spotlightStore) Set(ctx context.Context, nominee models.SpotlightNominee) error {
	return s.put(ctx, nominee, true)
}

func (s *spotlightStore) Remove(ctx context.Context, id string) error {
	query, args, err := s.sb.Delete("spotlight").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete nominee query: %w", err)
	}
	return exec(ctx, s.db, query, args)
}

func (s *spotlightStore) Vote(ctx context.Context, id string) (int, error) {
	var votes int
	err := s.db.conn.QueryRowContext(ctx,
		"UPDATE spotlight SET votes = votes + 1 WHERE id = ? RETURNING votes", id).Scan(&votes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, apperrors.ErrNomineeNotFound
		}
		return 0, fmt.Errorf("error recording vote: %w", err)
	}
	if err := s.db.Save(ctx); err != nil {
		logger.Error().Err(err).Msg("Failed to persist embedded database snapshot")
		return 0, err
	}
	return votes, nil
}

func (s *spotlightStore) put(ctx context.Context, nominee models.SpotlightNominee, replace bool) error {
	interests, err := helpers.MarshalList(nominee.Interests)
	if err != nil {
		return fmt.Errorf("failed to encode nominee interests: %w", err)
	}
	builder := s.sb.Insert("spotlight").
		Columns(spotlightColumns...).
		Values(nominee.ID, nominee.Name, nominee.Major, nominee.Bio, nominee.Image, nominee.UniversityID, nominee.Gender, nominee.Votes, interests)
	if replace {
		builder = builder.Options("OR REPLACE")
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build put nominee query: %w", err)
	}
	return exec(ctx, s.db, query, args)
}

func scanNominee(row rowScanner) (*models.SpotlightNominee, error) {
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
