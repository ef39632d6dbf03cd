package mockstore

import (
	"context"

	"github.com/campuslink/campuslink/internal/app/models"
	"github.com/campuslink/campuslink/internal/app/repositories"
	"github.com/campuslink/campuslink/internal/fixtures"
	"github.com/campuslink/campuslink/internal/pkg/apperrors"
)

// Store bundles one mock collection per persisted entity and satisfies the
// repositories store interfaces through thin per-entity adapters.
type Store struct {
	hostels   *Collection[models.Hostel]
	news      *Collection[models.NewsItem]
	events    *Collection[models.Event]
	jobs      *Collection[models.Job]
	roommates *Collection[models.RoommateProfile]
	spotlight *Collection[models.SpotlightNominee]
}

// New creates an empty mock store.
func New(opts Options) *Store {
	return &Store{
		hostels: NewCollection(models.CollectionHostels,
			func(h models.Hostel) string { return h.ID },
			func(h *models.Hostel, id string) { h.ID = id },
			cloneHostel,
			func() string { return models.NewID(models.CollectionHostels) },
			opts),
		news: NewCollection(models.CollectionNews,
			func(n models.NewsItem) string { return n.ID },
			func(n *models.NewsItem, id string) { n.ID = id },
			func(n models.NewsItem) models.NewsItem { return n },
			func() string { return models.NewID(models.CollectionNews) },
			opts),
		events: NewCollection(models.CollectionEvents,
			func(e models.Event) string { return e.ID },
			func(e *models.Event, id string) { e.ID = id },
			func(e models.Event) models.Event { return e },
			func() string { return models.NewID(models.CollectionEvents) },
			opts),
		jobs: NewCollection(models.CollectionJobs,
			func(j models.Job) string { return j.ID },
			func(j *models.Job, id string) { j.ID = id },
			cloneJob,
			func() string { return models.NewID(models.CollectionJobs) },
			opts),
		roommates: NewCollection(models.CollectionRoommates,
			func(r models.RoommateProfile) string { return r.ID },
			func(r *models.RoommateProfile, id string) { r.ID = id },
			cloneRoommate,
			func() string { return models.NewID(models.CollectionRoommates) },
			opts),
		spotlight: NewCollection(models.CollectionSpotlight,
			func(n models.SpotlightNominee) string { return n.ID },
			func(n *models.SpotlightNominee, id string) { n.ID = id },
			cloneNominee,
			func() string { return models.NewID(models.CollectionSpotlight) },
			opts),
	}
}

// SeedFixtures loads the compiled-in fixture data into every collection.
func (s *Store) SeedFixtures() {
	s.hostels.Seed(fixtures.Hostels())
	s.news.Seed(fixtures.News())
	s.events.Seed(fixtures.Events())
	s.jobs.Seed(fixtures.Jobs())
	s.roommates.Seed(fixtures.Roommates())
	s.spotlight.Seed(fixtures.Spotlight())
}

// Stores exposes the collections behind the backend-neutral interfaces.
func (s *Store) Stores() *repositories.Stores {
	return &repositories.Stores{
		Hostels:   hostelAdapter{s.hostels},
		News:      newsAdapter{s.news},
		Events:    eventAdapter{s.events},
		Jobs:      jobAdapter{s.jobs},
		Roommates: roommateAdapter{s.roommates},
		Spotlight: spotlightAdapter{s.spotlight},
	}
}

func cloneHostel(h models.Hostel) models.Hostel {
	h.Images = append([]string(nil), h.Images...)
	h.Amenities = append([]models.Amenity(nil), h.Amenities...)
	return h
}

func cloneJob(j models.Job) models.Job {
	j.Responsibilities = append([]string(nil), j.Responsibilities...)
	j.Qualifications = append([]string(nil), j.Qualifications...)
	return j
}

func cloneRoommate(r models.RoommateProfile) models.RoommateProfile {
	r.Hobbies = append([]string(nil), r.Hobbies...)
	return r
}

func cloneNominee(n models.SpotlightNominee) models.SpotlightNominee {
	n.Interests = append([]string(nil), n.Interests...)
	return n
}

type hostelAdapter struct{ c *Collection[models.Hostel] }

func (a hostelAdapter) GetAll(ctx context.Context) ([]models.Hostel, error) {
	return a.c.GetAll(ctx)
}

func (a hostelAdapter) GetByID(ctx context.Context, id string) (*models.Hostel, error) {
	h, ok, err := a.c.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrHostelNotFound
	}
	return &h, nil
}

func (a hostelAdapter) Add(ctx context.Context, hostel models.Hostel) (*models.Hostel, error) {
	stored, err := a.c.Add(ctx, hostel)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (a hostelAdapter) Update(ctx context.Context, id string, patch models.HostelPatch) error {
	return a.c.Update(ctx, id, func(h *models.Hostel) { patch.Apply(h) })
}

func (a hostelAdapter) Set(ctx context.Context, hostel models.Hostel) error {
	return a.c.Set(ctx, hostel)
}

func (a hostelAdapter) Remove(ctx context.Context, id string) error {
	return a.c.Remove(ctx, id)
}

type newsAdapter struct{ c *Collection[models.NewsItem] }

func (a newsAdapter) GetAll(ctx context.Context) ([]models.NewsItem, error) {
	return a.c.GetAll(ctx)
}

func (a newsAdapter) GetByID(ctx context.Context, id string) (*models.NewsItem, error) {
	n, ok, err := a.c.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrNewsItemNotFound
	}
	return &n, nil
}

func (a newsAdapter) Add(ctx context.Context, item models.NewsItem) (*models.NewsItem, error) {
	stored, err := a.c.Add(ctx, item)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (a newsAdapter) Update(ctx context.Context, id string, patch models.NewsItemPatch) error {
	return a.c.Update(ctx, id, func(n *models.NewsItem) { patch.Apply(n) })
}

func (a newsAdapter) Set(ctx context.Context, item models.NewsItem) error {
	return a.c.Set(ctx, item)
}

func (a newsAdapter) Remove(ctx context.Context, id string) error {
	return a.c.Remove(ctx, id)
}

type eventAdapter struct{ c *Collection[models.Event] }

func (a eventAdapter) GetAll(ctx context.Context) ([]models.Event, error) {
	return a.c.GetAll(ctx)
}

func (a eventAdapter) GetByID(ctx context.Context, id string) (*models.Event, error) {
	e, ok, err := a.c.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrEventNotFound
	}
	return &e, nil
}

func (a eventAdapter) Add(ctx context.Context, event models.Event) (*models.Event, error) {
	stored, err := a.c.Add(ctx, event)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (a eventAdapter) Update(ctx context.Context, id string, patch models.EventPatch) error {
	return a.c.Update(ctx, id, func(e *models.Event) { patch.Apply(e) })
}

func (a eventAdapter) Set(ctx context.Context, event models.Event) error {
	return a.c.Set(ctx, event)
}

func (a eventAdapter) Remove(ctx context.Context, id string) error {
	return a.c.Remove(ctx, id)
}

type jobAdapter struct{ c *Collection[models.Job] }

func (a jobAdapter) GetAll(ctx context.Context) ([]models.Job, error) {
	return a.c.GetAll(ctx)
}

func (a jobAdapter) GetByID(ctx context.Context, id string) (*models.Job, error) {
	j, ok, err := a.c.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrJobNotFound
	}
	return &j, nil
}

func (a jobAdapter) Add(ctx context.Context, job models.Job) (*models.Job, error) {
	stored, err := a.c.Add(ctx, job)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (a jobAdapter) Update(ctx context.Context, id string, patch models.JobPatch) error {
	return a.c.Update(ctx, id, func(j *models.Job) { patch.Apply(j) })
}

func (a jobAdapter) Set(ctx context.Context, job models.Job) error {
	return a.c.Set(ctx, job)
}

func (a jobAdapter) Remove(ctx context.Context, id string) error {
	return a.c.Remove(ctx, id)
}

type roommateAdapter struct{ c *Collection[models.RoommateProfile] }

func (a roommateAdapter) GetAll(ctx context.Context) ([]models.RoommateProfile, error) {
	return a.c.GetAll(ctx)
}

func (a roommateAdapter) GetByID(ctx context.Context, id string) (*models.RoommateProfile, error) {
	r, ok, err := a.c.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrRoommateProfileNotFound
	}
	return &r, nil
}

func (a roommateAdapter) Add(ctx context.Context, profile models.RoommateProfile) (*models.RoommateProfile, error) {
	stored, err := a.c.Add(ctx, profile)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (a roommateAdapter) Update(ctx context.Context, id string, patch models.RoommateProfilePatch) error {
	return a.c.Update(ctx, id, func(r *models.RoommateProfile) { patch.Apply(r) })
}

func (a roommateAdapter) Set(ctx context.Context, profile models.RoommateProfile) error {
	return a.c.Set(ctx, profile)
}

func (a roommateAdapter) Remove(ctx context.Context, id string) error {
	return a.c.Remove(ctx, id)
}

type spotlightAdapter struct{ c *Collection[models.SpotlightNominee] }

func (a spotlightAdapter) GetAll(ctx context.Context) ([]models.SpotlightNominee, error) {
	return a.c.GetAll(ctx)
}

func (a spotlightAdapter) GetByID(ctx context.Context, id string) (*models.SpotlightNominee, error) {
	n, ok, err := a.c.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrNomineeNotFound
	}
	return &n, nil
}

func (a spotlightAdapter) Add(ctx context.Context, nominee models.SpotlightNominee) (*models.SpotlightNominee, error) {
	stored, err := a.c.Add(ctx, nominee)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (a spotlightAdapter) Update(ctx context.Context, id string, patch models.SpotlightNomineePatch) error {
	return a.c.Update(ctx, id, func(n *models.SpotlightNominee) { patch.Apply(n) })
}

func (a spotlightAdapter) Set(ctx context.Context, nominee models.SpotlightNominee) error {
	return a.c.Set(ctx, nominee)
}

func (a spotlightAdapter) Remove(ctx context.Context, id string) error {
	return a.c.Remove(ctx, id)
}

func (a spotlightAdapter) Vote(ctx context.Context, id string) (int, error) {
	votes := -1
	err := a.c.Update(ctx, id, func(n *models.SpotlightNominee) {
		n.Votes++
		votes = n.Votes
	})
	if err != nil {
		return 0, err
	}
	if votes < 0 {
		return 0, apperrors.ErrNomineeNotFound
	}
	return votes, nil
}
