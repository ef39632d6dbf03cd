package repositories

import (
	"context"

	"github.com/campuslink/campuslink/internal/app/models"
)

// The store interfaces below are implemented by every persistence backend
// (postgres, the embedded local database, and the in-memory mock store).
// Exactly one backend serves a running process, selected by configuration.
//
// Semantics shared by all implementations:
//   - GetAll returns a snapshot; mutating the result does not affect the store.
//   - Add assigns the record id; caller-provided ids are ignored.
//   - Update merges the patch into the existing record and is a no-op
//     (not an error) when the id is absent.
//   - Set replaces-or-inserts by id.
//   - Remove is a no-op when the id is absent.

// HostelStore persists hostel listings
type HostelStore interface {
	GetAll(ctx context.Context) ([]models.Hostel, error)
	GetByID(ctx context.Context, id string) (*models.Hostel, error)
	Add(ctx context.Context, hostel models.Hostel) (*models.Hostel, error)
	Update(ctx context.Context, id string, patch models.HostelPatch) error
	Set(ctx context.Context, hostel models.Hostel) error
	Remove(ctx context.Context, id string) error
}

// NewsStore persists news feed items
type NewsStore interface {
	GetAll(ctx context.Context) ([]models.NewsItem, error)
	GetByID(ctx context.Context, id string) (*models.NewsItem, error)
	Add(ctx context.Context, item models.NewsItem) (*models.NewsItem, error)
	Update(ctx context.Context, id string, patch models.NewsItemPatch) error
	Set(ctx context.Context, item models.NewsItem) error
	Remove(ctx context.Context, id string) error
}

// EventStore persists event listings
type EventStore interface {
	GetAll(ctx context.Context) ([]models.Event, error)
	GetByID(ctx context.Context, id string) (*models.Event, error)
	Add(ctx context.Context, event models.Event) (*models.Event, error)
	Update(ctx context.Context, id string, patch models.EventPatch) error
	Set(ctx context.Context, event models.Event) error
	Remove(ctx context.Context, id string) error
}

// JobStore persists job postings
type JobStore interface {
	GetAll(ctx context.Context) ([]models.Job, error)
	GetByID(ctx context.Context, id string) (*models.Job, error)
	Add(ctx context.Context, job models.Job) (*models.Job, error)
	Update(ctx context.Context, id string, patch models.JobPatch) error
	Set(ctx context.Context, job models.Job) error
	Remove(ctx context.Context, id string) error
}

// RoommateStore persists roommate-matching profiles
type RoommateStore interface {
	GetAll(ctx context.Context) ([]models.RoommateProfile, error)
	GetByID(ctx context.Context, id string) (*models.RoommateProfile, error)
	Add(ctx context.Context, profile models.RoommateProfile) (*models.RoommateProfile, error)
	Update(ctx context.Context, id string, patch models.RoommateProfilePatch) error
	Set(ctx context.Context, profile models.RoommateProfile) error
	Remove(ctx context.Context, id string) error
}

// SpotlightStore persists student-spotlight nominees
type SpotlightStore interface {
	GetAll(ctx context.Context) ([]models.SpotlightNominee, error)
	GetByID(ctx context.Context, id string) (*models.SpotlightNominee, error)
	Add(ctx context.Context, nominee models.SpotlightNominee) (*models.SpotlightNominee, error)
	Update(ctx context.Context, id string, patch models.SpotlightNomineePatch) error
	Set(ctx context.Context, nominee models.SpotlightNominee) error
	Remove(ctx context.Context, id string) error
	// Vote increments the nominee's vote count and returns the new total.
	Vote(ctx context.Context, id string) (int, error)
}

// Stores bundles one store per persisted collection
type Stores struct {
	Hostels   HostelStore
	News      NewsStore
	Events    EventStore
	Jobs      JobStore
	Roommates RoommateStore
	Spotlight SpotlightStore
}
