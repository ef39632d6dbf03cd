package localdb

import (
	"context"
	"fmt"

	"github.com/campuslink/campuslink/internal/fixtures"
	"github.com/campuslink/campuslink/internal/pkg/helpers"
)

// List-valued fields are stored as JSON text, matching the postgres layout.
const schema = `
CREATE TABLE IF NOT EXISTS hostels (
	id            TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	location      TEXT NOT NULL DEFAULT '',
	price_range   TEXT NOT NULL DEFAULT '',
	images        TEXT NOT NULL DEFAULT '',
	rating        REAL NOT NULL DEFAULT 0,
	university_id TEXT NOT NULL DEFAULT '',
	amenities     TEXT NOT NULL DEFAULT '',
	recommended   INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS news (
	id           TEXT PRIMARY KEY,
	title        TEXT NOT NULL,
	description  TEXT NOT NULL DEFAULT '',
	image        TEXT NOT NULL DEFAULT '',
	source       TEXT NOT NULL DEFAULT '',
	published_at TIMESTAMP NOT NULL,
	featured     INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS events (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	date        TEXT NOT NULL DEFAULT '',
	day         TEXT NOT NULL DEFAULT '',
	month       TEXT NOT NULL DEFAULT '',
	location    TEXT NOT NULL DEFAULT '',
	image       TEXT NOT NULL DEFAULT '',
	time        TEXT NOT NULL DEFAULT '',
	price       TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS jobs (
	id               TEXT PRIMARY KEY,
	title            TEXT NOT NULL,
	deadline         TEXT NOT NULL DEFAULT '',
	company          TEXT NOT NULL DEFAULT '',
	image            TEXT NOT NULL DEFAULT '',
	location         TEXT NOT NULL DEFAULT '',
	type             TEXT NOT NULL DEFAULT '',
	description      TEXT NOT NULL DEFAULT '',
	responsibilities TEXT NOT NULL DEFAULT '',
	qualifications   TEXT NOT NULL DEFAULT '',
	how_to_apply     TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS roommates (
	id              TEXT PRIMARY KEY,
	name            TEXT NOT NULL,
	email           TEXT NOT NULL DEFAULT '',
	phone           TEXT NOT NULL DEFAULT '',
	university_id   TEXT NOT NULL DEFAULT '',
	course          TEXT NOT NULL DEFAULT '',
	year            TEXT NOT NULL DEFAULT '',
	budget          TEXT NOT NULL DEFAULT '',
	move_in_date    TEXT NOT NULL DEFAULT '',
	lease_duration  TEXT NOT NULL DEFAULT '',
	bio             TEXT NOT NULL DEFAULT '',
	smoker          INTEGER NOT NULL DEFAULT 0,
	drinking        TEXT NOT NULL DEFAULT '',
	study_schedule  TEXT NOT NULL DEFAULT '',
	cleanliness     TEXT NOT NULL DEFAULT '',
	guest_frequency TEXT NOT NULL DEFAULT '',
	hobbies         TEXT NOT NULL DEFAULT '',
	gender          TEXT NOT NULL DEFAULT '',
	seeking_gender  TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS spotlight (
	id            TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	major         TEXT NOT NULL DEFAULT '',
	bio           TEXT NOT NULL DEFAULT '',
	image         TEXT NOT NULL DEFAULT '',
	university_id TEXT NOT NULL DEFAULT '',
	gender        TEXT NOT NULL DEFAULT '',
	votes         INTEGER NOT NULL DEFAULT 0,
	interests     TEXT NOT NULL DEFAULT ''
);
`

// bootstrap applies the schema, loads the compiled-in seed data and writes
// the first snapshot so a restart never re-seeds.
func (db *DB) bootstrap(ctx context.Context) error {
	if _, err := db.conn.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply embedded schema: %w", err)
	}
	if err := db.seed(ctx); err != nil {
		return err
	}
	return db.Save(ctx)
}

func (db *DB) seed(ctx context.Context) error {
	for _, h := range fixtures.Hostels() {
		images, err := helpers.MarshalList(h.Images)
		if err != nil {
			return fmt.Errorf("failed to encode hostel images: %w", err)
		}
		amenities, err := helpers.MarshalList(h.Amenities)
		if err != nil {
			return fmt.Errorf("failed to encode hostel amenities: %w", err)
		}
		if _, err := db.conn.ExecContext(ctx,
			`INSERT INTO hostels (id, name, location, price_range, images, rating, university_id, amenities, recommended)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			h.ID, h.Name, h.Location, h.PriceRange, images, h.Rating, h.UniversityID, amenities, h.Recommended); err != nil {
			return fmt.Errorf("failed to seed hostels: %w", err)
		}
	}

	for _, n := range fixtures.News() {
		if _, err := db.conn.ExecContext(ctx,
			`INSERT INTO news (id, title, description, image, source, published_at, featured)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			n.ID, n.Title, n.Description, n.Image, n.Source, n.PublishedAt, n.Featured); err != nil {
			return fmt.Errorf("failed to seed news: %w", err)
		}
	}

	for _, e := range fixtures.Events() {
		if _, err := db.conn.ExecContext(ctx,
			`INSERT INTO events (id, title, date, day, month, location, image, time, price, description)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID, e.Title, e.Date, e.Day, e.Month, e.Location, e.Image, e.Time, e.Price, e.Description); err != nil {
			return fmt.Errorf("failed to seed events: %w", err)
		}
	}

	for _, j := range fixtures.Jobs() {
		responsibilities, err := helpers.MarshalList(j.Responsibilities)
		if err != nil {
			return fmt.Errorf("failed to encode job responsibilities: %w", err)
		}
		qualifications, err := helpers.MarshalList(j.Qualifications)
		if err != nil {
			return fmt.Errorf("failed to encode job qualifications: %w", err)
		}
		if _, err := db.conn.ExecContext(ctx,
			`INSERT INTO jobs (id, title, deadline, company, image, location, type, description, responsibilities, qualifications, how_to_apply)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			j.ID, j.Title, j.Deadline, j.Company, j.Image, j.Location, j.Type, j.Description, responsibilities, qualifications, j.HowToApply); err != nil {
			return fmt.Errorf("failed to seed jobs: %w", err)
		}
	}

	for _, p := range fixtures.Roommates() {
		hobbies, err := helpers.MarshalList(p.Hobbies)
		if err != nil {
			return fmt.Errorf("failed to encode roommate hobbies: %w", err)
		}
		if _, err := db.conn.ExecContext(ctx,
			`INSERT INTO roommates (id, name, email, phone, university_id, course, year, budget, move_in_date, lease_duration, bio, smoker, drinking, study_schedule, cleanliness, guest_frequency, hobbies, gender, seeking_gender)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, p.Name, p.Email, p.Phone, p.UniversityID, p.Course, p.Year, p.Budget,
			p.MoveInDate, p.LeaseDuration, p.Bio, p.Smoker, p.Drinking, p.StudySchedule,
			p.Cleanliness, p.GuestFrequency, hobbies, p.Gender, p.SeekingGender); err != nil {
			return fmt.Errorf("failed to seed roommates: %w", err)
		}
	}

	for _, n := range fixtures.Spotlight() {
		interests, err := helpers.MarshalList(n.Interests)
		if err != nil {
			return fmt.Errorf("failed to encode nominee interests: %w", err)
		}
		if _, err := db.conn.ExecContext(ctx,
			`INSERT INTO spotlight (id, name, major, bio, image, university_id, gender, votes, interests)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			n.ID, n.Name, n.Major, n.Bio, n.Image, n.UniversityID, n.Gender, n.Votes, interests); err != nil {
			return fmt.Errorf("failed to seed spotlight: %w", err)
		}
	}

	return nil
}
