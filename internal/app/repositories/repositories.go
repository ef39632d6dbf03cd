package repositories

import "github.com/jackc/pgx/v5/pgxpool"

// NewPostgresStores wires every entity repository against the shared pool.
func NewPostgresStores(db *pgxpool.Pool) *Stores {
	return &Stores{
		Hostels:   NewHostelRepository(db),
		News:      NewNewsRepository(db),
		Events:    NewEventRepository(db),
		Jobs:      NewJobRepository(db),
		Roommates: NewRoommateRepository(db),
		Spotlight: NewSpotlightRepository(db),
	}
}
