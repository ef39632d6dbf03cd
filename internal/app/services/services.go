package services

import (
	"github.com/campuslink/campuslink/internal/app/repositories"
	"github.com/campuslink/campuslink/internal/cache"
	"github.com/campuslink/campuslink/internal/pkg/objectstore"
)

// Services bundles every domain service behind one container.
type Services struct {
	Hostels   HostelService
	News      NewsService
	Events    EventService
	Jobs      JobService
	Roommates RoommateService
	Spotlight SpotlightService
	Catalog   CatalogService
	Uploads   *objectstore.Service
}

// New wires the service layer against the selected persistence backend.
func New(stores *repositories.Stores, uploads *objectstore.Service, c cache.Cache) *Services {
	return &Services{
		Hostels:   NewHostelService(stores.Hostels, c),
		News:      NewNewsService(stores.News, c),
		Events:    NewEventService(stores.Events),
		Jobs:      NewJobService(stores.Jobs),
		Roommates: NewRoommateService(stores.Roommates),
		Spotlight: NewSpotlightService(stores.Spotlight, uploads),
		Catalog:   NewCatalogService(),
		Uploads:   uploads,
	}
}
