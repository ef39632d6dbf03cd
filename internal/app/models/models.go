package models

// Collection names used for id generation and table naming across all
// persistence backends.
const (
	CollectionHostels   = "hostels"
	CollectionNews      = "news"
	CollectionEvents    = "events"
	CollectionJobs      = "jobs"
	CollectionRoommates = "roommates"
	CollectionSpotlight = "spotlight"
)
