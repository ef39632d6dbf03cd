package models

// Service represents an entry in the static service catalog (food,
// transport, shopping, ...). Services are compiled-in and never persisted.
type Service struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// ServiceProvider represents a university-affiliated provider of a service.
// Providers are catalog entries keyed by (university name, service id).
type ServiceProvider struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Rating       float64 `json:"rating"`
	ReviewCount  int     `json:"reviewCount"`
	Contact      string  `json:"contact"`
	Availability string  `json:"availability"`
	Icon         string  `json:"icon"`
	Location     string  `json:"location"`
}
