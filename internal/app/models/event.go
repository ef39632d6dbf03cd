package models

// Event represents a campus event listing
type Event struct {
	ID          string `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Date        string `json:"date" db:"date"`
	Day         string `json:"day" db:"day"`
	Month       string `json:"month" db:"month"`
	Location    string `json:"location" db:"location"`
	Image       string `json:"image" db:"image"`
	Time        string `json:"time" db:"time"`
	Price       string `json:"price" db:"price"`
	Description string `json:"description" db:"description"`
}

// EventPatch carries a partial event update; nil fields are left unchanged
type EventPatch struct {
	Title       *string `json:"title"`
	Date        *string `json:"date"`
	Day         *string `json:"day"`
	Month       *string `json:"month"`
	Location    *string `json:"location"`
	Image       *string `json:"image"`
	Time        *string `json:"time"`
	Price       *string `json:"price"`
	Description *string `json:"description"`
}

// Apply merges the patch into e
func (p EventPatch) Apply(e *Event) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Day != nil {
		e.Day = *p.Day
	}
	if p.Month != nil {
		e.Month = *p.Month
	}
	if p.Location != nil {
		e.Location = *p.Location
	}
	if p.Image != nil {
		e.Image = *p.Image
	}
	if p.Time != nil {
		e.Time = *p.Time
	}
	if p.Price != nil {
		e.Price = *p.Price
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
}
