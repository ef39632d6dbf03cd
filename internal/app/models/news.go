package models

import "time"

// NewsItem represents an entry in the campus news feed
type NewsItem struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Image       string    `json:"image" db:"image"`
	Source      string    `json:"source" db:"source"`
	PublishedAt time.Time `json:"publishedAt" db:"published_at"`
	Featured    bool      `json:"featured" db:"featured"`
}

// NewsItemPatch carries a partial news update; nil fields are left unchanged
type NewsItemPatch struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Image       *string    `json:"image"`
	Source      *string    `json:"source"`
	PublishedAt *time.Time `json:"publishedAt"`
	Featured    *bool      `json:"featured"`
}

// Apply merges the patch into n
func (p NewsItemPatch) Apply(n *NewsItem) {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Description != nil {
		n.Description = *p.Description
	}
	if p.Image != nil {
		n.Image = *p.Image
	}
	if p.Source != nil {
		n.Source = *p.Source
	}
	if p.PublishedAt != nil {
		n.PublishedAt = *p.PublishedAt
	}
	if p.Featured != nil {
		n.Featured = *p.Featured
	}
}
