package models

// Amenity is a named amenity offered by a hostel
type Amenity struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Hostel represents a hostel/housing listing
type Hostel struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Location     string    `json:"location" db:"location"`
	PriceRange   string    `json:"priceRange" db:"price_range"`
	Images       []string  `json:"images" db:"images"`
	Rating       float64   `json:"rating" db:"rating"`
	UniversityID string    `json:"universityId" db:"university_id"`
	Amenities    []Amenity `json:"amenities" db:"amenities"`
	Recommended  bool      `json:"recommended" db:"recommended"`
}

// HostelPatch carries a partial hostel update; nil fields are left unchanged
type HostelPatch struct {
	Name         *string    `json:"name"`
	Location     *string    `json:"location"`
	PriceRange   *string    `json:"priceRange"`
	Images       *[]string  `json:"images"`
	Rating       *float64   `json:"rating"`
	UniversityID *string    `json:"universityId"`
	Amenities    *[]Amenity `json:"amenities"`
	Recommended  *bool      `json:"recommended"`
}

// Apply merges the patch into h
func (p HostelPatch) Apply(h *Hostel) {
	if p.Name != nil {
		h.Name = *p.Name
	}
	if p.Location != nil {
		h.Location = *p.Location
	}
	if p.PriceRange != nil {
		h.PriceRange = *p.PriceRange
	}
	if p.Images != nil {
		h.Images = *p.Images
	}
	if p.Rating != nil {
		h.Rating = *p.Rating
	}
	if p.UniversityID != nil {
		h.UniversityID = *p.UniversityID
	}
	if p.Amenities != nil {
		h.Amenities = *p.Amenities
	}
	if p.Recommended != nil {
		h.Recommended = *p.Recommended
	}
}
