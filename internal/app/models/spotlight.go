package models

// SpotlightNominee represents a student-spotlight nominee. Nominees are
// constructed at submission time from the nomination form input.
type SpotlightNominee struct {
	ID           string   `json:"id" db:"id"`
	Name         string   `json:"name" db:"name"`
	Major        string   `json:"major" db:"major"`
	Bio          string   `json:"bio" db:"bio"`
	Image        string   `json:"image" db:"image"`
	UniversityID string   `json:"universityId" db:"university_id"`
	Gender       string   `json:"gender" db:"gender"`
	Votes        int      `json:"votes" db:"votes"`
	Interests    []string `json:"interests" db:"interests"`
}

// SpotlightNomineePatch carries a partial nominee update; nil fields are left unchanged
type SpotlightNomineePatch struct {
	Name         *string   `json:"name"`
	Major        *string   `json:"major"`
	Bio          *string   `json:"bio"`
	Image        *string   `json:"image"`
	UniversityID *string   `json:"universityId"`
	Gender       *string   `json:"gender"`
	Votes        *int      `json:"votes"`
	Interests    *[]string `json:"interests"`
}

// Apply merges the patch into n
func (p SpotlightNomineePatch) Apply(n *SpotlightNominee) {
	if p.Name != nil {
		n.Name = *p.Name
	}
	if p.Major != nil {
		n.Major = *p.Major
	}
	if p.Bio != nil {
		n.Bio = *p.Bio
	}
	if p.Image != nil {
		n.Image = *p.Image
	}
	if p.UniversityID != nil {
		n.UniversityID = *p.UniversityID
	}
	if p.Gender != nil {
		n.Gender = *p.Gender
	}
	if p.Votes != nil {
		n.Votes = *p.Votes
	}
	if p.Interests != nil {
		n.Interests = *p.Interests
	}
}
