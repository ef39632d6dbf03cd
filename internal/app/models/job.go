package models

// Job represents a student job posting
type Job struct {
	ID               string   `json:"id" db:"id"`
	Title            string   `json:"title" db:"title"`
	Deadline         string   `json:"deadline" db:"deadline"`
	Company          string   `json:"company" db:"company"`
	Image            string   `json:"image" db:"image"`
	Location         string   `json:"location" db:"location"`
	Type             string   `json:"type" db:"type"`
	Description      string   `json:"description" db:"description"`
	Responsibilities []string `json:"responsibilities" db:"responsibilities"`
	Qualifications   []string `json:"qualifications" db:"qualifications"`
	HowToApply       string   `json:"howToApply" db:"how_to_apply"`
}

// JobPatch carries a partial job update; nil fields are left unchanged
type JobPatch struct {
	Title            *string   `json:"title"`
	Deadline         *string   `json:"deadline"`
	Company          *string   `json:"company"`
	Image            *string   `json:"image"`
	Location         *string   `json:"location"`
	Type             *string   `json:"type"`
	Description      *string   `json:"description"`
	Responsibilities *[]string `json:"responsibilities"`
	Qualifications   *[]string `json:"qualifications"`
	HowToApply       *string   `json:"howToApply"`
}

// Apply merges the patch into j
func (p JobPatch) Apply(j *Job) {
	if p.Title != nil {
		j.Title = *p.Title
	}
	if p.Deadline != nil {
		j.Deadline = *p.Deadline
	}
	if p.Company != nil {
		j.Company = *p.Company
	}
	if p.Image != nil {
		j.Image = *p.Image
	}
	if p.Location != nil {
		j.Location = *p.Location
	}
	if p.Type != nil {
		j.Type = *p.Type
	}
	if p.Description != nil {
		j.Description = *p.Description
	}
	if p.Responsibilities != nil {
		j.Responsibilities = *p.Responsibilities
	}
	if p.Qualifications != nil {
		j.Qualifications = *p.Qualifications
	}
	if p.HowToApply != nil {
		j.HowToApply = *p.HowToApply
	}
}
