package models

// RoommateProfile represents an entry in the roommate-matching directory
type RoommateProfile struct {
	ID             string   `json:"id" db:"id"`
	Name           string   `json:"name" db:"name"`
	Email          string   `json:"email" db:"email"`
	Phone          string   `json:"phone" db:"phone"`
	UniversityID   string   `json:"universityId" db:"university_id"`
	Course         string   `json:"course" db:"course"`
	Year           string   `json:"year" db:"year"`
	Budget         string   `json:"budget" db:"budget"`
	MoveInDate     string   `json:"moveInDate" db:"move_in_date"`
	LeaseDuration  string   `json:"leaseDuration" db:"lease_duration"`
	Bio            string   `json:"bio" db:"bio"`
	Smoker         bool     `json:"smoker" db:"smoker"`
	Drinking       string   `json:"drinking" db:"drinking"`
	StudySchedule  string   `json:"studySchedule" db:"study_schedule"`
	Cleanliness    string   `json:"cleanliness" db:"cleanliness"`
	GuestFrequency string   `json:"guestFrequency" db:"guest_frequency"`
	Hobbies        []string `json:"hobbies" db:"hobbies"`
	Gender         string   `json:"gender" db:"gender"`
	SeekingGender  string   `json:"seekingGender" db:"seeking_gender"`
}

// RoommateProfilePatch carries a partial profile update; nil fields are left unchanged
type RoommateProfilePatch struct {
	Name           *string   `json:"name"`
	Email          *string   `json:"email"`
	Phone          *string   `json:"phone"`
	UniversityID   *string   `json:"universityId"`
	Course         *string   `json:"course"`
	Year           *string   `json:"year"`
	Budget         *string   `json:"budget"`
	MoveInDate     *string   `json:"moveInDate"`
	LeaseDuration  *string   `json:"leaseDuration"`
	Bio            *string   `json:"bio"`
	Smoker         *bool     `json:"smoker"`
	Drinking       *string   `json:"drinking"`
	StudySchedule  *string   `json:"studySchedule"`
	Cleanliness    *string   `json:"cleanliness"`
	GuestFrequency *string   `json:"guestFrequency"`
	Hobbies        *[]string `json:"hobbies"`
	Gender         *string   `json:"gender"`
	SeekingGender  *string   `json:"seekingGender"`
}

// Apply merges the patch into r
func (p RoommateProfilePatch) Apply(r *RoommateProfile) {
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Email != nil {
		r.Email = *p.Email
	}
	if p.Phone != nil {
		r.Phone = *p.Phone
	}
	if p.UniversityID != nil {
		r.UniversityID = *p.UniversityID
	}
	if p.Course != nil {
		r.Course = *p.Course
	}
	if p.Year != nil {
		r.Year = *p.Year
	}
	if p.Budget != nil {
		r.Budget = *p.Budget
	}
	if p.MoveInDate != nil {
		r.MoveInDate = *p.MoveInDate
	}
	if p.LeaseDuration != nil {
		r.LeaseDuration = *p.LeaseDuration
	}
	if p.Bio != nil {
		r.Bio = *p.Bio
	}
	if p.Smoker != nil {
		r.Smoker = *p.Smoker
	}
	if p.Drinking != nil {
		r.Drinking = *p.Drinking
	}
	if p.StudySchedule != nil {
		r.StudySchedule = *p.StudySchedule
	}
	if p.Cleanliness != nil {
		r.Cleanliness = *p.Cleanliness
	}
	if p.GuestFrequency != nil {
		r.GuestFrequency = *p.GuestFrequency
	}
	if p.Hobbies != nil {
		r.Hobbies = *p.Hobbies
	}
	if p.Gender != nil {
		r.Gender = *p.Gender
	}
	if p.SeekingGender != nil {
		r.SeekingGender = *p.SeekingGender
	}
}
