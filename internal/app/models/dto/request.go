package dto

// NominationRequest carries the student-spotlight nomination form fields.
// The nominee record is composed from these at submission time: the bio
// from About plus Activities, interests from the comma-split activity text.
// The nominee photo travels alongside as a multipart file part.
type NominationRequest struct {
	Name         string `form:"name" binding:"required"`
	Major        string `form:"major" binding:"required"`
	About        string `form:"about" binding:"required"`
	Activities   string `form:"activities"`
	UniversityID string `form:"universityId" binding:"required"`
	Gender       string `form:"gender"`
}

// UploadResponse describes a stored object returned by the upload endpoints
type UploadResponse struct {
	URL          string `json:"url"`
	Size         int64  `json:"size"`
	SizeLabel    string `json:"sizeLabel"`
	Compressed   bool   `json:"compressed"`
	SavedBytes   int64  `json:"savedBytes,omitempty"`
	SavedPercent string `json:"savedPercent,omitempty"`
}
