package models

import "time"

// SubmitResponse is echoed to the applicant after a stored submission.
type SubmitResponse struct {
	Success       bool      `json:"success"`
	Message       string    `json:"message"`
	ApplicationId uint      `json:"applicationId"`
	Reference     string    `json:"reference"`
	SubmittedAt   time.Time `json:"submittedAt"`
}

// ApplicationSummary is the blob-free list projection for the admin dashboard.
// Attachment presence is signaled by the has_* flags instead of the bytes.
type ApplicationSummary struct {
	Id             uint      `json:"id"`
	Reference      string    `json:"reference"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Location       string    `json:"location"`
	Position       string    `json:"position"`
	Experience     string    `json:"experience"`
	Skills         []string  `json:"skills"`
	HasCV          bool      `json:"has_cv"`
	HasCoverLetter bool      `json:"has_cover_letter"`
	SubmittedAt    time.Time `json:"submitted_at"`
	Status         string    `json:"status"`
}

// ApplicationDetail carries every stored field except the attachment bytes,
// which are only reachable through the file endpoints.
type ApplicationDetail struct {
	ApplicationSummary
	AlxStatus           string  `json:"alx_status"`
	Education           string  `json:"education"`
	CurrentRole         string  `json:"current_role"`
	TechnicalSkills     string  `json:"technical_skills"`
	DomainKnowledge     string  `json:"domain_knowledge"`
	PortfolioLink       string  `json:"portfolio_link"`
	Motivation          string  `json:"motivation"`
	Consent             bool    `json:"consent"`
	Notes               string  `json:"notes"`
	CVFilename          *string `json:"cv_filename,omitempty"`
	CoverLetterFilename *string `json:"cover_letter_filename,omitempty"`
}

type ApplicationEnvelope struct {
	Success     bool               `json:"success"`
	Application *ApplicationDetail `json:"application"`
}

type UpdateStatusResponse struct {
	Success     bool               `json:"success"`
	Message     string             `json:"message"`
	Application *ApplicationDetail `json:"application"`
}

type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ReconcileResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
	Port      string `json:"port"`
}

type DBCheckResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	DBTime   string `json:"db_time,omitempty"`
	Table    string `json:"table,omitempty"`
	Error    string `json:"error,omitempty"`
}
