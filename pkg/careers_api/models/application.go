package models

import (
	"time"

	"github.com/lib/pq"
)

// Application statuses reachable through the admin surface. Transitions are
// unconstrained: any status may be set from any other.
const (
	StatusPending  = "pending"
	StatusReviewed = "reviewed"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// ValidStatus reports whether s is one of the four admin-settable statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusReviewed, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Application is one applicant's submitted record. Attachment bytes live in the
// *_data columns and are only ever loaded through the attachment queries; a
// *_data blob is never stored without its filename and mimetype.
type Application struct {
	ID        uint   `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Reference string `json:"reference" gorm:"column:reference;size:14"`

	FullName        string         `json:"fullName" gorm:"column:full_name;size:100;not null"`
	Email           string         `json:"email" gorm:"column:email;size:100;not null;index:idx_applications_email"`
	Phone           string         `json:"phone" gorm:"column:phone;size:20;not null"`
	Location        string         `json:"location" gorm:"column:location;size:100"`
	AlxStatus       string         `json:"alxStatus" gorm:"column:alx_status;size:50;default:'Not specified'"`
	Position        string         `json:"position" gorm:"column:position;size:50;not null;index:idx_applications_position"`
	Education       string         `json:"education" gorm:"column:education;type:text"`
	CurrentRole     string         `json:"currentRole" gorm:"column:current_role_text;type:text"`
	Experience      string         `json:"experience" gorm:"column:experience;size:20"`
	TechnicalSkills string         `json:"technicalSkills" gorm:"column:technical_skills;type:text"`
	DomainKnowledge string         `json:"domainKnowledge" gorm:"column:domain_knowledge;type:text"`
	PortfolioLink   string         `json:"portfolioLink" gorm:"column:portfolio_link;type:text"`
	Motivation      string         `json:"motivation" gorm:"column:motivation;type:text"`
	Skills          pq.StringArray `json:"skills" gorm:"column:skills;type:text[]"`

	CVData              []byte  `json:"-" gorm:"column:cv_data"`
	CVFilename          *string `json:"cvFilename,omitempty" gorm:"column:cv_filename;size:255"`
	CVMimetype          *string `json:"cvMimetype,omitempty" gorm:"column:cv_mimetype;size:100"`
	CoverLetterData     []byte  `json:"-" gorm:"column:cover_letter_data"`
	CoverLetterFilename *string `json:"coverLetterFilename,omitempty" gorm:"column:cover_letter_filename;size:255"`
	CoverLetterMimetype *string `json:"coverLetterMimetype,omitempty" gorm:"column:cover_letter_mimetype;size:100"`

	Consent     bool      `json:"consent" gorm:"column:consent;not null"`
	SubmittedAt time.Time `json:"submittedAt" gorm:"column:submitted_at;autoCreateTime"`
	Status      string    `json:"status" gorm:"column:status;size:20;default:'pending';index:idx_applications_status"`
	Notes       string    `json:"notes" gorm:"column:notes;type:text"`
}

func (Application) TableName() string { return "applications" }

// AttachmentKind selects which of the two stored files a query refers to.
type AttachmentKind string

const (
	AttachmentCV          AttachmentKind = "cv"
	AttachmentCoverLetter AttachmentKind = "cover_letter"
)

// Attachment is a decoded binary record served by the file endpoints.
type Attachment struct {
	Data     []byte
	Filename string
	Mimetype string
}

type Pagination struct {
	Next           *int `json:"next,omitempty"`
	Previous       *int `json:"previous,omitempty"`
	CurrentPage    int  `json:"currentPage"`
	RecordsPerPage int  `json:"recordsPerPage"`
	TotalPages     int  `json:"totalPages"`
	TotalRecords   int  `json:"totalRecords"`
}
