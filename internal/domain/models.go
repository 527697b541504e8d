package domain

import (
	"time"

	"github.com/google/uuid"
)

// JobID uniquely identifies a job
type JobID = string

// NewID returns a time-ordered identifier for a new document
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// SalaryRange bounds the advertised salary of a job
type SalaryRange struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency,omitempty"`
}

// Job is a posted position owned by an employer identity
type Job struct {
	ID                  JobID        `json:"_id,omitempty"`
	Title               string       `json:"title,omitempty"`
	Location            string       `json:"location,omitempty"`
	JobType             string       `json:"jobType,omitempty"`
	Category            string       `json:"category,omitempty"`
	ApplicationDeadline string       `json:"applicationDeadline,omitempty"`
	SalaryRange         *SalaryRange `json:"salaryRange,omitempty"`
	Description         string       `json:"description,omitempty"`
	Company             string       `json:"company,omitempty"`
	Requirements        []string     `json:"requirements,omitempty"`
	Responsibilities    []string     `json:"responsibilities,omitempty"`
	Status              string       `json:"status,omitempty"`
	HREmail             string       `json:"hr_email,omitempty"`
	HRName              string       `json:"hr_name,omitempty"`
	CompanyLogo         string       `json:"company_logo,omitempty"`
	ApplicationCount    int          `json:"applicationCount,omitempty"`
	CreatedAt           time.Time    `json:"-"`
}

// JobSnapshot holds the job fields copied onto an application at read time.
// It is never persisted.
type JobSnapshot struct {
	Title               string `json:"title,omitempty"`
	Location            string `json:"location,omitempty"`
	Company             string `json:"company,omitempty"`
	CompanyLogo         string `json:"company_logo,omitempty"`
	Category            string `json:"category,omitempty"`
	ApplicationDeadline string `json:"applicationDeadline,omitempty"`
}

// SnapshotOf extracts the presentation fields of a job
func SnapshotOf(j Job) *JobSnapshot {
	return &JobSnapshot{
		Title:               j.Title,
		Location:            j.Location,
		Company:             j.Company,
		CompanyLogo:         j.CompanyLogo,
		Category:            j.Category,
		ApplicationDeadline: j.ApplicationDeadline,
	}
}

// JobApplication is an applicant's submission against a job
type JobApplication struct {
	ID             string    `json:"_id,omitempty"`
	JobID          JobID     `json:"job_id"`
	ApplicantEmail string    `json:"applicant_email"`
	Status         string    `json:"status,omitempty"`
	LinkedIn       string    `json:"linkedIn,omitempty"`
	GitHub         string    `json:"github,omitempty"`
	Resume         string    `json:"resume,omitempty"`
	CreatedAt      time.Time `json:"-"`

	*JobSnapshot
}

// InsertResult acknowledges a created document
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// UpdateResult reports how many documents an update touched
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult reports how many documents a delete removed
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}
