// internal/domain/models/applicant.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Applicant is a job application submitted through the public careers page.
// JobID references a Job by id; the reference is not enforced across
// collections, so an applicant survives deletion of its job.
type Applicant struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	JobID primitive.ObjectID `bson:"job_id" json:"job_id"`

	Name       string `bson:"name" json:"name"`
	Email      string `bson:"email" json:"email"`
	Phone      string `bson:"phone" json:"phone"`
	CoverNote  string `bson:"cover_note,omitempty" json:"cover_note,omitempty"`
	ResumePath string `bson:"resume_path,omitempty" json:"resume_path,omitempty"` // storage path of the uploaded resume
	ResumeName string `bson:"resume_name,omitempty" json:"resume_name,omitempty"`

	Status string `bson:"status" json:"status"` // new, reviewed, shortlisted, rejected

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Applicant statuses
const (
	ApplicantStatusNew         = "new"
	ApplicantStatusReviewed    = "reviewed"
	ApplicantStatusShortlisted = "shortlisted"
	ApplicantStatusRejected    = "rejected"
)

// AllApplicantStatuses returns all valid applicant statuses.
func AllApplicantStatuses() []string {
	return []string{
		ApplicantStatusNew,
		ApplicantStatusReviewed,
		ApplicantStatusShortlisted,
		ApplicantStatusRejected,
	}
}

// IsValidApplicantStatus checks if a status is valid.
func IsValidApplicantStatus(s string) bool {
	for _, v := range AllApplicantStatuses() {
		if v == s {
			return true
		}
	}
	return false
}
