// internal/domain/models/job.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Job is an open position on the careers page.
//
// A job is publicly visible only when both IsPublished and IsActive are true:
// publishing controls whether the listing has been released at all, active
// controls whether it is still accepting applications.
type Job struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`

	Title       string `bson:"title" json:"title"`
	Department  string `bson:"department,omitempty" json:"department,omitempty"`
	Location    string `bson:"location,omitempty" json:"location,omitempty"`
	Type        string `bson:"type" json:"type"` // full-time, part-time, internship, contract
	Experience  string `bson:"experience,omitempty" json:"experience,omitempty"` // e.g. "3-5 years"
	Description string `bson:"description,omitempty" json:"description,omitempty"`

	Requirements []string `bson:"requirements,omitempty" json:"requirements,omitempty"`

	IsPublished bool `bson:"is_published" json:"is_published"`
	IsActive    bool `bson:"is_active" json:"is_active"`

	PostedAt  time.Time `bson:"posted_at" json:"posted_at"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// IsVisible reports whether the job appears on the public careers page.
func (j *Job) IsVisible() bool {
	return j.IsPublished && j.IsActive
}

// Job types
const (
	JobTypeFullTime   = "full-time"
	JobTypePartTime   = "part-time"
	JobTypeInternship = "internship"
	JobTypeContract   = "contract"
)

// AllJobTypes returns all valid job types.
func AllJobTypes() []string {
	return []string{
		JobTypeFullTime,
		JobTypePartTime,
		JobTypeInternship,
		JobTypeContract,
	}
}

// IsValidJobType checks if a job type is valid.
func IsValidJobType(t string) bool {
	for _, v := range AllJobTypes() {
		if v == t {
			return true
		}
	}
	return false
}
