// internal/domain/models/appointment.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Appointment is a consultation request submitted through the public contact
// form. PracticeArea and TeamMember are free-text labels, not references;
// the form populates them from the live lists but nothing enforces that.
type Appointment struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`

	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone" json:"phone"`

	PracticeArea string `bson:"practice_area,omitempty" json:"practice_area,omitempty"`
	TeamMember   string `bson:"team_member,omitempty" json:"team_member,omitempty"`

	PreferredDate string `bson:"preferred_date,omitempty" json:"preferred_date,omitempty"` // as entered, not parsed
	Message       string `bson:"message,omitempty" json:"message,omitempty"`

	Status string `bson:"status" json:"status"` // pending, confirmed, completed, cancelled

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Appointment statuses
const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

// AllAppointmentStatuses returns all valid appointment statuses.
func AllAppointmentStatuses() []string {
	return []string{
		AppointmentStatusPending,
		AppointmentStatusConfirmed,
		AppointmentStatusCompleted,
		AppointmentStatusCancelled,
	}
}

// IsValidAppointmentStatus checks if a status is valid.
func IsValidAppointmentStatus(s string) bool {
	for _, v := range AllAppointmentStatuses() {
		if v == s {
			return true
		}
	}
	return false
}
