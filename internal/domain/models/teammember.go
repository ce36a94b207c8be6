// internal/domain/models/teammember.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamMember is a lawyer or staff profile shown on the team page.
type TeamMember struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`

	Name        string `bson:"name" json:"name"`
	Designation string `bson:"designation,omitempty" json:"designation,omitempty"` // e.g. "Senior Partner"
	Bio         string `bson:"bio,omitempty" json:"bio,omitempty"`                 // markdown, rendered on the profile page
	PhotoPath   string `bson:"photo_path,omitempty" json:"photo_path,omitempty"`

	Email    string `bson:"email,omitempty" json:"email,omitempty"`
	Phone    string `bson:"phone,omitempty" json:"phone,omitempty"`
	LinkedIn string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`

	// Qualifications and practice focus as free-text lines
	Qualifications []string `bson:"qualifications,omitempty" json:"qualifications,omitempty"`
	Specialties    []string `bson:"specialties,omitempty" json:"specialties,omitempty"`

	Order int `bson:"order" json:"order"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
