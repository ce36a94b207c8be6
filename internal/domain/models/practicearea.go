// internal/domain/models/practicearea.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PracticeArea is one area of legal practice (e.g. "Company Law (NCLT / NCLAT)").
// Slug is unique and derived from the title when not supplied.
type PracticeArea struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Slug string             `bson:"slug" json:"slug"`

	Title            string `bson:"title" json:"title"`
	ShortDescription string `bson:"short_description,omitempty" json:"short_description,omitempty"` // card teaser
	FullDescription  string `bson:"full_description,omitempty" json:"full_description,omitempty"`   // markdown, rendered on the detail page
	Icon             string `bson:"icon,omitempty" json:"icon,omitempty"`                           // icon name or class
	ImagePath        string `bson:"image_path,omitempty" json:"image_path,omitempty"`

	ShowOnHome bool `bson:"show_on_home" json:"show_on_home"`
	Order      int  `bson:"order" json:"order"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
