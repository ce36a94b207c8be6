// internal/domain/models/slider.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Slider is one slide in the home page hero carousel. Only active slides are
// rendered, in Order ascending.
type Slider struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`

	Title    string `bson:"title,omitempty" json:"title,omitempty"`
	Subtitle string `bson:"subtitle,omitempty" json:"subtitle,omitempty"`

	ImagePath string `bson:"image_path,omitempty" json:"image_path,omitempty"`

	ButtonText string `bson:"button_text,omitempty" json:"button_text,omitempty"`
	ButtonURL  string `bson:"button_url,omitempty" json:"button_url,omitempty"`

	// Per-slide font sizes in CSS units; empty uses the theme defaults
	TitleFontSize    string `bson:"title_font_size,omitempty" json:"title_font_size,omitempty"`
	SubtitleFontSize string `bson:"subtitle_font_size,omitempty" json:"subtitle_font_size,omitempty"`

	IsActive bool `bson:"is_active" json:"is_active"`
	Order    int  `bson:"order" json:"order"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
