// internal/domain/models/gallery.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GalleryItem is one image in the site gallery. ImagePath points into file
// storage; deleting or replacing the item removes the stored file best-effort.
type GalleryItem struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`

	Title     string `bson:"title,omitempty" json:"title,omitempty"`
	Caption   string `bson:"caption,omitempty" json:"caption,omitempty"`
	Category  string `bson:"category,omitempty" json:"category,omitempty"`
	ImagePath string `bson:"image_path" json:"image_path"`
	ImageName string `bson:"image_name,omitempty" json:"image_name,omitempty"` // original filename

	ShowInGallery bool `bson:"show_in_gallery" json:"show_in_gallery"`

	Order int `bson:"order" json:"order"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
