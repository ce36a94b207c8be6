// internal/domain/models/client.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Client is a firm client whose logo appears in the clients strip.
type Client struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`

	Name     string `bson:"name" json:"name"`
	LogoPath string `bson:"logo_path,omitempty" json:"logo_path,omitempty"`
	Website  string `bson:"website,omitempty" json:"website,omitempty"`

	IsActive bool `bson:"is_active" json:"is_active"`
	Order    int  `bson:"order" json:"order"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
