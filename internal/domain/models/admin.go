// internal/domain/models/admin.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin is a back-office user. Authentication is email + password only; the
// bcrypt hash never leaves the server.
type Admin struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"` // stored lowercase, unique

	PasswordHash string `bson:"password_hash" json:"-"` // bcrypt hash (never in JSON)

	Role   string `bson:"role" json:"role"`     // admin
	Status string `bson:"status" json:"status"` // active, disabled

	LastLoginAt *time.Time `bson:"last_login_at,omitempty" json:"last_login_at,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Admin roles
const (
	RoleAdmin = "admin"
)

// Admin statuses
const (
	StatusActive   = "active"
	StatusDisabled = "disabled"
)

// IsActive reports whether the admin may sign in.
func (a *Admin) IsActive() bool {
	return a.Status == "" || a.Status == StatusActive
}
