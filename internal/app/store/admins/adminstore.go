// internal/app/store/admins/adminstore.go
package adminstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lexsite/lexsite/internal/app/system/normalize"
	"github.com/lexsite/lexsite/internal/domain/models"
)

// Store provides access to the admins collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new admin store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("admins")}
}

// Create inserts a new admin. Email is stored lowercase; the unique index
// rejects duplicates.
func (s *Store) Create(ctx context.Context, a *models.Admin) error {
	now := time.Now().UTC()
	a.ID = primitive.NewObjectID()
	a.Email = normalize.Email(a.Email)
	if a.Role == "" {
		a.Role = models.RoleAdmin
	}
	if a.Status == "" {
		a.Status = models.StatusActive
	}
	a.CreatedAt = now
	a.UpdatedAt = now

	_, err := s.c.InsertOne(ctx, a)
	return err
}

// GetByID returns an admin by id.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Admin, error) {
	var a models.Admin
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err != nil {
		return models.Admin{}, err
	}
	return a, nil
}

// GetByEmail returns an admin by email (matched lowercase).
func (s *Store) GetByEmail(ctx context.Context, email string) (models.Admin, error) {
	email = normalize.Email(email)

	var a models.Admin
	err := s.c.FindOne(ctx, bson.M{"email": email}).Decode(&a)
	if err != nil {
		return models.Admin{}, err
	}
	return a, nil
}

// GetAll returns all admins alphabetically by name.
func (s *Store) GetAll(ctx context.Context) ([]models.Admin, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var admins []models.Admin
	if err := cur.All(ctx, &admins); err != nil {
		return nil, err
	}
	return admins, nil
}

// TouchLogin stamps the last successful sign-in.
func (s *Store) TouchLogin(ctx context.Context, id primitive.ObjectID) error {
	update := bson.M{
		"$set": bson.M{
			"last_login_at": time.Now().UTC(),
		},
	}
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

// Count returns the number of admins.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
