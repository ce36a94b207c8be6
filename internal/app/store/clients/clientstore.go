// internal/app/store/clients/clientstore.go
package clientstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lexsite/lexsite/internal/domain/models"
)

// Store provides access to the clients collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new client store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("clients")}
}

// Create inserts a new client.
func (s *Store) Create(ctx context.Context, c *models.Client) error {
	now := time.Now().UTC()
	c.ID = primitive.NewObjectID()
	c.CreatedAt = now
	c.UpdatedAt = now

	_, err := s.c.InsertOne(ctx, c)
	return err
}

// Update replaces the editable fields of a client.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, c models.Client) error {
	update := bson.M{
		"$set": bson.M{
			"name":       c.Name,
			"logo_path":  c.LogoPath,
			"website":    c.Website,
			"is_active":  c.IsActive,
			"order":      c.Order,
			"updated_at": time.Now().UTC(),
		},
	}
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes a client.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// GetByID returns a client by id.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Client, error) {
	var c models.Client
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err != nil {
		return models.Client{}, err
	}
	return c, nil
}

// GetAll returns all clients in display order.
func (s *Store) GetAll(ctx context.Context) ([]models.Client, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "name", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var clients []models.Client
	if err := cur.All(ctx, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// GetActive returns the active clients in display order, for the logo strip.
func (s *Store) GetActive(ctx context.Context) ([]models.Client, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{"is_active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var clients []models.Client
	if err := cur.All(ctx, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// Count returns the number of clients.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
