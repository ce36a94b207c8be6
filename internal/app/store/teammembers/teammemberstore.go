// internal/app/store/teammembers/teammemberstore.go
package teammemberstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lexsite/lexsite/internal/domain/models"
)

// Store provides access to the team_members collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new team member store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("team_members")}
}

// Create inserts a new team member.
func (s *Store) Create(ctx context.Context, m *models.TeamMember) error {
	now := time.Now().UTC()
	m.ID = primitive.NewObjectID()
	m.CreatedAt = now
	m.UpdatedAt = now

	_, err := s.c.InsertOne(ctx, m)
	return err
}

// Update replaces the editable fields of a team member.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, m models.TeamMember) error {
	update := bson.M{
		"$set": bson.M{
			"name":           m.Name,
			"designation":    m.Designation,
			"bio":            m.Bio,
			"photo_path":     m.PhotoPath,
			"email":          m.Email,
			"phone":          m.Phone,
			"linkedin":       m.LinkedIn,
			"qualifications": m.Qualifications,
			"specialties":    m.Specialties,
			"order":          m.Order,
			"updated_at":     time.Now().UTC(),
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

// Delete removes a team member.
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

// GetByID returns a team member by id.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.TeamMember, error) {
	var m models.TeamMember
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if err != nil {
		return models.TeamMember{}, err
	}
	return m, nil
}

// GetAll returns all team members in display order.
func (s *Store) GetAll(ctx context.Context) ([]models.TeamMember, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "name", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var members []models.TeamMember
	if err := cur.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// Count returns the number of team members.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
