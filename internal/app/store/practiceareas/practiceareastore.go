// internal/app/store/practiceareas/practiceareastore.go
package practiceareastore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lexsite/lexsite/internal/domain/models"
)

// Store provides access to the practice_areas collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new practice area store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("practice_areas")}
}

// Create inserts a new practice area. The unique slug index rejects
// duplicates; callers classify that with storeutil.IsDuplicateKey.
func (s *Store) Create(ctx context.Context, pa *models.PracticeArea) error {
	now := time.Now().UTC()
	pa.ID = primitive.NewObjectID()
	pa.CreatedAt = now
	pa.UpdatedAt = now

	_, err := s.c.InsertOne(ctx, pa)
	return err
}

// Update replaces the editable fields of a practice area.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, pa models.PracticeArea) error {
	update := bson.M{
		"$set": bson.M{
			"slug":              pa.Slug,
			"title":             pa.Title,
			"short_description": pa.ShortDescription,
			"full_description":  pa.FullDescription,
			"icon":              pa.Icon,
			"image_path":        pa.ImagePath,
			"show_on_home":      pa.ShowOnHome,
			"order":             pa.Order,
			"updated_at":        time.Now().UTC(),
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

// Delete removes a practice area.
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

// GetByID returns a practice area by id.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.PracticeArea, error) {
	var pa models.PracticeArea
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&pa)
	if err != nil {
		return models.PracticeArea{}, err
	}
	return pa, nil
}

// GetBySlug returns a practice area by slug.
func (s *Store) GetBySlug(ctx context.Context, slug string) (models.PracticeArea, error) {
	var pa models.PracticeArea
	err := s.c.FindOne(ctx, bson.M{"slug": slug}).Decode(&pa)
	if err != nil {
		return models.PracticeArea{}, err
	}
	return pa, nil
}

// GetAll returns all practice areas in display order.
func (s *Store) GetAll(ctx context.Context) ([]models.PracticeArea, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "title", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var areas []models.PracticeArea
	if err := cur.All(ctx, &areas); err != nil {
		return nil, err
	}
	return areas, nil
}

// GetHome returns the practice areas flagged for the home page, in order.
func (s *Store) GetHome(ctx context.Context) ([]models.PracticeArea, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{"show_on_home": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var areas []models.PracticeArea
	if err := cur.All(ctx, &areas); err != nil {
		return nil, err
	}
	return areas, nil
}

// Count returns the number of practice areas.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
