// internal/app/store/sliders/sliderstore.go
package sliderstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lexsite/lexsite/internal/domain/models"
)

// Store provides access to the sliders collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new slider store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("sliders")}
}

// Create inserts a new slide.
func (s *Store) Create(ctx context.Context, sl *models.Slider) error {
	now := time.Now().UTC()
	sl.ID = primitive.NewObjectID()
	sl.CreatedAt = now
	sl.UpdatedAt = now

	_, err := s.c.InsertOne(ctx, sl)
	return err
}

// Update replaces the editable fields of a slide.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, sl models.Slider) error {
	update := bson.M{
		"$set": bson.M{
			"title":              sl.Title,
			"subtitle":           sl.Subtitle,
			"image_path":         sl.ImagePath,
			"button_text":        sl.ButtonText,
			"button_url":         sl.ButtonURL,
			"title_font_size":    sl.TitleFontSize,
			"subtitle_font_size": sl.SubtitleFontSize,
			"is_active":          sl.IsActive,
			"order":              sl.Order,
			"updated_at":         time.Now().UTC(),
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

// Delete removes a slide.
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

// GetByID returns a slide by id.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Slider, error) {
	var sl models.Slider
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&sl)
	if err != nil {
		return models.Slider{}, err
	}
	return sl, nil
}

// GetAll returns all slides in display order.
func (s *Store) GetAll(ctx context.Context) ([]models.Slider, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var sliders []models.Slider
	if err := cur.All(ctx, &sliders); err != nil {
		return nil, err
	}
	return sliders, nil
}

// GetActive returns the active slides in display order, for the hero slider.
func (s *Store) GetActive(ctx context.Context) ([]models.Slider, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{"is_active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var sliders []models.Slider
	if err := cur.All(ctx, &sliders); err != nil {
		return nil, err
	}
	return sliders, nil
}

// Count returns the number of slides.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
