// internal/app/store/gallery/gallerystore.go
package gallerystore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lexsite/lexsite/internal/domain/models"
)

// Store provides access to the gallery collection. File cleanup on delete or
// image replacement is the handler's job: the store only sees documents.
type Store struct {
	c *mongo.Collection
}

// New creates a new gallery store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("gallery")}
}

// Create inserts a new gallery item.
func (s *Store) Create(ctx context.Context, g *models.GalleryItem) error {
	now := time.Now().UTC()
	g.ID = primitive.NewObjectID()
	g.CreatedAt = now
	g.UpdatedAt = now

	_, err := s.c.InsertOne(ctx, g)
	return err
}

// Update replaces the editable fields of a gallery item.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, g models.GalleryItem) error {
	update := bson.M{
		"$set": bson.M{
			"title":           g.Title,
			"caption":         g.Caption,
			"category":        g.Category,
			"image_path":      g.ImagePath,
			"image_name":      g.ImageName,
			"show_in_gallery": g.ShowInGallery,
			"order":           g.Order,
			"updated_at":      time.Now().UTC(),
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

// Delete removes a gallery item.
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

// GetByID returns a gallery item by id.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.GalleryItem, error) {
	var g models.GalleryItem
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&g)
	if err != nil {
		return models.GalleryItem{}, err
	}
	return g, nil
}

// GetAll returns all gallery items in display order, newest first within the
// same order value.
func (s *Store) GetAll(ctx context.Context) ([]models.GalleryItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []models.GalleryItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetVisible returns the gallery items flagged for public display, in the
// same order GetAll uses.
func (s *Store) GetVisible(ctx context.Context) ([]models.GalleryItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"show_in_gallery": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []models.GalleryItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Count returns the number of gallery items.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
