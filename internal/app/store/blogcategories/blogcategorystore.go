// internal/app/store/blogcategories/blogcategorystore.go
package blogcategorystore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lexsite/lexsite/internal/domain/models"
)

// Store provides access to the blog_categories collection. Categories are an
// unenforced taxonomy: posts store the category name as free text.
type Store struct {
	c *mongo.Collection
}

// New creates a new blog category store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("blog_categories")}
}

// Create inserts a new category. The unique slug index rejects duplicates.
func (s *Store) Create(ctx context.Context, cat *models.BlogCategory) error {
	now := time.Now().UTC()
	cat.ID = primitive.NewObjectID()
	cat.CreatedAt = now
	cat.UpdatedAt = now

	_, err := s.c.InsertOne(ctx, cat)
	return err
}

// Update replaces the editable fields of a category.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, cat models.BlogCategory) error {
	update := bson.M{
		"$set": bson.M{
			"slug":        cat.Slug,
			"name":        cat.Name,
			"description": cat.Description,
			"updated_at":  time.Now().UTC(),
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

// Delete removes a category. Posts referencing it keep their free-text name.
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

// GetByID returns a category by id.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.BlogCategory, error) {
	var cat models.BlogCategory
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&cat)
	if err != nil {
		return models.BlogCategory{}, err
	}
	return cat, nil
}

// GetAll returns all categories alphabetically.
func (s *Store) GetAll(ctx context.Context) ([]models.BlogCategory, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var cats []models.BlogCategory
	if err := cur.All(ctx, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}
