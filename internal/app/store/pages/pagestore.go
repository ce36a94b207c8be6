// internal/app/store/pages/pagestore.go
package pagestore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lexsite/lexsite/internal/app/system/sections"
	"github.com/lexsite/lexsite/internal/domain/models"
)

// Store provides access to the pages collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new page store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("pages")}
}

// GetByID returns a page by id.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Page, error) {
	var page models.Page
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&page)
	if err != nil {
		return models.Page{}, err
	}
	return page, nil
}

// GetBySlug returns a page by its slug regardless of publish state.
func (s *Store) GetBySlug(ctx context.Context, slug string) (models.Page, error) {
	var page models.Page
	err := s.c.FindOne(ctx, bson.M{"slug": slug}).Decode(&page)
	if err != nil {
		return models.Page{}, err
	}
	return page, nil
}

// GetPublishedBySlug returns a page by slug only if it is published. The
// public site uses this so drafts 404 rather than leak.
func (s *Store) GetPublishedBySlug(ctx context.Context, slug string) (models.Page, error) {
	var page models.Page
	err := s.c.FindOne(ctx, bson.M{"slug": slug, "is_published": true}).Decode(&page)
	if err != nil {
		return models.Page{}, err
	}
	return page, nil
}

// Create inserts a new page. The unique slug index rejects duplicates; the
// caller classifies that with storeutil.IsDuplicateKey. Sections are
// renumbered so stored order fields match array positions.
func (s *Store) Create(ctx context.Context, page *models.Page) error {
	now := time.Now().UTC()
	page.ID = primitive.NewObjectID()
	page.CreatedAt = now
	page.UpdatedAt = now
	if page.Sections == nil {
		page.Sections = []models.Section{}
	}
	page.Sections = sections.Renumber(page.Sections)

	_, err := s.c.InsertOne(ctx, page)
	return err
}

// Update replaces the editable fields of a page.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, page models.Page) error {
	if page.Sections == nil {
		page.Sections = []models.Section{}
	}
	page.Sections = sections.Renumber(page.Sections)

	update := bson.M{
		"$set": bson.M{
			"slug":             page.Slug,
			"title":            page.Title,
			"sections":         page.Sections,
			"content":          page.Content,
			"meta_title":       page.MetaTitle,
			"meta_description": page.MetaDescription,
			"is_published":     page.IsPublished,
			"updated_at":       time.Now().UTC(),
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

// SetSections replaces only the sections array, used by the section editor
// so concurrent metadata edits are not clobbered.
func (s *Store) SetSections(ctx context.Context, id primitive.ObjectID, secs []models.Section) error {
	if secs == nil {
		secs = []models.Section{}
	}
	secs = sections.Renumber(secs)

	update := bson.M{
		"$set": bson.M{
			"sections":   secs,
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

// Delete removes a page.
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

// GetAll returns all pages, newest first.
func (s *Store) GetAll(ctx context.Context) ([]models.Page, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var pages []models.Page
	if err := cur.All(ctx, &pages); err != nil {
		return nil, err
	}
	return pages, nil
}

// GetPublished returns all published pages, used by the sitemap.
func (s *Store) GetPublished(ctx context.Context) ([]models.Page, error) {
	cur, err := s.c.Find(ctx, bson.M{"is_published": true})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var pages []models.Page
	if err := cur.All(ctx, &pages); err != nil {
		return nil, err
	}
	return pages, nil
}

// Exists checks if a page with the given slug exists.
func (s *Store) Exists(ctx context.Context, slug string) (bool, error) {
	count, err := s.c.CountDocuments(ctx, bson.M{"slug": slug})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Upsert creates or updates a page by slug. Used by seeding.
func (s *Store) Upsert(ctx context.Context, page models.Page) error {
	now := time.Now().UTC()
	page.Sections = sections.Renumber(page.Sections)

	filter := bson.M{"slug": page.Slug}
	update := bson.M{
		"$set": bson.M{
			"title":            page.Title,
			"sections":         page.Sections,
			"content":          page.Content,
			"meta_title":       page.MetaTitle,
			"meta_description": page.MetaDescription,
			"is_published":     page.IsPublished,
			"updated_at":       now,
		},
		"$setOnInsert": bson.M{
			"_id":        primitive.NewObjectID(),
			"slug":       page.Slug,
			"created_at": now,
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx, filter, update, opts)
	return err
}

// Count returns the number of pages.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
