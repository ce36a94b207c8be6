// internal/app/store/blogposts/blogpoststore.go
package blogpoststore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lexsite/lexsite/internal/domain/models"
)

// Store provides access to the blog_posts collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new blog post store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("blog_posts")}
}

// Create inserts a new post. The unique slug index rejects duplicates;
// callers classify that with storeutil.IsDuplicateKey.
func (s *Store) Create(ctx context.Context, p *models.BlogPost) error {
	now := time.Now().UTC()
	p.ID = primitive.NewObjectID()
	if p.Status == "" {
		p.Status = models.BlogStatusDraft
	}
	if p.Status == models.BlogStatusPublished && p.PublishedAt == nil {
		p.PublishedAt = &now
	}
	p.CreatedAt = now
	p.UpdatedAt = now

	_, err := s.c.InsertOne(ctx, p)
	return err
}

// Update replaces the editable fields of a post. Moving a draft to published
// stamps PublishedAt if it was never set.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, p models.BlogPost) error {
	now := time.Now().UTC()
	if p.Status == models.BlogStatusPublished && p.PublishedAt == nil {
		p.PublishedAt = &now
	}

	update := bson.M{
		"$set": bson.M{
			"slug":         p.Slug,
			"title":        p.Title,
			"excerpt":      p.Excerpt,
			"body":         p.Body,
			"cover_path":   p.CoverPath,
			"category":     p.Category,
			"tags":         p.Tags,
			"author":       p.Author,
			"status":       p.Status,
			"published_at": p.PublishedAt,
			"read_time":    p.ReadTime,
			"seo":          p.SEO,
			"updated_at":   now,
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

// Delete removes a post.
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

// GetByID returns a post by id regardless of status.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.BlogPost, error) {
	var p models.BlogPost
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		return models.BlogPost{}, err
	}
	return p, nil
}

// GetPublishedBySlug returns a published post by slug and increments its view
// counter in the same operation. Every fetch counts; this is page views, not
// unique visitors.
func (s *Store) GetPublishedBySlug(ctx context.Context, slug string) (models.BlogPost, error) {
	filter := bson.M{"slug": slug, "status": models.BlogStatusPublished}
	update := bson.M{"$inc": bson.M{"views": 1}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var p models.BlogPost
	err := s.c.FindOneAndUpdate(ctx, filter, update, opts).Decode(&p)
	if err != nil {
		return models.BlogPost{}, err
	}
	return p, nil
}

// GetAll returns all posts for the admin, newest first.
func (s *Store) GetAll(ctx context.Context) ([]models.BlogPost, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var posts []models.BlogPost
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPublished returns published posts, newest first. An empty category
// matches everything; limit <= 0 means no limit.
func (s *Store) GetPublished(ctx context.Context, category string, limit int64) ([]models.BlogPost, error) {
	filter := bson.M{"status": models.BlogStatusPublished}
	if category != "" {
		filter["category"] = category
	}

	opts := options.Find().SetSort(bson.D{{Key: "published_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var posts []models.BlogPost
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Count returns the number of posts.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

// CountPublished returns the number of published posts.
func (s *Store) CountPublished(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"status": models.BlogStatusPublished})
}

// TotalViews sums the view counters across all posts, for the dashboard.
func (s *Store) TotalViews(ctx context.Context) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$views"},
		}}},
	}
	cur, err := s.c.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)

	var out []struct {
		Total int64 `bson:"total"`
	}
	if err := cur.All(ctx, &out); err != nil {
		return 0, err
	}
	if len(out) == 0 {
		return 0, nil
	}
	return out[0].Total, nil
}
