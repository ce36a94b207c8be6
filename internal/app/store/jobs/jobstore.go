// internal/app/store/jobs/jobstore.go
package jobstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lexsite/lexsite/internal/domain/models"
)

// Store provides access to the jobs collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new job store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("jobs")}
}

// visibleFilter matches jobs shown on the public careers page. Both flags
// must be set: published controls release, active controls whether the
// position still accepts applications.
func visibleFilter() bson.M {
	return bson.M{"is_published": true, "is_active": true}
}

// Create inserts a new job.
func (s *Store) Create(ctx context.Context, j *models.Job) error {
	now := time.Now().UTC()
	j.ID = primitive.NewObjectID()
	j.CreatedAt = now
	j.UpdatedAt = now
	if j.PostedAt.IsZero() {
		j.PostedAt = now
	}

	_, err := s.c.InsertOne(ctx, j)
	return err
}

// Update replaces the editable fields of a job.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, j models.Job) error {
	update := bson.M{
		"$set": bson.M{
			"title":        j.Title,
			"department":   j.Department,
			"location":     j.Location,
			"type":         j.Type,
			"experience":   j.Experience,
			"description":  j.Description,
			"requirements": j.Requirements,
			"is_published": j.IsPublished,
			"is_active":    j.IsActive,
			"posted_at":    j.PostedAt,
			"updated_at":   time.Now().UTC(),
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

// Delete removes a job.
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

// GetByID returns a job by id regardless of visibility.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Job, error) {
	var j models.Job
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&j)
	if err != nil {
		return models.Job{}, err
	}
	return j, nil
}

// GetVisibleByID returns a job by id only if publicly visible.
func (s *Store) GetVisibleByID(ctx context.Context, id primitive.ObjectID) (models.Job, error) {
	filter := visibleFilter()
	filter["_id"] = id

	var j models.Job
	err := s.c.FindOne(ctx, filter).Decode(&j)
	if err != nil {
		return models.Job{}, err
	}
	return j, nil
}

// GetAll returns all jobs for the admin, newest posting first.
func (s *Store) GetAll(ctx context.Context) ([]models.Job, error) {
	opts := options.Find().SetSort(bson.D{{Key: "posted_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var jobs []models.Job
	if err := cur.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetVisible returns the publicly visible jobs, newest posting first.
func (s *Store) GetVisible(ctx context.Context) ([]models.Job, error) {
	opts := options.Find().SetSort(bson.D{{Key: "posted_at", Value: -1}})
	cur, err := s.c.Find(ctx, visibleFilter(), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var jobs []models.Job
	if err := cur.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// Count returns the number of jobs.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

// CountVisible returns the number of publicly visible jobs.
func (s *Store) CountVisible(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, visibleFilter())
}
