// internal/app/store/applicants/applicantstore.go
package applicantstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lexsite/lexsite/internal/domain/models"
)

// Store provides access to the applicants collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new applicant store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("applicants")}
}

// Create inserts a new applicant with status "new". Used by the public
// application form after validation.
func (s *Store) Create(ctx context.Context, a *models.Applicant) error {
	now := time.Now().UTC()
	a.ID = primitive.NewObjectID()
	if a.Status == "" {
		a.Status = models.ApplicantStatusNew
	}
	a.CreatedAt = now
	a.UpdatedAt = now

	_, err := s.c.InsertOne(ctx, a)
	return err
}

// UpdateStatus moves an applicant through the review pipeline.
func (s *Store) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	update := bson.M{
		"$set": bson.M{
			"status":     status,
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

// Delete removes an applicant.
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

// GetByID returns an applicant by id.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Applicant, error) {
	var a models.Applicant
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err != nil {
		return models.Applicant{}, err
	}
	return a, nil
}

// GetAll returns all applicants, newest first.
func (s *Store) GetAll(ctx context.Context) ([]models.Applicant, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var applicants []models.Applicant
	if err := cur.All(ctx, &applicants); err != nil {
		return nil, err
	}
	return applicants, nil
}

// GetByJob returns the applicants for one job, newest first.
func (s *Store) GetByJob(ctx context.Context, jobID primitive.ObjectID) ([]models.Applicant, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"job_id": jobID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var applicants []models.Applicant
	if err := cur.All(ctx, &applicants); err != nil {
		return nil, err
	}
	return applicants, nil
}

// Count returns the number of applicants.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

// CountByStatus returns the number of applicants in one status.
func (s *Store) CountByStatus(ctx context.Context, status string) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"status": status})
}
