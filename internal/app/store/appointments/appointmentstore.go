// internal/app/store/appointments/appointmentstore.go
package appointmentstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lexsite/lexsite/internal/domain/models"
)

// Store provides access to the appointments collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new appointment store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("appointments")}
}

// Create inserts a new appointment with status "pending". Used by the public
// contact form after validation.
func (s *Store) Create(ctx context.Context, a *models.Appointment) error {
	now := time.Now().UTC()
	a.ID = primitive.NewObjectID()
	if a.Status == "" {
		a.Status = models.AppointmentStatusPending
	}
	a.CreatedAt = now
	a.UpdatedAt = now

	_, err := s.c.InsertOne(ctx, a)
	return err
}

// UpdateStatus moves an appointment through its lifecycle.
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

// Delete removes an appointment.
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

// GetByID returns an appointment by id.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Appointment, error) {
	var a models.Appointment
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err != nil {
		return models.Appointment{}, err
	}
	return a, nil
}

// GetAll returns all appointments, newest first.
func (s *Store) GetAll(ctx context.Context) ([]models.Appointment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var appts []models.Appointment
	if err := cur.All(ctx, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

// Count returns the number of appointments.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

// CountByStatus returns the number of appointments in one status.
func (s *Store) CountByStatus(ctx context.Context, status string) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"status": status})
}
