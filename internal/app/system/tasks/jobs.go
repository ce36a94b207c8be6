// internal/app/system/tasks/jobs.go
package tasks

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// RateLimitCleanupJob creates a job that removes stale login rate-limit
// records. The collection also carries a TTL index; this job is the
// backstop for deployments where the TTL monitor is disabled.
func RateLimitCleanupJob(db *mongo.Database, logger *zap.Logger) Job {
	return Job{
		Name:     "rate-limit-cleanup",
		Interval: 6 * time.Hour,
		Run: func(ctx context.Context) error {
			coll := db.Collection("rate_limits")
			cutoff := time.Now().Add(-24 * time.Hour)
			result, err := coll.DeleteMany(ctx, bson.M{
				"last_attempt": bson.M{"$lt": cutoff},
			})
			if err != nil {
				return err
			}
			if result.DeletedCount > 0 {
				logger.Info("cleaned up stale rate-limit records",
					zap.Int64("deleted", result.DeletedCount))
			}
			return nil
		},
	}
}
