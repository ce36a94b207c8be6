// internal/app/store/admins/fetcher.go
package adminstore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/lexsite/lexsite/internal/app/system/auth"
	"github.com/lexsite/lexsite/internal/app/system/normalize"
	"github.com/lexsite/lexsite/internal/app/system/timeouts"
	"github.com/lexsite/lexsite/internal/domain/models"
)

// Fetcher implements auth.UserFetcher to load fresh admin data on each
// request, so role changes and disabled accounts take effect immediately.
type Fetcher struct {
	admins *mongo.Collection
	logger *zap.Logger
}

// NewFetcher creates a UserFetcher that queries the given database.
func NewFetcher(db *mongo.Database, logger *zap.Logger) *Fetcher {
	return &Fetcher{
		admins: db.Collection("admins"),
		logger: logger,
	}
}

// FetchUser retrieves an admin by ID and returns nil if not found, disabled,
// or on any error. This implements auth.UserFetcher.
func (f *Fetcher) FetchUser(ctx context.Context, userID string) *auth.SessionUser {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, timeouts.Short())
	defer cancel()

	var a models.Admin
	proj := options.FindOne().SetProjection(bson.M{
		"_id":    1,
		"name":   1,
		"email":  1,
		"role":   1,
		"status": 1,
	})

	if err := f.admins.FindOne(ctx, bson.M{"_id": oid}, proj).Decode(&a); err != nil {
		return nil
	}

	if normalize.Status(a.Status) == "disabled" {
		return nil
	}

	return &auth.SessionUser{
		ID:    a.ID.Hex(),
		Name:  a.Name,
		Email: a.Email,
		Role:  normalize.Role(a.Role),
	}
}
