// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/lexsite/lexsite/internal/app/system/mailer"
	"github.com/dalemusser/waffle/pantry/storage"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds the backend connections. ConnectDB builds it; EnsureSchema,
// Startup, BuildHandler, and Shutdown receive it in turn.
type DBDeps struct {
	// MongoDB client and database
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	// FileStorage for uploaded files (logos, photos, resumes, gallery images)
	FileStorage storage.Store

	// Mailer for submission notification emails. Nil when disabled.
	Mailer *mailer.Mailer
}
