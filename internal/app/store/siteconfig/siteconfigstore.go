// internal/app/store/siteconfig/siteconfigstore.go
package siteconfigstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lexsite/lexsite/internal/domain/models"
)

// Store provides access to the site_config collection. The config is a
// singleton document: Get returns defaults when it does not exist yet, and
// Save upserts against a fixed singleton filter so there is never more than
// one document.
type Store struct {
	c *mongo.Collection
}

// New creates a new site config store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("site_config")}
}

// Get returns the site config, or defaults if none has been saved.
func (s *Store) Get(ctx context.Context) (*models.SiteConfig, error) {
	var cfg models.SiteConfig
	err := s.c.FindOne(ctx, bson.M{"singleton": true}).Decode(&cfg)
	if err == mongo.ErrNoDocuments {
		return Defaults(), nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Exists checks if a config document has been saved.
func (s *Store) Exists(ctx context.Context) (bool, error) {
	count, err := s.c.CountDocuments(ctx, bson.M{"singleton": true})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save replaces the site config. The whole document is written at once; the
// admin UI always submits the full config.
func (s *Store) Save(ctx context.Context, cfg models.SiteConfig) error {
	now := time.Now().UTC()
	cfg.UpdatedAt = &now

	filter := bson.M{"singleton": true}
	update := bson.M{
		"$set": bson.M{
			"singleton":            true,
			"site_name":            cfg.SiteName,
			"tagline":              cfg.Tagline,
			"logo_path":            cfg.LogoPath,
			"logo_name":            cfg.LogoName,
			"email":                cfg.Email,
			"phone":                cfg.Phone,
			"address":              cfg.Address,
			"maps_embed":           cfg.MapsEmbed,
			"social":               cfg.Social,
			"disclaimer_enabled":   cfg.DisclaimerEnabled,
			"disclaimer_text":      cfg.DisclaimerText,
			"theme":                cfg.Theme,
			"show_header_phone":    cfg.ShowHeaderPhone,
			"show_footer_newsfeed": cfg.ShowFooterNewsfeed,
			"menu":                 cfg.Menu,
			"clients_title":        cfg.ClientsTitle,
			"clients_subtitle":     cfg.ClientsSubtitle,
			"updated_at":           cfg.UpdatedAt,
			"updated_by_id":        cfg.UpdatedByID,
			"updated_by_name":      cfg.UpdatedByName,
		},
		"$setOnInsert": bson.M{
			"_id": primitive.NewObjectID(),
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx, filter, update, opts)
	return err
}

// Defaults returns the config used before an admin has saved one.
func Defaults() *models.SiteConfig {
	return &models.SiteConfig{
		SiteName: models.DefaultSiteName,
		Theme: models.Theme{
			Mode: models.ThemeModeLight,
		},
		Menu:         models.DefaultMenu(),
		ClientsTitle: "Our Clients",
	}
}
