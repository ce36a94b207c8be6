// internal/app/system/seeding/seeding.go
package seeding

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	pagestore "github.com/lexsite/lexsite/internal/app/store/pages"
	siteconfigstore "github.com/lexsite/lexsite/internal/app/store/siteconfig"
	"github.com/lexsite/lexsite/internal/app/system/sections"
	"github.com/lexsite/lexsite/internal/domain/models"
)

// SeedAll seeds default data if not already present.
func SeedAll(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	if err := seedSiteConfig(ctx, db, logger); err != nil {
		return err
	}
	if err := seedPages(ctx, db, logger); err != nil {
		return err
	}
	return nil
}

// seedSiteConfig writes the default config document when none exists, so the
// admin always has something to edit.
func seedSiteConfig(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	store := siteconfigstore.New(db)

	exists, err := store.Exists(ctx)
	if err != nil {
		logger.Error("failed to check if site config exists", zap.Error(err))
		return err
	}
	if exists {
		return nil
	}

	if err := store.Save(ctx, *siteconfigstore.Defaults()); err != nil {
		logger.Error("failed to seed site config", zap.Error(err))
		return err
	}
	logger.Info("seeded default site config")
	return nil
}

// seedPages creates default pages if they don't exist.
func seedPages(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	store := pagestore.New(db)

	defaultPages := []models.Page{
		{
			Slug:        models.PageSlugHome,
			Title:       "Home",
			Sections:    sections.DefaultHome(),
			IsPublished: true,
		},
		{
			Slug:        "privacy",
			Title:       "Privacy Policy",
			Sections:    []models.Section{},
			Content: `<h2>Privacy Policy</h2>
<p>This page should contain your Privacy Policy. An administrator should update this content.</p>`,
			IsPublished: true,
		},
		{
			Slug:        "terms",
			Title:       "Terms of Use",
			Sections:    []models.Section{},
			Content: `<h2>Terms of Use</h2>
<p>This page should contain your Terms of Use. An administrator should update this content.</p>`,
			IsPublished: true,
		},
	}

	for _, page := range defaultPages {
		exists, err := store.Exists(ctx, page.Slug)
		if err != nil {
			logger.Error("failed to check if page exists",
				zap.String("slug", page.Slug),
				zap.Error(err))
			return err
		}
		if !exists {
			if err := store.Upsert(ctx, page); err != nil {
				logger.Error("failed to seed page",
					zap.String("slug", page.Slug),
					zap.Error(err))
				return err
			}
			logger.Info("seeded default page", zap.String("slug", page.Slug))
		}
	}

	return nil
}
