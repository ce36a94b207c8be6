// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
We aggregate errors so any problem is visible and startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureAdmins(ctx, db); err != nil {
		problems = append(problems, "admins: "+err.Error())
	}
	if err := ensureSiteConfig(ctx, db); err != nil {
		problems = append(problems, "site_config: "+err.Error())
	}
	if err := ensurePracticeAreas(ctx, db); err != nil {
		problems = append(problems, "practice_areas: "+err.Error())
	}
	if err := ensureTeamMembers(ctx, db); err != nil {
		problems = append(problems, "team_members: "+err.Error())
	}
	if err := ensureJobs(ctx, db); err != nil {
		problems = append(problems, "jobs: "+err.Error())
	}
	if err := ensureApplicants(ctx, db); err != nil {
		problems = append(problems, "applicants: "+err.Error())
	}
	if err := ensureAppointments(ctx, db); err != nil {
		problems = append(problems, "appointments: "+err.Error())
	}
	if err := ensureSliders(ctx, db); err != nil {
		problems = append(problems, "sliders: "+err.Error())
	}
	if err := ensurePages(ctx, db); err != nil {
		problems = append(problems, "pages: "+err.Error())
	}
	if err := ensureGallery(ctx, db); err != nil {
		problems = append(problems, "gallery: "+err.Error())
	}
	if err := ensureClients(ctx, db); err != nil {
		problems = append(problems, "clients: "+err.Error())
	}
	if err := ensureBlogPosts(ctx, db); err != nil {
		problems = append(problems, "blog_posts: "+err.Error())
	}
	if err := ensureBlogCategories(ctx, db); err != nil {
		problems = append(problems, "blog_categories: "+err.Error())
	}
	if err := ensureRateLimits(ctx, db); err != nil {
		problems = append(problems, "rate_limits: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

/* -------------------------------------------------------------------------- */
/* Core helper: reconcile a set of desired indexes for one collection         */
/* -------------------------------------------------------------------------- */

type existingIndex struct {
	Name   string `bson:"name"`
	Key    bson.D `bson:"key"`
	Unique *bool  `bson:"unique,omitempty"`
}

func keySig(keys bson.D) string {
	parts := make([]string, 0, len(keys))
	for _, kv := range keys {
		parts = append(parts, fmt.Sprintf("%s:%v", kv.Key, kv.Value))
	}
	return strings.Join(parts, ", ")
}

func sameBoolPtr(a, b *bool) bool {
	av := false
	bv := false
	if a != nil {
		av = *a
	}
	if b != nil {
		bv = *b
	}
	return av == bv
}

// Best-effort duplicate-detector (works cross-vendors)
func isDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 { // E11000 duplicate key error index
				return true
			}
		}
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == 11000 {
		return true
	}
	s := err.Error()
	return strings.Contains(s, "E11000") || strings.Contains(strings.ToLower(s), "duplicate key")
}

// Mongo/DocDB sometimes returns IndexOptionsConflict when an index with the
// same keys already exists under a different name (or options differ).
func isOptionsConflictErr(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "IndexOptionsConflict")
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) error {
	var errs []string

	for _, m := range models {
		var desiredName string
		var desiredUnique *bool
		if m.Options != nil {
			if m.Options.Name != nil {
				desiredName = *m.Options.Name
			}
			if m.Options.Unique != nil {
				desiredUnique = m.Options.Unique
			}
		}
		desiredSig := keySig(m.Keys.(bson.D))

		start := time.Now()
		zap.L().Info("ensuring index",
			zap.String("collection", coll.Name()),
			zap.String("name", desiredName),
			zap.String("keys", desiredSig),
			zap.Bool("unique", desiredUnique != nil && *desiredUnique))

		// 1) Load existing indexes
		existing := map[string]existingIndex{} // sig -> index
		cur, err := coll.Indexes().List(ctx)
		if err == nil {
			defer cur.Close(ctx)
			for cur.Next(ctx) {
				var idx existingIndex
				if err := cur.Decode(&idx); err != nil {
					zap.L().Warn("failed to decode existing index",
						zap.String("collection", coll.Name()),
						zap.Error(err))
					continue
				}
				existing[keySig(idx.Key)] = idx
			}
		}

		if ex, ok := existing[desiredSig]; ok {
			// Same key pattern exists already.
			if sameBoolPtr(desiredUnique, ex.Unique) {
				// Names aligned (or we don't care) → reuse
				zap.L().Info("reusing existing index",
					zap.String("collection", coll.Name()),
					zap.String("name", ex.Name),
					zap.String("keys", desiredSig),
					zap.Bool("unique", ex.Unique != nil && *ex.Unique),
					zap.String("took", time.Since(start).String()))
				continue
			}

			// Options mismatch (e.g., upgrading to unique). Drop & recreate.
			if _, err := coll.Indexes().DropOne(ctx, ex.Name); err != nil {
				zap.L().Warn("drop existing index failed",
					zap.String("collection", coll.Name()),
					zap.String("name", ex.Name),
					zap.String("keys", desiredSig),
					zap.Error(err))
				errs = append(errs, fmt.Sprintf("%s(%s): drop failed: %v", coll.Name(), desiredName, err))
				continue
			}
			if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
				if isDuplicateKeyErr(err) && desiredUnique != nil && *desiredUnique {
					errs = append(errs, fmt.Sprintf("%s(%s): cannot create unique index (duplicates present)", coll.Name(), desiredName))
				} else {
					errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), desiredName, err))
				}
				continue
			}
			zap.L().Info("index dropped and recreated",
				zap.String("collection", coll.Name()),
				zap.String("name", desiredName),
				zap.String("keys", desiredSig),
				zap.Bool("unique", desiredUnique != nil && *desiredUnique),
				zap.String("took", time.Since(start).String()))
			continue
		}

		// 2) No existing index with the same keys: create it.
		if created, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			if isOptionsConflictErr(err) {
				zap.L().Warn("index ensure failed (options conflict)",
					zap.String("collection", coll.Name()),
					zap.String("name", desiredName),
					zap.String("keys", desiredSig),
					zap.Error(err))
				errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), desiredName, err))
				continue
			}

			zap.L().Warn("index ensure failed",
				zap.String("collection", coll.Name()),
				zap.String("name", desiredName),
				zap.String("keys", desiredSig),
				zap.Bool("unique", desiredUnique != nil && *desiredUnique),
				zap.String("took", time.Since(start).String()),
				zap.Error(err))
			errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), desiredName, err))
			continue
		} else {
			zap.L().Info("index ensured",
				zap.String("collection", coll.Name()),
				zap.String("name", desiredName),
				zap.String("created_name", created),
				zap.String("keys", desiredSig),
				zap.Bool("unique", desiredUnique != nil && *desiredUnique),
				zap.String("took", time.Since(start).String()))
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

/* -------------------------------------------------------------------------- */
/* Collection-specific index sets                                              */
/* -------------------------------------------------------------------------- */

func ensureAdmins(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("admins")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Unique email (stored lowercase) for login lookups
		{
			Keys: bson.D{
				{Key: "email", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("uniq_admins_email"),
		},
		// Admin list: status + name
		{
			Keys: bson.D{
				{Key: "status", Value: 1},
				{Key: "name", Value: 1},
			},
			Options: options.Index().SetName("idx_admins_status_name"),
		},
	})
}

func ensureSiteConfig(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("site_config")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Unique singleton - only one config document
		{
			Keys: bson.D{
				{Key: "singleton", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("uniq_siteconfig_singleton"),
		},
	})
}

func ensurePracticeAreas(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("practice_areas")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Unique slug for public detail URLs
		{
			Keys: bson.D{
				{Key: "slug", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("uniq_practiceareas_slug"),
		},
		// Home page listing: show_on_home + order
		{
			Keys: bson.D{
				{Key: "show_on_home", Value: 1},
				{Key: "order", Value: 1},
			},
			Options: options.Index().SetName("idx_practiceareas_home_order"),
		},
		// Full listing by display order
		{
			Keys: bson.D{
				{Key: "order", Value: 1},
				{Key: "_id", Value: 1},
			},
			Options: options.Index().SetName("idx_practiceareas_order_id"),
		},
	})
}

func ensureTeamMembers(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("team_members")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Listing by display order
		{
			Keys: bson.D{
				{Key: "order", Value: 1},
				{Key: "_id", Value: 1},
			},
			Options: options.Index().SetName("idx_teammembers_order_id"),
		},
	})
}

func ensureJobs(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("jobs")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Public careers listing: visible jobs, newest first
		{
			Keys: bson.D{
				{Key: "is_published", Value: 1},
				{Key: "is_active", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_jobs_visible_created"),
		},
	})
}

func ensureApplicants(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("applicants")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Applicants for one opening
		{
			Keys: bson.D{
				{Key: "job_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_applicants_job_created"),
		},
		// Pipeline view by status
		{
			Keys: bson.D{
				{Key: "status", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_applicants_status_created"),
		},
	})
}

func ensureAppointments(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("appointments")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Admin inbox: status + newest first
		{
			Keys: bson.D{
				{Key: "status", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_appointments_status_created"),
		},
		// Time-based queries
		{
			Keys: bson.D{
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_appointments_created"),
		},
	})
}

func ensureSliders(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("sliders")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Hero rotation: active slides in display order
		{
			Keys: bson.D{
				{Key: "is_active", Value: 1},
				{Key: "order", Value: 1},
			},
			Options: options.Index().SetName("idx_sliders_active_order"),
		},
	})
}

func ensurePages(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("pages")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Unique slug for each page (home, privacy, terms, ...)
		{
			Keys: bson.D{
				{Key: "slug", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("uniq_pages_slug"),
		},
	})
}

func ensureGallery(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("gallery")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Gallery grid, newest first
		{
			Keys: bson.D{
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_gallery_created"),
		},
	})
}

func ensureClients(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("clients")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Logo strip: active clients in display order
		{
			Keys: bson.D{
				{Key: "is_active", Value: 1},
				{Key: "order", Value: 1},
			},
			Options: options.Index().SetName("idx_clients_active_order"),
		},
	})
}

func ensureBlogPosts(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("blog_posts")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Unique slug for public post URLs
		{
			Keys: bson.D{
				{Key: "slug", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("uniq_blogposts_slug"),
		},
		// Published listing, newest first
		{
			Keys: bson.D{
				{Key: "status", Value: 1},
				{Key: "published_at", Value: -1},
			},
			Options: options.Index().SetName("idx_blogposts_status_published"),
		},
		// Category filter on the public blog index
		{
			Keys: bson.D{
				{Key: "category", Value: 1},
				{Key: "status", Value: 1},
				{Key: "published_at", Value: -1},
			},
			Options: options.Index().SetName("idx_blogposts_category_status"),
		},
	})
}

func ensureBlogCategories(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("blog_categories")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Unique slug per category
		{
			Keys: bson.D{
				{Key: "slug", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("uniq_blogcategories_slug"),
		},
	})
}

func ensureRateLimits(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("rate_limits")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// One record per admin email
		{
			Keys: bson.D{
				{Key: "email", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("idx_ratelimit_email"),
		},
		// TTL index on last_attempt - automatically clean up old records after 24 hours
		{
			Keys: bson.D{
				{Key: "last_attempt", Value: 1},
			},
			Options: options.Index().SetExpireAfterSeconds(86400).SetName("idx_ratelimit_ttl"),
		},
	})
}
