// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"strings"

	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/lexsite/lexsite/internal/app/resources"
	adminstore "github.com/lexsite/lexsite/internal/app/store/admins"
	"github.com/lexsite/lexsite/internal/app/system/authutil"
	"github.com/lexsite/lexsite/internal/app/system/tasks"
	"github.com/lexsite/lexsite/internal/domain/models"
)

// Startup runs once after the schema is ensured, before the HTTP handler
// is built. It loads shared templates, seeds the configured admin account
// so a fresh deployment has a way into the console, and starts the
// background task runner. A non-nil error aborts startup.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	if appCfg.SeedAdminEmail != "" {
		if err := ensureAdminAccount(ctx, deps, appCfg, logger); err != nil {
			logger.Error("failed to seed admin account", zap.Error(err))
			return err
		}
	}

	startTaskRunner(deps.MongoDatabase, logger)

	return nil
}

// taskRunner is the global task runner instance, used for graceful shutdown.
var taskRunner *tasks.Runner

// startTaskRunner initializes and starts the background task runner.
func startTaskRunner(db *mongo.Database, logger *zap.Logger) {
	taskRunner = tasks.New(logger)

	taskRunner.Register(tasks.RateLimitCleanupJob(db, logger))

	taskRunner.Start()
}

// ensureAdminAccount ensures an active admin exists with the configured
// email. An existing account is left untouched; a missing one is created
// with the configured initial password.
func ensureAdminAccount(ctx context.Context, deps DBDeps, appCfg AppConfig, logger *zap.Logger) error {
	admins := adminstore.New(deps.MongoDatabase)

	email := strings.ToLower(strings.TrimSpace(appCfg.SeedAdminEmail))
	name := appCfg.SeedAdminName
	if name == "" {
		name = "Admin"
	}

	existing, err := admins.GetByEmail(ctx, email)
	if err == nil {
		logger.Debug("admin account already exists",
			zap.String("email", email),
			zap.String("admin_id", existing.ID.Hex()))
		return nil
	}
	if err != mongo.ErrNoDocuments {
		return err
	}

	if appCfg.SeedAdminPassword == "" {
		logger.Warn("seed_admin_email set but seed_admin_password empty; skipping admin seeding",
			zap.String("email", email))
		return nil
	}
	if err := authutil.ValidatePassword(appCfg.SeedAdminPassword); err != nil {
		return err
	}

	hash, err := authutil.HashPassword(appCfg.SeedAdminPassword)
	if err != nil {
		return err
	}

	admin := models.Admin{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		Status:       models.StatusActive,
	}
	if err := admins.Create(ctx, &admin); err != nil {
		return err
	}

	logger.Info("created admin account",
		zap.String("email", email),
		zap.String("admin_id", admin.ID.Hex()))
	return nil
}
