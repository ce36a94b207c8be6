// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"context"
	"html/template"
	"net/http"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/gorilla/csrf"
	"go.mongodb.org/mongo-driver/mongo"

	siteconfigstore "github.com/lexsite/lexsite/internal/app/store/siteconfig"
	"github.com/lexsite/lexsite/internal/app/system/authz"
	"github.com/lexsite/lexsite/internal/app/system/htmlsanitize"
	"github.com/lexsite/lexsite/internal/app/system/timeouts"
	"github.com/lexsite/lexsite/internal/domain/models"
)

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
type BaseVM struct {
	// Site config (from database)
	SiteName       string
	Tagline        string
	LogoURL        string
	Phone          string
	Email          string
	Address        string
	Social         models.SocialLinks
	Theme          models.Theme
	Menu           []models.MenuItem
	ShowHeaderPhone bool
	Disclaimer     template.HTML // empty unless the disclaimer gate is enabled

	// User context (from auth middleware)
	IsLoggedIn bool
	UserID     string
	Role       string
	UserName   string

	// Page context
	Title           string
	MetaDescription string
	BackURL         string
	CurrentPath     string

	// Security
	CSRFToken string // CSRF token for forms (use in hidden input field)
}

// storageProvider is set by Init and used to generate logo URLs.
var storageProvider storage.Store

// globalDB is set by Init and used by New() to load the site config.
var globalDB *mongo.Database

// Init sets the storage provider and database for viewdata.
// Call this once at startup from bootstrap.
func Init(store storage.Store, db *mongo.Database) {
	storageProvider = store
	globalDB = db
}

// New creates a BaseVM with the site config loaded from the database.
// This is the standard way to create a BaseVM for most handlers.
func New(r *http.Request) BaseVM {
	role, name, userID, signedIn := authz.UserCtx(r)

	vm := BaseVM{
		SiteName:    models.DefaultSiteName,
		Menu:        models.DefaultMenu(),
		IsLoggedIn:  signedIn,
		UserID:      userID.Hex(),
		Role:        role,
		UserName:    name,
		CurrentPath: httpnav.CurrentPath(r),
		CSRFToken:   csrf.Token(r),
	}

	if globalDB != nil {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
		defer cancel()

		cfg, err := siteconfigstore.New(globalDB).Get(ctx)
		if err == nil && cfg != nil {
			vm.applyConfig(cfg)
		}
	}

	return vm
}

// NewBaseVM creates a fully populated BaseVM with a page title and back URL.
func NewBaseVM(r *http.Request, title, backDefault string) BaseVM {
	vm := New(r)
	vm.Title = title
	vm.BackURL = httpnav.ResolveBackURL(r, backDefault)
	return vm
}

func (vm *BaseVM) applyConfig(cfg *models.SiteConfig) {
	vm.SiteName = cfg.SiteName
	vm.Tagline = cfg.Tagline
	vm.Phone = cfg.Phone
	vm.Email = cfg.Email
	vm.Address = cfg.Address
	vm.Social = cfg.Social
	vm.Theme = cfg.Theme
	vm.ShowHeaderPhone = cfg.ShowHeaderPhone
	if len(cfg.Menu) > 0 {
		vm.Menu = cfg.Menu
	}
	if cfg.DisclaimerEnabled && cfg.DisclaimerText != "" {
		vm.Disclaimer = htmlsanitize.SanitizeToHTML(cfg.DisclaimerText)
	}
	if cfg.HasLogo() && storageProvider != nil {
		vm.LogoURL = storageProvider.URL(cfg.LogoPath)
	}
}

// GetConfig returns the full site config, or defaults if not available.
func GetConfig(ctx context.Context, db *mongo.Database) models.SiteConfig {
	if db == nil {
		return *siteconfigstore.Defaults()
	}

	cfg, err := siteconfigstore.New(db).Get(ctx)
	if err != nil || cfg == nil {
		return *siteconfigstore.Defaults()
	}
	return *cfg
}
