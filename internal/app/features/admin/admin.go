// Package admin serves the content management console. The console pages
// are thin shells: they render server-side chrome and entity descriptors,
// and admin.js drives the JSON API for the actual data operations. The one
// exception is the page section editor, which is rendered server-side so
// every stored section, known type or not, stays editable.
package admin

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	pagestore "github.com/lexsite/lexsite/internal/app/store/pages"
	"github.com/lexsite/lexsite/internal/app/system/auth"
	"github.com/lexsite/lexsite/internal/app/system/viewdata"
)

// Handler provides the admin console handlers.
type Handler struct {
	db     *mongo.Database
	pages  *pagestore.Store
	logger *zap.Logger
}

// NewHandler creates the admin console handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		db:     db,
		pages:  pagestore.New(db),
		logger: logger,
	}
}

// Routes mounts the admin console. Everything requires the admin role.
func Routes(h *Handler, sessionMgr *auth.SessionManager) http.Handler {
	r := chi.NewRouter()
	r.Use(sessionMgr.RequireRole("admin"))

	r.Get("/", h.dashboard)
	r.Get("/pages", h.listPages)
	r.Get("/pages/{id}", h.editPage)
	r.Get("/{entity}", h.manage)

	return r
}

// entityDesc describes one managed entity for the console shell. admin.js
// keys its table columns and form fields off Key.
type entityDesc struct {
	Key   string
	Title string
	API   string
}

// manageable maps the console path segment to its descriptor. Pages are
// absent on purpose: they have their own server-rendered editor.
var manageable = map[string]entityDesc{
	"config":          {Key: "config", Title: "Site Settings", API: "/api/config"},
	"practice-areas":  {Key: "practice-areas", Title: "Practice Areas", API: "/api/practice-areas"},
	"team":            {Key: "team", Title: "Team Members", API: "/api/team"},
	"jobs":            {Key: "jobs", Title: "Jobs", API: "/api/jobs"},
	"applicants":      {Key: "applicants", Title: "Applicants", API: "/api/applicants"},
	"appointments":    {Key: "appointments", Title: "Appointments", API: "/api/appointments"},
	"sliders":         {Key: "sliders", Title: "Sliders", API: "/api/sliders"},
	"gallery":         {Key: "gallery", Title: "Gallery", API: "/api/gallery"},
	"clients":         {Key: "clients", Title: "Clients", API: "/api/clients"},
	"blog-posts":      {Key: "blog-posts", Title: "Blog Posts", API: "/api/blog/posts"},
	"blog-categories": {Key: "blog-categories", Title: "Blog Categories", API: "/api/blog/categories"},
	"admins":          {Key: "admins", Title: "Admin Accounts", API: "/api/admins"},
}

// navEntry is one sidebar link.
type navEntry struct {
	Path  string
	Title string
}

// adminNav is the sidebar, in display order.
var adminNav = []navEntry{
	{Path: "/admin", Title: "Dashboard"},
	{Path: "/admin/config", Title: "Site Settings"},
	{Path: "/admin/pages", Title: "Pages"},
	{Path: "/admin/practice-areas", Title: "Practice Areas"},
	{Path: "/admin/team", Title: "Team Members"},
	{Path: "/admin/sliders", Title: "Sliders"},
	{Path: "/admin/jobs", Title: "Jobs"},
	{Path: "/admin/applicants", Title: "Applicants"},
	{Path: "/admin/appointments", Title: "Appointments"},
	{Path: "/admin/gallery", Title: "Gallery"},
	{Path: "/admin/clients", Title: "Clients"},
	{Path: "/admin/blog-posts", Title: "Blog Posts"},
	{Path: "/admin/blog-categories", Title: "Blog Categories"},
	{Path: "/admin/admins", Title: "Admin Accounts"},
}

// AdminVM is the base view model for console pages.
type AdminVM struct {
	viewdata.BaseVM
	Nav []navEntry
}

func (h *Handler) baseVM(r *http.Request, title string) AdminVM {
	vm := AdminVM{BaseVM: viewdata.New(r), Nav: adminNav}
	vm.Title = title
	return vm
}

// dashboard renders the stats overview. The numbers come from /api/stats.
func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	vm := h.baseVM(r, "Dashboard")
	templates.Render(w, r, "admin/dashboard", vm)
}

// ManageVM is the view model for the generic entity manager shell.
type ManageVM struct {
	AdminVM
	Entity entityDesc
}

func (h *Handler) manage(w http.ResponseWriter, r *http.Request) {
	desc, ok := manageable[chi.URLParam(r, "entity")]
	if !ok {
		http.NotFound(w, r)
		return
	}

	vm := ManageVM{AdminVM: h.baseVM(r, desc.Title), Entity: desc}
	templates.Render(w, r, "admin/manage", vm)
}
