// Package api provides the JSON admin and public API.
//
// All admin endpoints require a signed-in admin; the session check runs
// before any store access so an unauthorized request never touches the
// database. Public endpoints (appointment booking, job applications) are
// mounted without the guard.
package api

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	adminstore "github.com/lexsite/lexsite/internal/app/store/admins"
	applicantstore "github.com/lexsite/lexsite/internal/app/store/applicants"
	appointmentstore "github.com/lexsite/lexsite/internal/app/store/appointments"
	blogcategorystore "github.com/lexsite/lexsite/internal/app/store/blogcategories"
	blogpoststore "github.com/lexsite/lexsite/internal/app/store/blogposts"
	clientstore "github.com/lexsite/lexsite/internal/app/store/clients"
	gallerystore "github.com/lexsite/lexsite/internal/app/store/gallery"
	jobstore "github.com/lexsite/lexsite/internal/app/store/jobs"
	pagestore "github.com/lexsite/lexsite/internal/app/store/pages"
	practiceareastore "github.com/lexsite/lexsite/internal/app/store/practiceareas"
	siteconfigstore "github.com/lexsite/lexsite/internal/app/store/siteconfig"
	sliderstore "github.com/lexsite/lexsite/internal/app/store/sliders"
	teammemberstore "github.com/lexsite/lexsite/internal/app/store/teammembers"
	"github.com/lexsite/lexsite/internal/app/system/auth"
	"github.com/lexsite/lexsite/internal/app/system/inputval"
	"github.com/lexsite/lexsite/internal/app/system/jsonutil"
	"github.com/lexsite/lexsite/internal/app/system/mailer"
)

// Handler carries the stores the API endpoints operate on.
type Handler struct {
	config        *siteconfigstore.Store
	practiceAreas *practiceareastore.Store
	teamMembers   *teammemberstore.Store
	jobs          *jobstore.Store
	applicants    *applicantstore.Store
	appointments  *appointmentstore.Store
	sliders       *sliderstore.Store
	pages         *pagestore.Store
	gallery       *gallerystore.Store
	clients       *clientstore.Store
	blogPosts     *blogpoststore.Store
	blogCats      *blogcategorystore.Store
	admins        *adminstore.Store
	files         storage.Store
	mail          *mailer.Mailer // nil disables submission notifications
	baseURL       string
	logger        *zap.Logger
}

// NewHandler creates the API handler backed by the given database and
// file storage provider. mail can be nil to disable the notification
// emails sent on public submissions.
func NewHandler(db *mongo.Database, files storage.Store, mail *mailer.Mailer, baseURL string, logger *zap.Logger) *Handler {
	return &Handler{
		config:        siteconfigstore.New(db),
		practiceAreas: practiceareastore.New(db),
		teamMembers:   teammemberstore.New(db),
		jobs:          jobstore.New(db),
		applicants:    applicantstore.New(db),
		appointments:  appointmentstore.New(db),
		sliders:       sliderstore.New(db),
		pages:         pagestore.New(db),
		gallery:       gallerystore.New(db),
		clients:       clientstore.New(db),
		blogPosts:     blogpoststore.New(db),
		blogCats:      blogcategorystore.New(db),
		admins:        adminstore.New(db),
		files:         files,
		mail:          mail,
		baseURL:       baseURL,
		logger:        logger,
	}
}

// Routes returns the full /api router. Public submission endpoints come
// first; everything else requires the admin role.
func Routes(h *Handler, sessionMgr *auth.SessionManager) http.Handler {
	r := chi.NewRouter()

	// Public endpoints - no session required.
	r.Post("/appointments", h.createAppointmentPublic)
	r.Post("/applications", h.createApplicationPublic)

	// Admin endpoints.
	r.Group(func(r chi.Router) {
		r.Use(sessionMgr.RequireRole("admin"))

		r.Get("/config", h.getConfig)
		r.Put("/config", h.putConfig)
		r.Get("/stats", h.getStats)
		r.Post("/upload", h.upload)

		r.Route("/practice-areas", func(r chi.Router) {
			r.Get("/", h.listPracticeAreas)
			r.Post("/", h.createPracticeArea)
			r.Get("/{id}", h.getPracticeArea)
			r.Put("/{id}", h.updatePracticeArea)
			r.Delete("/{id}", h.deletePracticeArea)
		})

		r.Route("/team", func(r chi.Router) {
			r.Get("/", h.listTeamMembers)
			r.Post("/", h.createTeamMember)
			r.Get("/{id}", h.getTeamMember)
			r.Put("/{id}", h.updateTeamMember)
			r.Delete("/{id}", h.deleteTeamMember)
		})

		r.Route("/jobs", func(r chi.Router) {
			r.Get("/", h.listJobs)
			r.Post("/", h.createJob)
			r.Get("/{id}", h.getJob)
			r.Put("/{id}", h.updateJob)
			r.Delete("/{id}", h.deleteJob)
		})

		r.Route("/applicants", func(r chi.Router) {
			r.Get("/", h.listApplicants)
			r.Get("/{id}", h.getApplicant)
			r.Put("/{id}/status", h.updateApplicantStatus)
			r.Delete("/{id}", h.deleteApplicant)
		})

		r.Route("/appointments", func(r chi.Router) {
			r.Get("/", h.listAppointments)
			r.Get("/{id}", h.getAppointment)
			r.Put("/{id}/status", h.updateAppointmentStatus)
			r.Delete("/{id}", h.deleteAppointment)
		})

		r.Route("/sliders", func(r chi.Router) {
			r.Get("/", h.listSliders)
			r.Post("/", h.createSlider)
			r.Get("/{id}", h.getSlider)
			r.Put("/{id}", h.updateSlider)
			r.Delete("/{id}", h.deleteSlider)
		})

		r.Route("/pages", func(r chi.Router) {
			r.Get("/", h.listPages)
			r.Post("/", h.createPage)
			r.Get("/{id}", h.getPage)
			r.Put("/{id}", h.updatePage)
			r.Delete("/{id}", h.deletePage)
			r.Put("/{id}/sections", h.putSections)
			r.Post("/{id}/sections", h.appendSection)
			r.Delete("/{id}/sections/{index}", h.removeSection)
			r.Post("/{id}/sections/{index}/move", h.moveSection)
		})

		r.Route("/gallery", func(r chi.Router) {
			r.Get("/", h.listGallery)
			r.Post("/", h.createGalleryItem)
			r.Put("/{id}", h.updateGalleryItem)
			r.Delete("/{id}", h.deleteGalleryItem)
		})

		r.Route("/clients", func(r chi.Router) {
			r.Get("/", h.listClients)
			r.Post("/", h.createClient)
			r.Get("/{id}", h.getClient)
			r.Put("/{id}", h.updateClient)
			r.Delete("/{id}", h.deleteClient)
		})

		r.Route("/blog/posts", func(r chi.Router) {
			r.Get("/", h.listBlogPosts)
			r.Post("/", h.createBlogPost)
			r.Get("/{id}", h.getBlogPost)
			r.Put("/{id}", h.updateBlogPost)
			r.Delete("/{id}", h.deleteBlogPost)
		})

		r.Route("/admins", func(r chi.Router) {
			r.Get("/", h.listAdmins)
			r.Post("/", h.createAdmin)
		})

		r.Route("/blog/categories", func(r chi.Router) {
			r.Get("/", h.listBlogCategories)
			r.Post("/", h.createBlogCategory)
			r.Put("/{id}", h.updateBlogCategory)
			r.Delete("/{id}", h.deleteBlogCategory)
		})
	})

	return r
}

// urlID parses the {id} URL parameter. On failure it writes a 404 and
// returns ok=false; a malformed id can never match a document.
func urlID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		jsonutil.NotFound(w, "not found")
		return primitive.NilObjectID, false
	}
	return id, true
}

// fieldErrors converts an inputval result into the field->message map the
// validation error response carries.
func fieldErrors(res *inputval.Result) map[string]string {
	fields := make(map[string]string, len(res.Errors))
	for _, e := range res.Errors {
		fields[e.Field] = e.Message
	}
	return fields
}

// storeError maps a store failure to the right JSON response. Not-found
// gets a 404; anything else is a store problem reported as 503.
func (h *Handler) storeError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	if err == mongo.ErrNoDocuments {
		jsonutil.NotFound(w, "not found")
		return
	}
	h.logger.Error(msg,
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
		zap.Error(err),
	)
	jsonutil.Error(w, http.StatusServiceUnavailable, "store unavailable")
}
