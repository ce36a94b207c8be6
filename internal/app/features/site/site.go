// Package site serves the public website: home page, practice areas,
// team, careers, blog, contact, gallery, and free-form pages.
package site

import (
	"html/template"
	"net/http"
	"time"

	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	errorsfeature "github.com/lexsite/lexsite/internal/app/features/errors"
	blogcategorystore "github.com/lexsite/lexsite/internal/app/store/blogcategories"
	blogpoststore "github.com/lexsite/lexsite/internal/app/store/blogposts"
	clientstore "github.com/lexsite/lexsite/internal/app/store/clients"
	gallerystore "github.com/lexsite/lexsite/internal/app/store/gallery"
	jobstore "github.com/lexsite/lexsite/internal/app/store/jobs"
	pagestore "github.com/lexsite/lexsite/internal/app/store/pages"
	practiceareastore "github.com/lexsite/lexsite/internal/app/store/practiceareas"
	sliderstore "github.com/lexsite/lexsite/internal/app/store/sliders"
	teammemberstore "github.com/lexsite/lexsite/internal/app/store/teammembers"
	"github.com/lexsite/lexsite/internal/app/system/htmlsanitize"
	"github.com/lexsite/lexsite/internal/app/system/markdown"
	"github.com/lexsite/lexsite/internal/app/system/sections"
	"github.com/lexsite/lexsite/internal/app/system/viewdata"
	"github.com/lexsite/lexsite/internal/domain/models"
)

// Handler serves the public pages.
type Handler struct {
	db            *mongo.Database
	pages         *pagestore.Store
	practiceAreas *practiceareastore.Store
	teamMembers   *teammemberstore.Store
	jobs          *jobstore.Store
	sliders       *sliderstore.Store
	gallery       *gallerystore.Store
	clients       *clientstore.Store
	blogPosts     *blogpoststore.Store
	blogCats      *blogcategorystore.Store
	files         storage.Store
	errLog        *errorsfeature.ErrorLogger
	logger        *zap.Logger
	baseURL       string
}

// NewHandler creates the public site handler.
func NewHandler(db *mongo.Database, files storage.Store, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		db:            db,
		pages:         pagestore.New(db),
		practiceAreas: practiceareastore.New(db),
		teamMembers:   teammemberstore.New(db),
		jobs:          jobstore.New(db),
		sliders:       sliderstore.New(db),
		gallery:       gallerystore.New(db),
		clients:       clientstore.New(db),
		blogPosts:     blogpoststore.New(db),
		blogCats:      blogcategorystore.New(db),
		files:         files,
		errLog:        errLog,
		logger:        logger,
	}
}

// Routes mounts the public site routes on a fresh router.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.home)
	r.Get("/practice-areas", h.listPracticeAreas)
	r.Get("/practice-areas/{slug}", h.showPracticeArea)
	r.Get("/team", h.listTeam)
	r.Get("/team/{id}", h.showTeamMember)
	r.Get("/careers", h.listCareers)
	r.Get("/careers/{id}", h.showCareer)
	r.Get("/blog", h.listBlog)
	r.Get("/blog/{slug}", h.showBlogPost)
	r.Get("/contact", h.contact)
	r.Get("/gallery", h.showGallery)
	r.Get("/p/{slug}", h.showPage)
	r.Get("/sitemap.xml", h.sitemap)

	return r
}

// fileURL resolves a storage path to a servable URL.
func (h *Handler) fileURL(path string) string {
	if path == "" {
		return ""
	}
	return h.files.URL(path)
}

// sectionData loads the supporting entities the home page sections can
// reference. Each load failure degrades that section rather than failing
// the page.
func (h *Handler) sectionData(r *http.Request, cfg *models.SiteConfig) *sections.Data {
	ctx := r.Context()
	data := &sections.Data{
		Config:  cfg,
		FileURL: h.fileURL,
	}

	var err error
	if data.Sliders, err = h.sliders.GetActive(ctx); err != nil {
		h.logger.Warn("failed to load sliders for sections", zap.Error(err))
	}
	if data.PracticeAreas, err = h.practiceAreas.GetHome(ctx); err != nil {
		h.logger.Warn("failed to load practice areas for sections", zap.Error(err))
	}
	if data.Posts, err = h.blogPosts.GetPublished(ctx, "", 3); err != nil {
		h.logger.Warn("failed to load posts for sections", zap.Error(err))
	}
	if data.Clients, err = h.clients.GetActive(ctx); err != nil {
		h.logger.Warn("failed to load clients for sections", zap.Error(err))
	}
	return data
}

// SectionPageVM is the view model for a section-composed page.
type SectionPageVM struct {
	viewdata.BaseVM
	Rendered template.HTML
}

// home renders the home page from its stored section list.
func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	page, err := h.pages.GetPublishedBySlug(r.Context(), models.PageSlugHome)
	if err != nil && err != mongo.ErrNoDocuments {
		h.errLog.Log(r, "failed to load home page", err)
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	vm := SectionPageVM{BaseVM: viewdata.New(r)}
	vm.Title = vm.SiteName
	if err == nil {
		cfg := viewdata.GetConfig(r.Context(), h.db)
		vm.Rendered = sections.RenderAll(page.Sections, h.sectionData(r, &cfg))
		if page.MetaDescription != "" {
			vm.MetaDescription = page.MetaDescription
		}
	}

	templates.Render(w, r, "site/home", vm)
}

// PracticeAreasVM lists all practice areas.
type PracticeAreasVM struct {
	viewdata.BaseVM
	Areas []practiceAreaCardVM
}

type practiceAreaCardVM struct {
	Title            string
	Slug             string
	ShortDescription string
	Icon             string
	ImageURL         string
}

func (h *Handler) listPracticeAreas(w http.ResponseWriter, r *http.Request) {
	areas, err := h.practiceAreas.GetAll(r.Context())
	if err != nil {
		h.errLog.Log(r, "failed to list practice areas", err)
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	vm := PracticeAreasVM{BaseVM: viewdata.New(r)}
	vm.Title = "Practice Areas"
	for _, a := range areas {
		vm.Areas = append(vm.Areas, practiceAreaCardVM{
			Title:            a.Title,
			Slug:             a.Slug,
			ShortDescription: a.ShortDescription,
			Icon:             a.Icon,
			ImageURL:         h.fileURL(a.ImagePath),
		})
	}
	templates.Render(w, r, "site/practice_areas", vm)
}

// PracticeAreaVM is the detail view for one practice area.
type PracticeAreaVM struct {
	viewdata.BaseVM
	Area     models.PracticeArea
	Body     template.HTML
	ImageURL string
}

func (h *Handler) showPracticeArea(w http.ResponseWriter, r *http.Request) {
	area, err := h.practiceAreas.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err == mongo.ErrNoDocuments {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.errLog.Log(r, "failed to load practice area", err)
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	vm := PracticeAreaVM{
		BaseVM:   viewdata.New(r),
		Area:     area,
		Body:     markdown.ToHTML(area.FullDescription),
		ImageURL: h.fileURL(area.ImagePath),
	}
	vm.Title = area.Title
	if area.ShortDescription != "" {
		vm.MetaDescription = area.ShortDescription
	}
	templates.Render(w, r, "site/practice_area", vm)
}

// TeamVM lists the whole team.
type TeamVM struct {
	viewdata.BaseVM
	Members []teamCardVM
}

type teamCardVM struct {
	ID          string
	Name        string
	Designation string
	PhotoURL    string
}

func (h *Handler) listTeam(w http.ResponseWriter, r *http.Request) {
	members, err := h.teamMembers.GetAll(r.Context())
	if err != nil {
		h.errLog.Log(r, "failed to list team members", err)
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	vm := TeamVM{BaseVM: viewdata.New(r)}
	vm.Title = "Our Team"
	for _, m := range members {
		vm.Members = append(vm.Members, teamCardVM{
			ID:          m.ID.Hex(),
			Name:        m.Name,
			Designation: m.Designation,
			PhotoURL:    h.fileURL(m.PhotoPath),
		})
	}
	templates.Render(w, r, "site/team", vm)
}

// TeamMemberVM is the profile view for one team member.
type TeamMemberVM struct {
	viewdata.BaseVM
	Member   models.TeamMember
	Bio      template.HTML
	PhotoURL string
}

func (h *Handler) showTeamMember(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	member, err := h.teamMembers.GetByID(r.Context(), id)
	if err == mongo.ErrNoDocuments {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.errLog.Log(r, "failed to load team member", err)
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	vm := TeamMemberVM{
		BaseVM:   viewdata.New(r),
		Member:   member,
		Bio:      markdown.ToHTML(member.Bio),
		PhotoURL: h.fileURL(member.PhotoPath),
	}
	vm.Title = member.Name
	templates.Render(w, r, "site/team_member", vm)
}

// CareersVM lists open positions. Only published and active jobs appear.
type CareersVM struct {
	viewdata.BaseVM
	Jobs []models.Job
}

func (h *Handler) listCareers(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobs.GetVisible(r.Context())
	if err != nil {
		h.errLog.Log(r, "failed to list jobs", err)
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	vm := CareersVM{BaseVM: viewdata.New(r), Jobs: jobs}
	vm.Title = "Careers"
	templates.Render(w, r, "site/careers", vm)
}

// CareerVM is the detail view for one opening, with its application form.
type CareerVM struct {
	viewdata.BaseVM
	Job         models.Job
	Description template.HTML
}

func (h *Handler) showCareer(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	job, err := h.jobs.GetVisibleByID(r.Context(), id)
	if err == mongo.ErrNoDocuments {
		// Unpublished or closed jobs are indistinguishable from absent ones.
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.errLog.Log(r, "failed to load job", err)
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	vm := CareerVM{
		BaseVM:      viewdata.New(r),
		Job:         job,
		Description: markdown.ToHTML(job.Description),
	}
	vm.Title = job.Title
	templates.Render(w, r, "site/career", vm)
}

// BlogVM lists published posts, optionally filtered by category.
type BlogVM struct {
	viewdata.BaseVM
	Posts      []blogCardVM
	Categories []models.BlogCategory
	Category   string
}

type blogCardVM struct {
	Title       string
	Slug        string
	Excerpt     string
	Category    string
	Author      string
	ReadTime    int
	PublishedAt *time.Time
	CoverURL    string
}

func (h *Handler) listBlog(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	posts, err := h.blogPosts.GetPublished(r.Context(), category, 0)
	if err != nil {
		h.errLog.Log(r, "failed to list blog posts", err)
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	cats, err := h.blogCats.GetAll(r.Context())
	if err != nil {
		h.logger.Warn("failed to load blog categories", zap.Error(err))
	}

	vm := BlogVM{
		BaseVM:     viewdata.New(r),
		Categories: cats,
		Category:   category,
	}
	vm.Title = "Blog"
	for _, p := range posts {
		vm.Posts = append(vm.Posts, blogCardVM{
			Title:       p.Title,
			Slug:        p.Slug,
			Excerpt:     p.Excerpt,
			Category:    p.Category,
			Author:      p.Author,
			ReadTime:    p.ReadTime,
			PublishedAt: p.PublishedAt,
			CoverURL:    h.fileURL(p.CoverPath),
		})
	}
	templates.Render(w, r, "site/blog", vm)
}

// BlogPostVM is the article view. Fetching it counts a view.
type BlogPostVM struct {
	viewdata.BaseVM
	Post     models.BlogPost
	Body     template.HTML
	CoverURL string
}

func (h *Handler) showBlogPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.blogPosts.GetPublishedBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err == mongo.ErrNoDocuments {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.errLog.Log(r, "failed to load blog post", err)
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	vm := BlogPostVM{
		BaseVM:   viewdata.New(r),
		Post:     post,
		Body:     markdown.ToHTML(post.Body),
		CoverURL: h.fileURL(post.CoverPath),
	}
	vm.Title = post.Title
	if post.SEO.MetaTitle != "" {
		vm.Title = post.SEO.MetaTitle
	}
	vm.MetaDescription = post.SEO.MetaDescription
	if vm.MetaDescription == "" {
		vm.MetaDescription = post.Excerpt
	}
	templates.Render(w, r, "site/blog_post", vm)
}

// ContactVM feeds the appointment form with live practice area and team
// member names.
type ContactVM struct {
	viewdata.BaseVM
	Areas   []models.PracticeArea
	Members []models.TeamMember
}

func (h *Handler) contact(w http.ResponseWriter, r *http.Request) {
	vm := ContactVM{BaseVM: viewdata.New(r)}
	vm.Title = "Contact Us"

	var err error
	if vm.Areas, err = h.practiceAreas.GetAll(r.Context()); err != nil {
		h.logger.Warn("failed to load practice areas for contact form", zap.Error(err))
	}
	if vm.Members, err = h.teamMembers.GetAll(r.Context()); err != nil {
		h.logger.Warn("failed to load team members for contact form", zap.Error(err))
	}

	templates.Render(w, r, "site/contact", vm)
}

// GalleryVM shows the image gallery.
type GalleryVM struct {
	viewdata.BaseVM
	Items []galleryItemVM
}

type galleryItemVM struct {
	Title   string
	Caption string
	URL     string
}

func (h *Handler) showGallery(w http.ResponseWriter, r *http.Request) {
	items, err := h.gallery.GetVisible(r.Context())
	if err != nil {
		h.errLog.Log(r, "failed to load gallery", err)
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	vm := GalleryVM{BaseVM: viewdata.New(r)}
	vm.Title = "Gallery"
	for _, item := range items {
		vm.Items = append(vm.Items, galleryItemVM{
			Title:   item.Title,
			Caption: item.Caption,
			URL:     h.fileURL(item.ImagePath),
		})
	}

	templates.Render(w, r, "site/gallery", vm)
}

// PageVM renders a free-form page: its section list when present, else
// its legacy HTML content.
type PageVM struct {
	viewdata.BaseVM
	Page     models.Page
	Rendered template.HTML
	Content  template.HTML
}

func (h *Handler) showPage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	page, err := h.pages.GetPublishedBySlug(r.Context(), slug)
	if err == mongo.ErrNoDocuments {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.errLog.Log(r, "failed to load page", err)
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	vm := PageVM{BaseVM: viewdata.New(r), Page: page}
	vm.Title = page.Title
	if page.MetaTitle != "" {
		vm.Title = page.MetaTitle
	}
	vm.MetaDescription = page.MetaDescription

	if len(page.Sections) > 0 {
		cfg := viewdata.GetConfig(r.Context(), h.db)
		vm.Rendered = sections.RenderAll(page.Sections, h.sectionData(r, &cfg))
	} else {
		vm.Content = htmlsanitize.PrepareForDisplay(page.Content)
	}

	templates.Render(w, r, "site/page", vm)
}
