package site

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	errorsfeature "github.com/lexsite/lexsite/internal/app/features/errors"
	blogpoststore "github.com/lexsite/lexsite/internal/app/store/blogposts"
	gallerystore "github.com/lexsite/lexsite/internal/app/store/gallery"
	jobstore "github.com/lexsite/lexsite/internal/app/store/jobs"
	pagestore "github.com/lexsite/lexsite/internal/app/store/pages"
	practiceareastore "github.com/lexsite/lexsite/internal/app/store/practiceareas"
	"github.com/lexsite/lexsite/internal/domain/models"
	"github.com/lexsite/lexsite/internal/testutil"
)

func newSiteRouter(t *testing.T) (*Handler, *mongo.Database, http.Handler) {
	t.Helper()
	testutil.MustBootTemplates(t)

	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()

	files, err := storage.NewLocal(storage.LocalConfig{
		BasePath: t.TempDir(),
		BaseURL:  "/uploads",
	})
	if err != nil {
		t.Fatalf("failed to create local storage: %v", err)
	}

	h := NewHandler(db, files, errorsfeature.NewErrorLogger(logger), logger)
	return h, db, Routes(h)
}

func get(t *testing.T, router http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHome_RendersWithoutStoredPage(t *testing.T) {
	_, _, router := newSiteRouter(t)

	rec := get(t, router, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestHome_EmptyContentSectionsRender(t *testing.T) {
	_, db, router := newSiteRouter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Every known section type with no content at all. None of these may
	// take the page down.
	var secs []models.Section
	for _, typ := range []string{
		models.SectionHeroSlider,
		models.SectionHero,
		models.SectionAbout,
		models.SectionServicesGrid,
		models.SectionStats,
		models.SectionTestimonials,
		models.SectionBlog,
		models.SectionClientLogos,
		models.SectionMap,
		models.SectionTextBlock,
	} {
		secs = append(secs, models.Section{Type: typ, Content: bson.M{}})
	}

	page := models.Page{Slug: models.PageSlugHome, Title: "Home", Sections: secs, IsPublished: true}
	if err := pagestore.New(db).Create(ctx, &page); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	rec := get(t, router, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestShowPage_UnknownSectionSkipped(t *testing.T) {
	_, db, router := newSiteRouter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	page := models.Page{
		Slug:  "about-us",
		Title: "About Us",
		Sections: []models.Section{
			{Type: "TYPE_FROM_THE_FUTURE", Content: bson.M{"marker": "should-not-appear"}},
			{Type: models.SectionTextBlock, Content: bson.M{"heading": "Who We Are", "body": "<p>Founded in 1998.</p>"}},
		},
		IsPublished: true,
	}
	if err := pagestore.New(db).Create(ctx, &page); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	rec := get(t, router, "/p/about-us")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	if strings.Contains(body, "should-not-appear") {
		t.Error("unknown section type should render to nothing")
	}
	if !strings.Contains(body, "Who We Are") {
		t.Error("known sections around an unknown one should still render")
	}
}

func TestShowPage_DraftIs404(t *testing.T) {
	_, db, router := newSiteRouter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	page := models.Page{Slug: "draft-page", Title: "Draft", IsPublished: false}
	if err := pagestore.New(db).Create(ctx, &page); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if rec := get(t, router, "/p/draft-page"); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestShowPage_LegacyContentSanitized(t *testing.T) {
	_, db, router := newSiteRouter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	page := models.Page{
		Slug:        "disclaimer",
		Title:       "Disclaimer",
		Content:     `<p>Plain paragraph.</p><script>alert("xss")</script>`,
		IsPublished: true,
	}
	if err := pagestore.New(db).Create(ctx, &page); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	rec := get(t, router, "/p/disclaimer")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Plain paragraph.") {
		t.Error("legacy HTML content should render")
	}
	if strings.Contains(body, "<script>") {
		t.Error("script tags must be stripped from legacy content")
	}
}

func TestCareers_ListsOnlyVisibleJobs(t *testing.T) {
	_, db, router := newSiteRouter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	jobs := jobstore.New(db)
	for _, j := range []models.Job{
		{Title: "Senior Litigation Associate", Type: "full-time", IsPublished: true, IsActive: true},
		{Title: "Unpublished Counsel Role", Type: "full-time", IsPublished: false, IsActive: true},
		{Title: "Closed Paralegal Opening", Type: "full-time", IsPublished: true, IsActive: false},
	} {
		j := j
		if err := jobs.Create(ctx, &j); err != nil {
			t.Fatalf("Create(%s) error = %v", j.Title, err)
		}
	}

	rec := get(t, router, "/careers")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Senior Litigation Associate") {
		t.Error("visible job missing from careers page")
	}
	if strings.Contains(body, "Unpublished Counsel Role") {
		t.Error("unpublished job must not appear")
	}
	if strings.Contains(body, "Closed Paralegal Opening") {
		t.Error("inactive job must not appear")
	}
}

func TestShowCareer_HiddenJobIs404(t *testing.T) {
	_, db, router := newSiteRouter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	job := models.Job{Title: "Quiet Opening", Type: "full-time", IsPublished: true, IsActive: false}
	if err := jobstore.New(db).Create(ctx, &job); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if rec := get(t, router, "/careers/"+job.ID.Hex()); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestShowPracticeArea_NotFound(t *testing.T) {
	_, _, router := newSiteRouter(t)

	if rec := get(t, router, "/practice-areas/no-such-area"); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestShowBlogPost_RendersPublished(t *testing.T) {
	_, db, router := newSiteRouter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	now := time.Now()
	post := models.BlogPost{
		Slug:        "arbitration-clauses",
		Title:       "Drafting Arbitration Clauses",
		Body:        "Seat and venue are not the same thing.",
		Status:      models.BlogStatusPublished,
		PublishedAt: &now,
	}
	if err := blogpoststore.New(db).Create(ctx, &post); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	rec := get(t, router, "/blog/arbitration-clauses")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "Drafting Arbitration Clauses") {
		t.Error("post title missing from article page")
	}
}

func TestGallery_HidesItemsFlaggedOff(t *testing.T) {
	_, db, router := newSiteRouter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	gallery := gallerystore.New(db)
	for _, item := range []models.GalleryItem{
		{Title: "Courtroom Visit", ImagePath: "uploads/court.jpg", ShowInGallery: true},
		{Title: "Internal Offsite", ImagePath: "uploads/offsite.jpg", ShowInGallery: false},
	} {
		item := item
		if err := gallery.Create(ctx, &item); err != nil {
			t.Fatalf("gallery Create() error = %v", err)
		}
	}

	rec := get(t, router, "/gallery")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Courtroom Visit") {
		t.Error("visible item missing from gallery page")
	}
	if strings.Contains(body, "Internal Offsite") {
		t.Error("hidden item must not appear on the gallery page")
	}
}

func TestSitemap(t *testing.T) {
	h, db, router := newSiteRouter(t)
	h.SetBaseURL("https://example.com")
	ctx, cancel := testutil.TestContext()
	defer cancel()

	area := models.PracticeArea{Slug: "company-law-nclt-nclat", Title: "Company Law (NCLT / NCLAT)"}
	if err := practiceareastore.New(db).Create(ctx, &area); err != nil {
		t.Fatalf("practice area Create() error = %v", err)
	}
	job := models.Job{Title: "Associate", Type: "full-time", IsPublished: true, IsActive: true}
	if err := jobstore.New(db).Create(ctx, &job); err != nil {
		t.Fatalf("job Create() error = %v", err)
	}
	pages := pagestore.New(db)
	for _, p := range []models.Page{
		{Slug: models.PageSlugHome, Title: "Home", IsPublished: true},
		{Slug: "about-us", Title: "About Us", IsPublished: true},
		{Slug: "hidden", Title: "Hidden", IsPublished: false},
	} {
		p := p
		if err := pages.Create(ctx, &p); err != nil {
			t.Fatalf("page Create(%s) error = %v", p.Slug, err)
		}
	}

	rec := get(t, router, "/sitemap.xml")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "application/xml") {
		t.Errorf("Content-Type = %q", ct)
	}

	body := rec.Body.String()
	for _, want := range []string{
		"https://example.com/practice-areas/company-law-nclt-nclat",
		"https://example.com/careers/" + job.ID.Hex(),
		"https://example.com/p/about-us",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("sitemap missing %s", want)
		}
	}
	if strings.Contains(body, "/p/home") {
		t.Error("home page should be listed as / not /p/home")
	}
	if strings.Contains(body, "/p/hidden") {
		t.Error("unpublished pages must not be listed")
	}
}
