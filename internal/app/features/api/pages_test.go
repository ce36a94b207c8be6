package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/lexsite/lexsite/internal/domain/models"
	"github.com/lexsite/lexsite/internal/testutil"
)

func TestCreatePage_SlugDerivedFromTitle(t *testing.T) {
	_, _, router := newTestRouter(t)

	req := adminRequest(t, http.MethodPost, "/pages", map[string]any{
		"title": "Company Law (NCLT / NCLAT)",
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}
	var created models.Page
	decodeBody(t, rec, &created)
	if created.Slug != "company-law-nclt-nclat" {
		t.Errorf("Slug = %q, want %q", created.Slug, "company-law-nclt-nclat")
	}
}

func TestCreatePage_ExplicitSlugValidated(t *testing.T) {
	_, _, router := newTestRouter(t)

	req := adminRequest(t, http.MethodPost, "/pages", map[string]any{
		"title": "Fee Schedule",
		"slug":  "Fee Schedule!",
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	fields := validationFields(t, rec)
	if _, ok := fields["slug"]; !ok {
		t.Errorf("fields missing slug: %v", fields)
	}
}

func TestCreatePage_DuplicateSlug(t *testing.T) {
	_, _, router := newTestRouter(t)

	first := adminRequest(t, http.MethodPost, "/pages", map[string]any{"title": "Our History"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, first)
	if rec.Code != http.StatusCreated {
		t.Fatalf("first create status = %d: %s", rec.Code, rec.Body.String())
	}

	second := adminRequest(t, http.MethodPost, "/pages", map[string]any{"title": "Our History"})
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, second)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate create status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	fields := validationFields(t, rec)
	if _, ok := fields["slug"]; !ok {
		t.Errorf("fields missing slug: %v", fields)
	}
}

func TestUpdatePage_Unauthorized_LeavesDocUnchanged(t *testing.T) {
	h, _, router := newTestRouter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	page := models.Page{Slug: "mediation", Title: "Mediation", IsPublished: true}
	if err := h.pages.Create(ctx, &page); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodPut, "/pages/"+page.ID.Hex(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}

	got, err := h.pages.GetByID(ctx, page.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Title != "Mediation" || !got.IsPublished {
		t.Errorf("page changed by unauthorized request: %+v", got)
	}
}

// seedPage creates a page with three sections through the store and
// returns it reloaded.
func seedPage(t *testing.T, h *Handler) models.Page {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	page := models.Page{
		Slug:  "home",
		Title: "Home",
		Sections: []models.Section{
			{Type: models.SectionHeroSlider, Content: bson.M{}},
			{Type: models.SectionAbout, Content: bson.M{"title": "About Us"}},
			{Type: models.SectionMap, Content: bson.M{}},
		},
		IsPublished: true,
	}
	if err := h.pages.Create(ctx, &page); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	return page
}

func sectionTypes(p models.Page) []string {
	types := make([]string, len(p.Sections))
	for i, s := range p.Sections {
		types[i] = s.Type
	}
	return types
}

func TestPutSections_ReplacesAndRenumbers(t *testing.T) {
	h, _, router := newTestRouter(t)
	page := seedPage(t, h)

	req := adminRequest(t, http.MethodPut, "/pages/"+page.ID.Hex()+"/sections", map[string]any{
		"sections": []map[string]any{
			{"type": models.SectionTextBlock, "content": map[string]any{"body": "<p>Hi</p>"}},
			{"type": "CUSTOM_WIDGET", "content": map[string]any{"anything": true}},
		},
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var got models.Page
	decodeBody(t, rec, &got)
	want := []string{models.SectionTextBlock, "CUSTOM_WIDGET"}
	if types := sectionTypes(got); len(types) != 2 || types[0] != want[0] || types[1] != want[1] {
		t.Errorf("section types = %v, want %v", types, want)
	}
	for i, s := range got.Sections {
		if s.Order != i {
			t.Errorf("Sections[%d].Order = %d, want %d", i, s.Order, i)
		}
	}
}

func TestPutSections_MissingTypeRejected(t *testing.T) {
	h, _, router := newTestRouter(t)
	page := seedPage(t, h)

	req := adminRequest(t, http.MethodPut, "/pages/"+page.ID.Hex()+"/sections", map[string]any{
		"sections": []map[string]any{{"type": "  ", "content": map[string]any{}}},
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestAppendSection(t *testing.T) {
	h, _, router := newTestRouter(t)
	page := seedPage(t, h)

	req := adminRequest(t, http.MethodPost, "/pages/"+page.ID.Hex()+"/sections", map[string]any{
		"type": models.SectionStats,
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var got models.Page
	decodeBody(t, rec, &got)
	if len(got.Sections) != 4 {
		t.Fatalf("sections = %d, want 4", len(got.Sections))
	}
	last := got.Sections[3]
	if last.Type != models.SectionStats {
		t.Errorf("appended type = %q, want %q", last.Type, models.SectionStats)
	}
	if last.Order != 3 {
		t.Errorf("appended order = %d, want 3", last.Order)
	}
}

func TestMoveSection_SwapsNeighbors(t *testing.T) {
	h, _, router := newTestRouter(t)
	page := seedPage(t, h)

	req := adminRequest(t, http.MethodPost, "/pages/"+page.ID.Hex()+"/sections/0/move", map[string]any{
		"direction": "down",
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var got models.Page
	decodeBody(t, rec, &got)
	want := []string{models.SectionAbout, models.SectionHeroSlider, models.SectionMap}
	types := sectionTypes(got)
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("section types = %v, want %v", types, want)
			break
		}
	}
}

func TestMoveSection_OffTheEndIsNoOp(t *testing.T) {
	h, _, router := newTestRouter(t)
	page := seedPage(t, h)

	req := adminRequest(t, http.MethodPost, "/pages/"+page.ID.Hex()+"/sections/0/move", map[string]any{
		"direction": "up",
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var got models.Page
	decodeBody(t, rec, &got)
	if types := sectionTypes(got); types[0] != models.SectionHeroSlider {
		t.Errorf("section types = %v; moving the first section up should not change order", types)
	}
}

func TestMoveSection_BadDirection(t *testing.T) {
	h, _, router := newTestRouter(t)
	page := seedPage(t, h)

	req := adminRequest(t, http.MethodPost, "/pages/"+page.ID.Hex()+"/sections/0/move", map[string]any{
		"direction": "sideways",
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestRemoveSection(t *testing.T) {
	h, _, router := newTestRouter(t)
	page := seedPage(t, h)

	req := adminRequest(t, http.MethodDelete, "/pages/"+page.ID.Hex()+"/sections/1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var got models.Page
	decodeBody(t, rec, &got)
	want := []string{models.SectionHeroSlider, models.SectionMap}
	types := sectionTypes(got)
	if len(types) != 2 || types[0] != want[0] || types[1] != want[1] {
		t.Errorf("section types = %v, want %v", types, want)
	}
}

func TestRemoveSection_IndexOutOfRange(t *testing.T) {
	h, _, router := newTestRouter(t)
	page := seedPage(t, h)

	req := adminRequest(t, http.MethodDelete, "/pages/"+page.ID.Hex()+"/sections/99", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
