package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/waffle/pantry/storage"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/lexsite/lexsite/internal/domain/models"
	"github.com/lexsite/lexsite/internal/testutil"
)

// newTestRouter builds the API handler against a fresh database and a
// throwaway local file store. The returned router includes the session
// guard so auth behavior is exercised too.
func newTestRouter(t *testing.T) (*Handler, *mongo.Database, http.Handler) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()

	files, err := storage.NewLocal(storage.LocalConfig{
		BasePath: t.TempDir(),
		BaseURL:  "/uploads",
	})
	if err != nil {
		t.Fatalf("failed to create local storage: %v", err)
	}

	h := NewHandler(db, files, nil, "http://localhost:8080", logger)

	sessionMgr, err := testutil.NewTestSessionManager(logger)
	if err != nil {
		t.Fatalf("failed to create session manager: %v", err)
	}

	return h, db, Routes(h, sessionMgr)
}

// adminRequest builds a JSON request carrying an admin session user.
func adminRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return testutil.WithUser(req, testutil.AdminUser())
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
}

// validationFields pulls the field->message map out of a validation
// failure response.
func validationFields(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()

	var body struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	decodeBody(t, rec, &body)
	if body.Error != "validation failed" {
		t.Errorf("error = %q, want %q", body.Error, "validation failed")
	}
	return body.Fields
}

func TestPutConfig_Unauthorized_LeavesDocUnchanged(t *testing.T) {
	h, _, router := newTestRouter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := h.config.Save(ctx, models.SiteConfig{SiteName: "Original Name"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	payload := map[string]any{"site_name": "Hijacked Name"}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		t.Fatalf("encode error: %v", err)
	}
	req := httptest.NewRequest(http.MethodPut, "/config", &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}

	got, err := h.config.Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.SiteName != "Original Name" {
		t.Errorf("SiteName = %q; unauthorized write must not change the document", got.SiteName)
	}
}

func TestPutConfig_ValidationFailure_NoPartialWrite(t *testing.T) {
	h, _, router := newTestRouter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := h.config.Save(ctx, models.SiteConfig{SiteName: "Before", Phone: "+91 98765 43210"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// Missing site_name and a phone with too few digits.
	req := adminRequest(t, http.MethodPut, "/config", map[string]any{
		"site_name": "",
		"phone":     "12345",
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	fields := validationFields(t, rec)
	if _, ok := fields["site_name"]; !ok {
		t.Errorf("fields missing site_name: %v", fields)
	}
	if _, ok := fields["phone"]; !ok {
		t.Errorf("fields missing phone: %v", fields)
	}

	got, err := h.config.Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.SiteName != "Before" || got.Phone != "+91 98765 43210" {
		t.Errorf("config changed after failed validation: %+v", got)
	}
}

func TestPutConfig_Success(t *testing.T) {
	_, _, router := newTestRouter(t)

	req := adminRequest(t, http.MethodPut, "/config", map[string]any{
		"site_name":          "Kapoor Law Offices",
		"tagline":            "Advocates & Solicitors",
		"email":              "contact@kapoor.example",
		"phone":              "+91 99887 76655",
		"disclaimer_enabled": true,
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var got models.SiteConfig
	decodeBody(t, rec, &got)
	if got.SiteName != "Kapoor Law Offices" {
		t.Errorf("SiteName = %q", got.SiteName)
	}
	if !got.DisclaimerEnabled {
		t.Error("DisclaimerEnabled should round-trip")
	}
	if got.UpdatedAt == nil {
		t.Error("UpdatedAt should be stamped")
	}
}

func TestGetConfig_FreshInstallReturnsDefaults(t *testing.T) {
	_, _, router := newTestRouter(t)

	req := adminRequest(t, http.MethodGet, "/config", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var got models.SiteConfig
	decodeBody(t, rec, &got)
	if got.SiteName != models.DefaultSiteName {
		t.Errorf("SiteName = %q, want default %q", got.SiteName, models.DefaultSiteName)
	}
}

func TestGetStats(t *testing.T) {
	h, _, router := newTestRouter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, j := range []models.Job{
		{Title: "Open Role", Type: "full-time", IsPublished: true, IsActive: true},
		{Title: "Closed Role", Type: "full-time", IsPublished: true, IsActive: false},
	} {
		j := j
		if err := h.jobs.Create(ctx, &j); err != nil {
			t.Fatalf("jobs.Create() error = %v", err)
		}
	}
	pa := models.PracticeArea{Slug: "criminal-law", Title: "Criminal Law"}
	if err := h.practiceAreas.Create(ctx, &pa); err != nil {
		t.Fatalf("practiceAreas.Create() error = %v", err)
	}
	appt := models.Appointment{Name: "N", Email: "n@example.com", Phone: "9000000000"}
	if err := h.appointments.Create(ctx, &appt); err != nil {
		t.Fatalf("appointments.Create() error = %v", err)
	}

	req := adminRequest(t, http.MethodGet, "/stats", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var stats Stats
	decodeBody(t, rec, &stats)
	if stats.Jobs != 2 {
		t.Errorf("Jobs = %d, want 2", stats.Jobs)
	}
	if stats.VisibleJobs != 1 {
		t.Errorf("VisibleJobs = %d, want 1", stats.VisibleJobs)
	}
	if stats.PracticeAreas != 1 {
		t.Errorf("PracticeAreas = %d, want 1", stats.PracticeAreas)
	}
	if stats.PendingAppointments != 1 {
		t.Errorf("PendingAppointments = %d, want 1", stats.PendingAppointments)
	}
}

func TestAdminEndpoints_RequireSession(t *testing.T) {
	_, _, router := newTestRouter(t)

	for _, target := range []string{"/stats", "/config", "/practice-areas/", "/appointments/"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("GET %s status = %d, want %d", target, rec.Code, http.StatusUnauthorized)
		}
	}
}

func TestGetPracticeArea_MalformedID(t *testing.T) {
	_, _, router := newTestRouter(t)

	req := adminRequest(t, http.MethodGet, "/practice-areas/not-a-hex-id", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
