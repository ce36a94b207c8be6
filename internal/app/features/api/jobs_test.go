package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lexsite/lexsite/internal/domain/models"
)

func TestCreateJob_CarriesDepartmentAndExperience(t *testing.T) {
	_, _, router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, adminRequest(t, http.MethodPost, "/jobs/", map[string]any{
		"title":      "Associate Advocate",
		"department": "Litigation",
		"type":       models.JobTypeFullTime,
		"experience": "2-4 years",
	}))
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var got models.Job
	decodeBody(t, rec, &got)
	if got.Department != "Litigation" {
		t.Errorf("Department = %q, want %q", got.Department, "Litigation")
	}
	if got.Experience != "2-4 years" {
		t.Errorf("Experience = %q, want %q", got.Experience, "2-4 years")
	}
}

func TestUpdateJob_PersistsDepartmentAndExperience(t *testing.T) {
	_, _, router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, adminRequest(t, http.MethodPost, "/jobs/", map[string]any{
		"title": "Paralegal",
		"type":  models.JobTypeFullTime,
	}))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", rec.Code, rec.Body.String())
	}
	var created models.Job
	decodeBody(t, rec, &created)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, adminRequest(t, http.MethodPut, "/jobs/"+created.ID.Hex(), map[string]any{
		"title":      "Senior Paralegal",
		"department": "Corporate",
		"type":       models.JobTypeFullTime,
		"experience": "5+ years",
	}))
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d: %s", rec.Code, rec.Body.String())
	}

	var updated models.Job
	decodeBody(t, rec, &updated)
	if updated.Department != "Corporate" {
		t.Errorf("Department = %q, want %q", updated.Department, "Corporate")
	}
	if updated.Experience != "5+ years" {
		t.Errorf("Experience = %q, want %q", updated.Experience, "5+ years")
	}
}
