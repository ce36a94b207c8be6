package jsonutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestJSON(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		data       any
		wantStatus int
		wantBody   string
	}{
		{
			name:       "200 OK with data",
			status:     http.StatusOK,
			data:       map[string]string{"slug": "company-law"},
			wantStatus: http.StatusOK,
			wantBody:   `{"slug":"company-law"}`,
		},
		{
			name:       "201 Created with data",
			status:     http.StatusCreated,
			data:       map[string]int{"order": 3},
			wantStatus: http.StatusCreated,
			wantBody:   `{"order":3}`,
		},
		{
			name:       "nil data",
			status:     http.StatusOK,
			data:       nil,
			wantStatus: http.StatusOK,
			wantBody:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			JSON(rec, tt.status, tt.data)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q, want application/json", ct)
			}
			body := strings.TrimSpace(rec.Body.String())
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestCreated(t *testing.T) {
	rec := httptest.NewRecorder()
	data := map[string]any{"title": "Arbitration", "isPublished": false}
	Created(rec, data)

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("json unmarshal error: %v", err)
	}
	if got["title"] != "Arbitration" {
		t.Errorf("body title = %v, want Arbitration", got["title"])
	}
}

func TestNoContent(t *testing.T) {
	rec := httptest.NewRecorder()
	NoContent(rec)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("body should be empty, got %q", rec.Body.String())
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		message    string
		wantStatus int
	}{
		{"bad request", http.StatusBadRequest, "invalid request body", 400},
		{"not found", http.StatusNotFound, "page not found", 404},
		{"store unavailable", http.StatusInternalServerError, "something went wrong", 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Error(rec, tt.status, tt.message)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			var got map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
				t.Fatalf("json unmarshal error: %v", err)
			}
			if got["error"] != tt.message {
				t.Errorf("error = %q, want %q", got["error"], tt.message)
			}
		})
	}
}

func TestUnauthorized(t *testing.T) {
	rec := httptest.NewRecorder()
	Unauthorized(rec, "unauthorized")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}

	var got map[string]string
	json.Unmarshal(rec.Body.Bytes(), &got)
	if got["error"] != "unauthorized" {
		t.Errorf("error = %q, want 'unauthorized'", got["error"])
	}
}

func TestNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFound(rec, "team member not found")

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}

	var got map[string]string
	json.Unmarshal(rec.Body.Bytes(), &got)
	if got["error"] != "team member not found" {
		t.Errorf("error = %q, want 'team member not found'", got["error"])
	}
}

func TestValidationError(t *testing.T) {
	rec := httptest.NewRecorder()
	fields := map[string]string{
		"email": "must be a valid email address",
		"phone": "must contain at least 10 digits",
	}
	ValidationError(rec, fields)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}

	var got struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("json unmarshal error: %v", err)
	}

	if got.Error != "validation failed" {
		t.Errorf("error = %q, want 'validation failed'", got.Error)
	}
	if got.Fields["email"] != "must be a valid email address" {
		t.Errorf("fields.email = %q", got.Fields["email"])
	}
	if got.Fields["phone"] != "must contain at least 10 digits" {
		t.Errorf("fields.phone = %q", got.Fields["phone"])
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name:    "valid JSON",
			body:    `{"title":"Our Team","order":2}`,
			wantErr: false,
		},
		{
			name:    "invalid JSON",
			body:    `{invalid}`,
			wantErr: true,
		},
		{
			name:    "empty body",
			body:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			var got map[string]any
			err := Decode(req, &got)

			if (err != nil) != tt.wantErr {
				t.Errorf("Decode() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDecode_StructBinding(t *testing.T) {
	type input struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Phone string `json:"phone"`
	}

	body := `{"name":"Priya Nair","email":"priya@example.com","phone":"9876543210"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))

	var in input
	if err := Decode(req, &in); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if in.Name != "Priya Nair" {
		t.Errorf("Name = %q, want 'Priya Nair'", in.Name)
	}
	if in.Email != "priya@example.com" {
		t.Errorf("Email = %q", in.Email)
	}
	if in.Phone != "9876543210" {
		t.Errorf("Phone = %q", in.Phone)
	}
}

func TestDecode_BodyConsumed(t *testing.T) {
	body := `{"slug":"about-us"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))

	var first map[string]string
	if err := Decode(req, &first); err != nil {
		t.Fatalf("First Decode() error = %v", err)
	}

	// Body is consumed; a second decode must fail.
	var second map[string]string
	err := Decode(req, &second)
	if err != io.EOF {
		t.Errorf("Second Decode() should fail with EOF, got %v", err)
	}
}

func TestJSON_NestedData(t *testing.T) {
	rec := httptest.NewRecorder()

	data := map[string]any{
		"sections": []map[string]any{
			{"type": "HeroSlider", "order": 0},
			{"type": "About", "order": 1},
		},
		"total": 2,
	}

	JSON(rec, http.StatusOK, data)

	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("json unmarshal error: %v", err)
	}

	sections := got["sections"].([]any)
	if len(sections) != 2 {
		t.Errorf("sections length = %d, want 2", len(sections))
	}
	if got["total"].(float64) != 2 {
		t.Errorf("total = %v, want 2", got["total"])
	}
}
