// internal/app/features/api/jobs.go
package api

import (
	"net/http"
	"strings"

	"github.com/lexsite/lexsite/internal/app/system/inputval"
	"github.com/lexsite/lexsite/internal/app/system/jsonutil"
	"github.com/lexsite/lexsite/internal/domain/models"
)

type jobInput struct {
	Title        string   `json:"title" validate:"required,max=200" label:"Title"`
	Department   string   `json:"department"`
	Location     string   `json:"location"`
	Type         string   `json:"type" validate:"required" label:"Job type"`
	Experience   string   `json:"experience"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	IsPublished  bool     `json:"is_published"`
	IsActive     bool     `json:"is_active"`
}

func (in *jobInput) toModel() (models.Job, map[string]string) {
	fields := fieldErrors(inputval.Validate(*in))
	if in.Type != "" && !models.IsValidJobType(in.Type) {
		fields["type"] = "Job type must be one of: " + strings.Join(models.AllJobTypes(), ", ") + "."
	}

	return models.Job{
		Title:        strings.TrimSpace(in.Title),
		Department:   in.Department,
		Location:     in.Location,
		Type:         in.Type,
		Experience:   in.Experience,
		Description:  in.Description,
		Requirements: in.Requirements,
		IsPublished:  in.IsPublished,
		IsActive:     in.IsActive,
	}, fields
}

func (h *Handler) listJobs(w http.ResponseWriter, r *http.Request) {
	items, err := h.jobs.GetAll(r.Context())
	if err != nil {
		h.storeError(w, r, "failed to list jobs", err)
		return
	}
	jsonutil.OK(w, items)
}

func (h *Handler) getJob(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	item, err := h.jobs.GetByID(r.Context(), id)
	if err != nil {
		h.storeError(w, r, "failed to get job", err)
		return
	}
	jsonutil.OK(w, item)
}

func (h *Handler) createJob(w http.ResponseWriter, r *http.Request) {
	var in jobInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}

	j, fields := in.toModel()
	if len(fields) > 0 {
		jsonutil.ValidationError(w, fields)
		return
	}

	if err := h.jobs.Create(r.Context(), &j); err != nil {
		h.storeError(w, r, "failed to create job", err)
		return
	}
	jsonutil.Created(w, j)
}

func (h *Handler) updateJob(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	var in jobInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}

	j, fields := in.toModel()
	if len(fields) > 0 {
		jsonutil.ValidationError(w, fields)
		return
	}

	if err := h.jobs.Update(r.Context(), id, j); err != nil {
		h.storeError(w, r, "failed to update job", err)
		return
	}

	updated, err := h.jobs.GetByID(r.Context(), id)
	if err != nil {
		h.storeError(w, r, "failed to reload job", err)
		return
	}
	jsonutil.OK(w, updated)
}

func (h *Handler) deleteJob(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	if err := h.jobs.Delete(r.Context(), id); err != nil {
		h.storeError(w, r, "failed to delete job", err)
		return
	}
	jsonutil.NoContent(w)
}
