// internal/app/features/api/inbox.go
//
// Admin handlers for the two public submission inboxes: appointments and
// job applicants. Both are created by visitors; admins can list them,
// move them through their status pipeline, and delete them.
package api

import (
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/lexsite/lexsite/internal/app/system/jsonutil"
	"github.com/lexsite/lexsite/internal/domain/models"
)

func (h *Handler) listAppointments(w http.ResponseWriter, r *http.Request) {
	items, err := h.appointments.GetAll(r.Context())
	if err != nil {
		h.storeError(w, r, "failed to list appointments", err)
		return
	}
	jsonutil.OK(w, items)
}

func (h *Handler) getAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	item, err := h.appointments.GetByID(r.Context(), id)
	if err != nil {
		h.storeError(w, r, "failed to get appointment", err)
		return
	}
	jsonutil.OK(w, item)
}

func (h *Handler) updateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	var in struct {
		Status string `json:"status"`
	}
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}
	if !models.IsValidAppointmentStatus(in.Status) {
		jsonutil.ValidationError(w, map[string]string{
			"status": "Status must be one of: " + strings.Join(models.AllAppointmentStatuses(), ", ") + ".",
		})
		return
	}

	if err := h.appointments.UpdateStatus(r.Context(), id, in.Status); err != nil {
		h.storeError(w, r, "failed to update appointment status", err)
		return
	}

	updated, err := h.appointments.GetByID(r.Context(), id)
	if err != nil {
		h.storeError(w, r, "failed to reload appointment", err)
		return
	}
	jsonutil.OK(w, updated)
}

func (h *Handler) deleteAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	if err := h.appointments.Delete(r.Context(), id); err != nil {
		h.storeError(w, r, "failed to delete appointment", err)
		return
	}
	jsonutil.NoContent(w)
}

// listApplicants returns all applicants, optionally filtered to one job
// with ?job_id=<hex>.
func (h *Handler) listApplicants(w http.ResponseWriter, r *http.Request) {
	if jobHex := r.URL.Query().Get("job_id"); jobHex != "" {
		jobID, err := primitive.ObjectIDFromHex(jobHex)
		if err != nil {
			jsonutil.BadRequest(w, "invalid job_id")
			return
		}
		items, err := h.applicants.GetByJob(r.Context(), jobID)
		if err != nil {
			h.storeError(w, r, "failed to list applicants by job", err)
			return
		}
		jsonutil.OK(w, items)
		return
	}

	items, err := h.applicants.GetAll(r.Context())
	if err != nil {
		h.storeError(w, r, "failed to list applicants", err)
		return
	}
	jsonutil.OK(w, items)
}

func (h *Handler) getApplicant(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	item, err := h.applicants.GetByID(r.Context(), id)
	if err != nil {
		h.storeError(w, r, "failed to get applicant", err)
		return
	}
	jsonutil.OK(w, item)
}

func (h *Handler) updateApplicantStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	var in struct {
		Status string `json:"status"`
	}
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}
	if !models.IsValidApplicantStatus(in.Status) {
		jsonutil.ValidationError(w, map[string]string{
			"status": "Status must be one of: " + strings.Join(models.AllApplicantStatuses(), ", ") + ".",
		})
		return
	}

	if err := h.applicants.UpdateStatus(r.Context(), id, in.Status); err != nil {
		h.storeError(w, r, "failed to update applicant status", err)
		return
	}

	updated, err := h.applicants.GetByID(r.Context(), id)
	if err != nil {
		h.storeError(w, r, "failed to reload applicant", err)
		return
	}
	jsonutil.OK(w, updated)
}

func (h *Handler) deleteApplicant(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	// Remove the stored resume first; a failure here should not block
	// deleting the record.
	if a, err := h.applicants.GetByID(r.Context(), id); err == nil && a.ResumePath != "" {
		if err := h.files.Delete(r.Context(), a.ResumePath); err != nil {
			h.logger.Warn("failed to delete resume file",
				zap.String("path", a.ResumePath),
				zap.Error(err),
			)
		}
	}

	if err := h.applicants.Delete(r.Context(), id); err != nil {
		h.storeError(w, r, "failed to delete applicant", err)
		return
	}
	jsonutil.NoContent(w)
}
