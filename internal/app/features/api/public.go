// internal/app/features/api/public.go
//
// Public submission endpoints. These take input from anonymous visitors,
// so validation is strict and nothing is written until the whole payload
// passes.
package api

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/lexsite/lexsite/internal/app/system/inputval"
	"github.com/lexsite/lexsite/internal/app/system/jsonutil"
	"github.com/lexsite/lexsite/internal/app/system/mailer"
	"github.com/lexsite/lexsite/internal/domain/models"
)

type appointmentInput struct {
	Name          string `json:"name" validate:"required,max=200" label:"Name"`
	Email         string `json:"email" validate:"required,email" label:"Email"`
	Phone         string `json:"phone" validate:"required,phone" label:"Phone"`
	PracticeArea  string `json:"practice_area"`
	TeamMember    string `json:"team_member"`
	PreferredDate string `json:"preferred_date"`
	Message       string `json:"message"`
}

// createAppointmentPublic books a consultation from the public contact
// form. New appointments always start pending.
func (h *Handler) createAppointmentPublic(w http.ResponseWriter, r *http.Request) {
	var in appointmentInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}

	if res := inputval.Validate(in); res.HasErrors() {
		jsonutil.ValidationError(w, fieldErrors(res))
		return
	}

	appt := models.Appointment{
		Name:          strings.TrimSpace(in.Name),
		Email:         strings.TrimSpace(in.Email),
		Phone:         strings.TrimSpace(in.Phone),
		PracticeArea:  in.PracticeArea,
		TeamMember:    in.TeamMember,
		PreferredDate: in.PreferredDate,
		Message:       in.Message,
		Status:        models.AppointmentStatusPending,
	}

	if err := h.appointments.Create(r.Context(), &appt); err != nil {
		h.storeError(w, r, "failed to create appointment", err)
		return
	}

	h.logger.Info("appointment booked",
		zap.String("id", appt.ID.Hex()),
		zap.String("practice_area", appt.PracticeArea),
	)
	h.notifyAppointment(appt)
	jsonutil.Created(w, appt)
}

type applicationInput struct {
	JobID     string `label:"Job"`
	Name      string `validate:"required,max=200" label:"Name"`
	Email     string `validate:"required,email" label:"Email"`
	Phone     string `validate:"required,phone" label:"Phone"`
	CoverNote string
}

// createApplicationPublic accepts a job application as multipart form
// data with an optional resume file. The job must exist and be publicly
// visible; applying to an unpublished or closed opening is a 404, the
// same as browsing to it.
func (h *Handler) createApplicationPublic(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		jsonutil.BadRequest(w, "upload too large or malformed")
		return
	}

	in := applicationInput{
		JobID:     r.FormValue("job_id"),
		Name:      r.FormValue("name"),
		Email:     r.FormValue("email"),
		Phone:     r.FormValue("phone"),
		CoverNote: r.FormValue("cover_note"),
	}

	fields := map[string]string{}
	if res := inputval.Validate(in); res.HasErrors() {
		for _, e := range res.Errors {
			fields[strings.ToLower(e.Field)] = e.Message
		}
	}
	jobID, err := primitive.ObjectIDFromHex(in.JobID)
	if err != nil {
		fields["job_id"] = "Job is required."
	}
	if len(fields) > 0 {
		jsonutil.ValidationError(w, fields)
		return
	}

	job, err := h.jobs.GetVisibleByID(r.Context(), jobID)
	if err != nil {
		h.storeError(w, r, "failed to load job for application", err)
		return
	}

	applicant := models.Applicant{
		JobID:     jobID,
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		CoverNote: in.CoverNote,
		Status:    models.ApplicantStatusNew,
	}

	// Resume is optional. Store it before the record so a storage failure
	// fails the submission cleanly.
	if f, header, err := r.FormFile("resume"); err == nil {
		defer f.Close()

		ext := strings.ToLower(filepath.Ext(header.Filename))
		if ext != ".pdf" && ext != ".doc" && ext != ".docx" {
			jsonutil.ValidationError(w, map[string]string{"resume": "Resume must be a PDF or Word document."})
			return
		}

		now := time.Now().UTC()
		path := fmt.Sprintf("resumes/%04d/%02d/%s%s", now.Year(), int(now.Month()), uuid.New().String()[:8], ext)

		contentType := header.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		if err := h.files.Put(r.Context(), path, f, &storage.PutOptions{ContentType: contentType}); err != nil {
			h.logger.Error("failed to store resume",
				zap.String("path", path),
				zap.Error(err),
			)
			jsonutil.Error(w, http.StatusInternalServerError, "upload failed")
			return
		}
		applicant.ResumePath = path
		applicant.ResumeName = header.Filename
	}

	if err := h.applicants.Create(r.Context(), &applicant); err != nil {
		// Don't orphan the resume if the record fails.
		if applicant.ResumePath != "" {
			_ = h.files.Delete(r.Context(), applicant.ResumePath)
		}
		h.storeError(w, r, "failed to create applicant", err)
		return
	}

	h.logger.Info("application received",
		zap.String("id", applicant.ID.Hex()),
		zap.String("job_id", jobID.Hex()),
	)
	h.notifyApplication(applicant, job.Title)
	jsonutil.Created(w, applicant)
}

// firmEmail returns the notification recipient from the site config, or ""
// when none is configured.
func (h *Handler) firmEmail(ctx context.Context) string {
	cfg, err := h.config.Get(ctx)
	if err != nil || cfg == nil {
		return ""
	}
	return cfg.Email
}

// notifyAppointment emails the firm about a new appointment request. Sent
// in the background and best-effort: a mail failure never affects the
// submission.
func (h *Handler) notifyAppointment(appt models.Appointment) {
	if h.mail == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		to := h.firmEmail(ctx)
		if to == "" {
			return
		}

		text, html := mailer.AppointmentNotificationEmail(mailer.AppointmentNotificationData{
			SiteName:      h.mail.FromName(),
			Name:          appt.Name,
			Email:         appt.Email,
			Phone:         appt.Phone,
			PracticeArea:  appt.PracticeArea,
			TeamMember:    appt.TeamMember,
			PreferredDate: appt.PreferredDate,
			Message:       appt.Message,
			AdminURL:      h.baseURL + "/admin/appointments",
		})
		if err := h.mail.Send(mailer.Email{
			To:       to,
			Subject:  "New appointment request from " + appt.Name,
			TextBody: text,
			HTMLBody: html,
		}); err != nil {
			h.logger.Warn("failed to send appointment notification", zap.Error(err))
		}
	}()
}

// notifyApplication emails the firm about a new job application.
func (h *Handler) notifyApplication(applicant models.Applicant, jobTitle string) {
	if h.mail == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		to := h.firmEmail(ctx)
		if to == "" {
			return
		}

		text, html := mailer.ApplicationNotificationEmail(mailer.ApplicationNotificationData{
			SiteName:   h.mail.FromName(),
			JobTitle:   jobTitle,
			Name:       applicant.Name,
			Email:      applicant.Email,
			Phone:      applicant.Phone,
			ResumeName: applicant.ResumeName,
			CoverNote:  applicant.CoverNote,
			AdminURL:   h.baseURL + "/admin/applicants",
		})
		if err := h.mail.Send(mailer.Email{
			To:       to,
			Subject:  "New application for " + jobTitle,
			TextBody: text,
			HTMLBody: html,
		}); err != nil {
			h.logger.Warn("failed to send application notification", zap.Error(err))
		}
	}()
}
