// internal/app/features/api/stats.go
package api

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/lexsite/lexsite/internal/app/system/jsonutil"
	"github.com/lexsite/lexsite/internal/domain/models"
)

// Stats is the dashboard summary payload.
type Stats struct {
	PracticeAreas int64 `json:"practice_areas"`
	TeamMembers   int64 `json:"team_members"`
	Jobs          int64 `json:"jobs"`
	VisibleJobs   int64 `json:"visible_jobs"`
	Applicants    int64 `json:"applicants"`
	NewApplicants int64 `json:"new_applicants"`

	Appointments        int64 `json:"appointments"`
	PendingAppointments int64 `json:"pending_appointments"`

	Sliders int64 `json:"sliders"`
	Pages   int64 `json:"pages"`
	Gallery int64 `json:"gallery"`
	Clients int64 `json:"clients"`

	BlogPosts      int64 `json:"blog_posts"`
	PublishedPosts int64 `json:"published_posts"`
	TotalViews     int64 `json:"total_views"`
}

// getStats counts every collection for the admin dashboard. Counts run
// sequentially; a single failed count fails the whole response rather
// than reporting partial numbers.
func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var stats Stats
	var err error

	counts := []struct {
		dst *int64
		fn  func(context.Context) (int64, error)
	}{
		{&stats.PracticeAreas, h.practiceAreas.Count},
		{&stats.TeamMembers, h.teamMembers.Count},
		{&stats.Jobs, h.jobs.Count},
		{&stats.VisibleJobs, h.jobs.CountVisible},
		{&stats.Applicants, h.applicants.Count},
		{&stats.Appointments, h.appointments.Count},
		{&stats.Sliders, h.sliders.Count},
		{&stats.Pages, h.pages.Count},
		{&stats.Gallery, h.gallery.Count},
		{&stats.Clients, h.clients.Count},
		{&stats.BlogPosts, h.blogPosts.Count},
		{&stats.PublishedPosts, h.blogPosts.CountPublished},
		{&stats.TotalViews, h.blogPosts.TotalViews},
	}
	for _, c := range counts {
		if *c.dst, err = c.fn(ctx); err != nil {
			h.logger.Error("failed to compute stats", zap.Error(err))
			jsonutil.Error(w, http.StatusServiceUnavailable, "store unavailable")
			return
		}
	}

	if stats.NewApplicants, err = h.applicants.CountByStatus(ctx, models.ApplicantStatusNew); err != nil {
		h.logger.Error("failed to compute stats", zap.Error(err))
		jsonutil.Error(w, http.StatusServiceUnavailable, "store unavailable")
		return
	}
	if stats.PendingAppointments, err = h.appointments.CountByStatus(ctx, models.AppointmentStatusPending); err != nil {
		h.logger.Error("failed to compute stats", zap.Error(err))
		jsonutil.Error(w, http.StatusServiceUnavailable, "store unavailable")
		return
	}

	jsonutil.OK(w, stats)
}
