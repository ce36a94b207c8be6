// internal/app/features/api/team.go
package api

import (
	"net/http"
	"strings"

	"github.com/lexsite/lexsite/internal/app/system/inputval"
	"github.com/lexsite/lexsite/internal/app/system/jsonutil"
	"github.com/lexsite/lexsite/internal/domain/models"
)

type teamMemberInput struct {
	Name           string   `json:"name" validate:"required,max=200" label:"Name"`
	Designation    string   `json:"designation"`
	Bio            string   `json:"bio"`
	PhotoPath      string   `json:"photo_path"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	LinkedIn       string   `json:"linkedin"`
	Qualifications []string `json:"qualifications"`
	Specialties    []string `json:"specialties"`
	Order          int      `json:"order"`
}

func (in *teamMemberInput) toModel() (models.TeamMember, map[string]string) {
	fields := fieldErrors(inputval.Validate(*in))
	if in.Email != "" && !inputval.IsValidEmail(in.Email) {
		fields["email"] = "A valid email address is required."
	}
	if in.LinkedIn != "" && !inputval.IsValidHTTPURL(in.LinkedIn) {
		fields["linkedin"] = "LinkedIn must be a valid URL starting with http:// or https://."
	}

	return models.TeamMember{
		Name:           strings.TrimSpace(in.Name),
		Designation:    in.Designation,
		Bio:            in.Bio,
		PhotoPath:      in.PhotoPath,
		Email:          in.Email,
		Phone:          in.Phone,
		LinkedIn:       in.LinkedIn,
		Qualifications: in.Qualifications,
		Specialties:    in.Specialties,
		Order:          in.Order,
	}, fields
}

func (h *Handler) listTeamMembers(w http.ResponseWriter, r *http.Request) {
	items, err := h.teamMembers.GetAll(r.Context())
	if err != nil {
		h.storeError(w, r, "failed to list team members", err)
		return
	}
	jsonutil.OK(w, items)
}

func (h *Handler) getTeamMember(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	item, err := h.teamMembers.GetByID(r.Context(), id)
	if err != nil {
		h.storeError(w, r, "failed to get team member", err)
		return
	}
	jsonutil.OK(w, item)
}

func (h *Handler) createTeamMember(w http.ResponseWriter, r *http.Request) {
	var in teamMemberInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}

	m, fields := in.toModel()
	if len(fields) > 0 {
		jsonutil.ValidationError(w, fields)
		return
	}

	if err := h.teamMembers.Create(r.Context(), &m); err != nil {
		h.storeError(w, r, "failed to create team member", err)
		return
	}
	jsonutil.Created(w, m)
}

func (h *Handler) updateTeamMember(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	var in teamMemberInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}

	m, fields := in.toModel()
	if len(fields) > 0 {
		jsonutil.ValidationError(w, fields)
		return
	}

	if err := h.teamMembers.Update(r.Context(), id, m); err != nil {
		h.storeError(w, r, "failed to update team member", err)
		return
	}

	updated, err := h.teamMembers.GetByID(r.Context(), id)
	if err != nil {
		h.storeError(w, r, "failed to reload team member", err)
		return
	}
	jsonutil.OK(w, updated)
}

func (h *Handler) deleteTeamMember(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	if err := h.teamMembers.Delete(r.Context(), id); err != nil {
		h.storeError(w, r, "failed to delete team member", err)
		return
	}
	jsonutil.NoContent(w)
}
