// internal/app/features/api/practiceareas.go
package api

import (
	"net/http"
	"strings"

	"github.com/lexsite/lexsite/internal/app/store/storeutil"
	"github.com/lexsite/lexsite/internal/app/system/inputval"
	"github.com/lexsite/lexsite/internal/app/system/jsonutil"
	"github.com/lexsite/lexsite/internal/app/system/slug"
	"github.com/lexsite/lexsite/internal/domain/models"
)

type practiceAreaInput struct {
	Title            string `json:"title" validate:"required,max=200" label:"Title"`
	Slug             string `json:"slug"`
	ShortDescription string `json:"short_description"`
	FullDescription  string `json:"full_description"`
	Icon             string `json:"icon"`
	ImagePath        string `json:"image_path"`
	ShowOnHome       bool   `json:"show_on_home"`
	Order            int    `json:"order"`
}

// resolveSlug returns the slug to store: the explicit one when given,
// otherwise one derived from the fallback text. An explicit slug must
// already be in canonical form.
func resolveSlug(explicit, fallback string) (string, bool) {
	s := strings.TrimSpace(explicit)
	if s == "" {
		s = slug.Derive(fallback)
		return s, s != ""
	}
	return s, slug.IsValid(s)
}

func (in *practiceAreaInput) toModel() (models.PracticeArea, map[string]string) {
	fields := map[string]string{}
	if res := inputval.Validate(*in); res.HasErrors() {
		for k, v := range fieldErrors(res) {
			fields[k] = v
		}
	}

	sl, ok := resolveSlug(in.Slug, in.Title)
	if !ok {
		fields["slug"] = "Slug must be lowercase letters, numbers and hyphens."
	}

	return models.PracticeArea{
		Slug:             sl,
		Title:            strings.TrimSpace(in.Title),
		ShortDescription: in.ShortDescription,
		FullDescription:  in.FullDescription,
		Icon:             in.Icon,
		ImagePath:        in.ImagePath,
		ShowOnHome:       in.ShowOnHome,
		Order:            in.Order,
	}, fields
}

func (h *Handler) listPracticeAreas(w http.ResponseWriter, r *http.Request) {
	items, err := h.practiceAreas.GetAll(r.Context())
	if err != nil {
		h.storeError(w, r, "failed to list practice areas", err)
		return
	}
	jsonutil.OK(w, items)
}

func (h *Handler) getPracticeArea(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	item, err := h.practiceAreas.GetByID(r.Context(), id)
	if err != nil {
		h.storeError(w, r, "failed to get practice area", err)
		return
	}
	jsonutil.OK(w, item)
}

func (h *Handler) createPracticeArea(w http.ResponseWriter, r *http.Request) {
	var in practiceAreaInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}

	pa, fields := in.toModel()
	if len(fields) > 0 {
		jsonutil.ValidationError(w, fields)
		return
	}

	if err := h.practiceAreas.Create(r.Context(), &pa); err != nil {
		if storeutil.IsDuplicateKey(err) {
			jsonutil.ValidationError(w, map[string]string{"slug": "A practice area with this slug already exists."})
			return
		}
		h.storeError(w, r, "failed to create practice area", err)
		return
	}
	jsonutil.Created(w, pa)
}

func (h *Handler) updatePracticeArea(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	var in practiceAreaInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}

	pa, fields := in.toModel()
	if len(fields) > 0 {
		jsonutil.ValidationError(w, fields)
		return
	}

	if err := h.practiceAreas.Update(r.Context(), id, pa); err != nil {
		if storeutil.IsDuplicateKey(err) {
			jsonutil.ValidationError(w, map[string]string{"slug": "A practice area with this slug already exists."})
			return
		}
		h.storeError(w, r, "failed to update practice area", err)
		return
	}

	updated, err := h.practiceAreas.GetByID(r.Context(), id)
	if err != nil {
		h.storeError(w, r, "failed to reload practice area", err)
		return
	}
	jsonutil.OK(w, updated)
}

func (h *Handler) deletePracticeArea(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	if err := h.practiceAreas.Delete(r.Context(), id); err != nil {
		h.storeError(w, r, "failed to delete practice area", err)
		return
	}
	jsonutil.NoContent(w)
}
