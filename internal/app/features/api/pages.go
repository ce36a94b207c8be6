// internal/app/features/api/pages.go
package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lexsite/lexsite/internal/app/store/storeutil"
	"github.com/lexsite/lexsite/internal/app/system/htmlsanitize"
	"github.com/lexsite/lexsite/internal/app/system/inputval"
	"github.com/lexsite/lexsite/internal/app/system/jsonutil"
	"github.com/lexsite/lexsite/internal/app/system/sections"
	"github.com/lexsite/lexsite/internal/domain/models"
)

type pageInput struct {
	Title           string `json:"title" validate:"required,max=200" label:"Title"`
	Slug            string `json:"slug"`
	Content         string `json:"content"`
	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`
	IsPublished     bool   `json:"is_published"`
}

func (in *pageInput) toModel() (models.Page, map[string]string) {
	fields := fieldErrors(inputval.Validate(*in))

	sl, ok := resolveSlug(in.Slug, in.Title)
	if !ok {
		fields["slug"] = "Slug must be lowercase letters, numbers and hyphens."
	}

	return models.Page{
		Slug:            sl,
		Title:           strings.TrimSpace(in.Title),
		Content:         htmlsanitize.Sanitize(in.Content),
		MetaTitle:       in.MetaTitle,
		MetaDescription: in.MetaDescription,
		IsPublished:     in.IsPublished,
	}, fields
}

func (h *Handler) listPages(w http.ResponseWriter, r *http.Request) {
	items, err := h.pages.GetAll(r.Context())
	if err != nil {
		h.storeError(w, r, "failed to list pages", err)
		return
	}
	jsonutil.OK(w, items)
}

func (h *Handler) getPage(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	item, err := h.pages.GetByID(r.Context(), id)
	if err != nil {
		h.storeError(w, r, "failed to get page", err)
		return
	}
	jsonutil.OK(w, item)
}

func (h *Handler) createPage(w http.ResponseWriter, r *http.Request) {
	var in pageInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}

	page, fields := in.toModel()
	if len(fields) > 0 {
		jsonutil.ValidationError(w, fields)
		return
	}
	page.Sections = []models.Section{}

	if err := h.pages.Create(r.Context(), &page); err != nil {
		if storeutil.IsDuplicateKey(err) {
			jsonutil.ValidationError(w, map[string]string{"slug": "A page with this slug already exists."})
			return
		}
		h.storeError(w, r, "failed to create page", err)
		return
	}
	jsonutil.Created(w, page)
}

// updatePage updates the page metadata and legacy content. Sections are
// managed through the dedicated section endpoints.
func (h *Handler) updatePage(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	var in pageInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}

	page, fields := in.toModel()
	if len(fields) > 0 {
		jsonutil.ValidationError(w, fields)
		return
	}

	if err := h.pages.Update(r.Context(), id, page); err != nil {
		if storeutil.IsDuplicateKey(err) {
			jsonutil.ValidationError(w, map[string]string{"slug": "A page with this slug already exists."})
			return
		}
		h.storeError(w, r, "failed to update page", err)
		return
	}

	updated, err := h.pages.GetByID(r.Context(), id)
	if err != nil {
		h.storeError(w, r, "failed to reload page", err)
		return
	}
	jsonutil.OK(w, updated)
}

func (h *Handler) deletePage(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	if err := h.pages.Delete(r.Context(), id); err != nil {
		h.storeError(w, r, "failed to delete page", err)
		return
	}
	jsonutil.NoContent(w)
}

type sectionInput struct {
	Type    string `json:"type"`
	Content bson.M `json:"content"`
}

// putSections replaces a page's section list wholesale. Unknown section
// types are accepted; the public renderer simply skips them.
func (h *Handler) putSections(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	var in struct {
		Sections []sectionInput `json:"sections"`
	}
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}

	secs := make([]models.Section, 0, len(in.Sections))
	for i, s := range in.Sections {
		if strings.TrimSpace(s.Type) == "" {
			jsonutil.ValidationError(w, map[string]string{
				"sections": "Section " + strconv.Itoa(i) + " is missing a type.",
			})
			return
		}
		content := s.Content
		if content == nil {
			content = bson.M{}
		}
		secs = append(secs, models.Section{Type: s.Type, Content: content})
	}

	if err := h.pages.SetSections(r.Context(), id, secs); err != nil {
		h.storeError(w, r, "failed to save sections", err)
		return
	}
	h.respondWithSections(w, r, id)
}

// appendSection adds a new empty section of the given type at the end.
func (h *Handler) appendSection(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	var in sectionInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}
	if strings.TrimSpace(in.Type) == "" {
		jsonutil.ValidationError(w, map[string]string{"type": "Section type is required."})
		return
	}

	page, err := h.pages.GetByID(r.Context(), id)
	if err != nil {
		h.storeError(w, r, "failed to get page", err)
		return
	}

	secs := sections.Append(page.Sections, in.Type)
	if len(in.Content) > 0 {
		secs[len(secs)-1].Content = in.Content
	}

	if err := h.pages.SetSections(r.Context(), id, secs); err != nil {
		h.storeError(w, r, "failed to append section", err)
		return
	}
	h.respondWithSections(w, r, id)
}

// removeSection deletes the section at the given index.
func (h *Handler) removeSection(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		jsonutil.BadRequest(w, "invalid section index")
		return
	}

	page, err := h.pages.GetByID(r.Context(), id)
	if err != nil {
		h.storeError(w, r, "failed to get page", err)
		return
	}
	if index < 0 || index >= len(page.Sections) {
		jsonutil.NotFound(w, "section not found")
		return
	}

	if err := h.pages.SetSections(r.Context(), id, sections.Remove(page.Sections, index)); err != nil {
		h.storeError(w, r, "failed to remove section", err)
		return
	}
	h.respondWithSections(w, r, id)
}

// moveSection swaps the section at index with its neighbor in the given
// direction ("up" or "down"). Moves off either end are no-ops.
func (h *Handler) moveSection(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		jsonutil.BadRequest(w, "invalid section index")
		return
	}

	var in struct {
		Direction string `json:"direction"`
	}
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}

	var target int
	switch in.Direction {
	case "up":
		target = index - 1
	case "down":
		target = index + 1
	default:
		jsonutil.ValidationError(w, map[string]string{"direction": "Direction must be up or down."})
		return
	}

	page, err := h.pages.GetByID(r.Context(), id)
	if err != nil {
		h.storeError(w, r, "failed to get page", err)
		return
	}
	if index < 0 || index >= len(page.Sections) {
		jsonutil.NotFound(w, "section not found")
		return
	}

	if err := h.pages.SetSections(r.Context(), id, sections.Move(page.Sections, index, target)); err != nil {
		h.storeError(w, r, "failed to move section", err)
		return
	}
	h.respondWithSections(w, r, id)
}

func (h *Handler) respondWithSections(w http.ResponseWriter, r *http.Request, id primitive.ObjectID) {
	page, err := h.pages.GetByID(r.Context(), id)
	if err != nil {
		h.storeError(w, r, "failed to reload page", err)
		return
	}
	jsonutil.OK(w, page)
}
