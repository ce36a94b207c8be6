// internal/app/features/admin/pageeditor.go
package admin

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/lexsite/lexsite/internal/app/system/sections"
	"github.com/lexsite/lexsite/internal/domain/models"
)

// PagesVM lists every page for the console.
type PagesVM struct {
	AdminVM
	Pages []models.Page
}

func (h *Handler) listPages(w http.ResponseWriter, r *http.Request) {
	pages, err := h.pages.GetAll(r.Context())
	if err != nil {
		h.logger.Error("failed to list pages", zap.Error(err))
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	vm := PagesVM{AdminVM: h.baseVM(r, "Pages"), Pages: pages}
	templates.Render(w, r, "admin/pages", vm)
}

// fieldVM is one rendered editor input.
type fieldVM struct {
	sections.Field
	Value string
}

// sectionEntryVM is one section in the editor. Known types render their
// registered field set; unknown types render a raw JSON textarea so the
// document stays editable no matter what tag it carries.
type sectionEntryVM struct {
	Index   int
	Type    string
	Known   bool
	First   bool
	Last    bool
	Fields  []fieldVM
	RawJSON string
}

// PageEditorVM is the view model for the section editor.
type PageEditorVM struct {
	AdminVM
	Page         models.Page
	Entries      []sectionEntryVM
	SectionTypes []string
	PageJSON     string
}

func (h *Handler) editPage(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	page, err := h.pages.GetByID(r.Context(), id)
	if err == mongo.ErrNoDocuments {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.logger.Error("failed to load page", zap.Error(err))
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	vm := PageEditorVM{
		AdminVM:      h.baseVM(r, "Edit: "+page.Title),
		Page:         page,
		SectionTypes: models.AllSectionTypes(),
	}

	for i, sec := range page.Sections {
		entry := sectionEntryVM{
			Index: i,
			Type:  sec.Type,
			First: i == 0,
			Last:  i == len(page.Sections)-1,
		}
		if fields, ok := sections.FieldsFor(sec.Type); ok {
			entry.Known = true
			entry.Fields = buildFieldVMs(fields, sec.Content)
		} else {
			entry.RawJSON = contentJSON(sec.Content)
		}
		vm.Entries = append(vm.Entries, entry)
	}

	if data, err := json.Marshal(page.Sections); err == nil {
		vm.PageJSON = string(data)
	}

	templates.Render(w, r, "admin/page_editor", vm)
}

func buildFieldVMs(fields []sections.Field, content map[string]any) []fieldVM {
	out := make([]fieldVM, 0, len(fields))
	for _, f := range fields {
		out = append(out, fieldVM{Field: f, Value: fieldValue(f, content)})
	}
	return out
}

// fieldValue renders the stored value for one editor input. Item lists are
// edited as JSON; scalars are stringified, with nil and absent keys blank.
func fieldValue(f sections.Field, content map[string]any) string {
	if content == nil {
		return ""
	}
	v, ok := content[f.Name]
	if !ok || v == nil {
		return ""
	}
	if f.Kind == sections.FieldItems {
		data, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(data)
	}
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}

func contentJSON(content map[string]any) string {
	if content == nil {
		return "{}"
	}
	data, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}
