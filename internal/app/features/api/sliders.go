// internal/app/features/api/sliders.go
package api

import (
	"net/http"
	"strings"

	"github.com/lexsite/lexsite/internal/app/system/inputval"
	"github.com/lexsite/lexsite/internal/app/system/jsonutil"
	"github.com/lexsite/lexsite/internal/domain/models"
)

type sliderInput struct {
	Title            string `json:"title" validate:"required,max=200" label:"Title"`
	Subtitle         string `json:"subtitle"`
	ImagePath        string `json:"image_path"`
	ButtonText       string `json:"button_text"`
	ButtonURL        string `json:"button_url"`
	TitleFontSize    string `json:"title_font_size"`
	SubtitleFontSize string `json:"subtitle_font_size"`
	IsActive         bool   `json:"is_active"`
	Order            int    `json:"order"`
}

func (in *sliderInput) toModel() (models.Slider, map[string]string) {
	fields := fieldErrors(inputval.Validate(*in))

	return models.Slider{
		Title:            strings.TrimSpace(in.Title),
		Subtitle:         in.Subtitle,
		ImagePath:        in.ImagePath,
		ButtonText:       in.ButtonText,
		ButtonURL:        in.ButtonURL,
		TitleFontSize:    in.TitleFontSize,
		SubtitleFontSize: in.SubtitleFontSize,
		IsActive:         in.IsActive,
		Order:            in.Order,
	}, fields
}

func (h *Handler) listSliders(w http.ResponseWriter, r *http.Request) {
	items, err := h.sliders.GetAll(r.Context())
	if err != nil {
		h.storeError(w, r, "failed to list sliders", err)
		return
	}
	jsonutil.OK(w, items)
}

func (h *Handler) getSlider(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	item, err := h.sliders.GetByID(r.Context(), id)
	if err != nil {
		h.storeError(w, r, "failed to get slider", err)
		return
	}
	jsonutil.OK(w, item)
}

func (h *Handler) createSlider(w http.ResponseWriter, r *http.Request) {
	var in sliderInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}

	sl, fields := in.toModel()
	if len(fields) > 0 {
		jsonutil.ValidationError(w, fields)
		return
	}

	if err := h.sliders.Create(r.Context(), &sl); err != nil {
		h.storeError(w, r, "failed to create slider", err)
		return
	}
	jsonutil.Created(w, sl)
}

func (h *Handler) updateSlider(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	var in sliderInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}

	sl, fields := in.toModel()
	if len(fields) > 0 {
		jsonutil.ValidationError(w, fields)
		return
	}

	if err := h.sliders.Update(r.Context(), id, sl); err != nil {
		h.storeError(w, r, "failed to update slider", err)
		return
	}

	updated, err := h.sliders.GetByID(r.Context(), id)
	if err != nil {
		h.storeError(w, r, "failed to reload slider", err)
		return
	}
	jsonutil.OK(w, updated)
}

func (h *Handler) deleteSlider(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	if err := h.sliders.Delete(r.Context(), id); err != nil {
		h.storeError(w, r, "failed to delete slider", err)
		return
	}
	jsonutil.NoContent(w)
}
