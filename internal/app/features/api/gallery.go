// internal/app/features/api/gallery.go
package api

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/lexsite/lexsite/internal/app/system/jsonutil"
	"github.com/lexsite/lexsite/internal/domain/models"
)

// galleryItemJSON augments the stored item with a servable image URL so
// the admin console can show thumbnails.
type galleryItemJSON struct {
	models.GalleryItem
	ImageURL string `json:"image_url,omitempty"`
}

func (h *Handler) listGallery(w http.ResponseWriter, r *http.Request) {
	items, err := h.gallery.GetAll(r.Context())
	if err != nil {
		h.storeError(w, r, "failed to list gallery", err)
		return
	}

	out := make([]galleryItemJSON, 0, len(items))
	for _, item := range items {
		entry := galleryItemJSON{GalleryItem: item}
		if item.ImagePath != "" {
			entry.ImageURL = h.files.URL(item.ImagePath)
		}
		out = append(out, entry)
	}
	jsonutil.OK(w, out)
}

type galleryInput struct {
	Title     string `json:"title"`
	Caption   string `json:"caption"`
	Category  string `json:"category"`
	ImagePath string `json:"image_path"`
	ImageName string `json:"image_name"`
	// Pointer so an omitted flag defaults to visible instead of hidden.
	ShowInGallery *bool `json:"show_in_gallery"`
	Order         int   `json:"order"`
}

func (in *galleryInput) toModel() models.GalleryItem {
	item := models.GalleryItem{
		Title:         in.Title,
		Caption:       in.Caption,
		Category:      in.Category,
		ImagePath:     in.ImagePath,
		ImageName:     in.ImageName,
		ShowInGallery: true,
		Order:         in.Order,
	}
	if in.ShowInGallery != nil {
		item.ShowInGallery = *in.ShowInGallery
	}
	return item
}

// createGalleryItem records an already-uploaded image as a gallery entry.
// The image itself goes through POST /api/upload first.
func (h *Handler) createGalleryItem(w http.ResponseWriter, r *http.Request) {
	var in galleryInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}
	if in.ImagePath == "" {
		jsonutil.ValidationError(w, map[string]string{"image_path": "Image path is required."})
		return
	}

	item := in.toModel()
	if err := h.gallery.Create(r.Context(), &item); err != nil {
		h.storeError(w, r, "failed to create gallery item", err)
		return
	}
	jsonutil.Created(w, item)
}

// updateGalleryItem replaces the editable fields. When the update points the
// item at a different image, the previously stored file is deleted
// best-effort, same as deleteGalleryItem.
func (h *Handler) updateGalleryItem(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	var in galleryInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}
	if in.ImagePath == "" {
		jsonutil.ValidationError(w, map[string]string{"image_path": "Image path is required."})
		return
	}

	prev, err := h.gallery.GetByID(r.Context(), id)
	if err != nil {
		h.storeError(w, r, "failed to get gallery item", err)
		return
	}

	item := in.toModel()
	if err := h.gallery.Update(r.Context(), id, item); err != nil {
		h.storeError(w, r, "failed to update gallery item", err)
		return
	}

	if prev.ImagePath != "" && prev.ImagePath != item.ImagePath {
		if err := h.files.Delete(r.Context(), prev.ImagePath); err != nil {
			h.logger.Warn("failed to delete replaced gallery image file",
				zap.String("path", prev.ImagePath),
				zap.Error(err),
			)
		}
	}

	updated, err := h.gallery.GetByID(r.Context(), id)
	if err != nil {
		h.storeError(w, r, "failed to reload gallery item", err)
		return
	}
	jsonutil.OK(w, updated)
}

// deleteGalleryItem removes the record and then the stored image file.
// The file delete is best-effort: a storage failure is logged but the
// item is still gone.
func (h *Handler) deleteGalleryItem(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	item, err := h.gallery.GetByID(r.Context(), id)
	if err != nil {
		h.storeError(w, r, "failed to get gallery item", err)
		return
	}

	if err := h.gallery.Delete(r.Context(), id); err != nil {
		h.storeError(w, r, "failed to delete gallery item", err)
		return
	}

	if item.ImagePath != "" {
		if err := h.files.Delete(r.Context(), item.ImagePath); err != nil {
			h.logger.Warn("failed to delete gallery image file",
				zap.String("path", item.ImagePath),
				zap.Error(err),
			)
		}
	}

	jsonutil.NoContent(w)
}
