// internal/app/features/api/upload.go
package api

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lexsite/lexsite/internal/app/system/jsonutil"
)

// maxUploadSize caps a single upload at 32 MB.
const maxUploadSize = 32 << 20

// allowedUploadExts is the whitelist of file extensions accepted by the
// admin upload endpoint. Everything else is rejected up front.
var allowedUploadExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true,
	".webp": true, ".svg": true, ".ico": true,
	".pdf": true, ".doc": true, ".docx": true,
}

// uploadResponse is returned for a stored file. Path goes back into
// entity documents (image_path, logo_path, ...); URL is where the file
// is served from.
type uploadResponse struct {
	Path string `json:"path"`
	Name string `json:"name"`
	Size int64  `json:"size"`
	URL  string `json:"url"`
}

// upload accepts one multipart file under the "file" field and stores it
// as uploads/YYYY/MM/<uuid><ext>.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		jsonutil.BadRequest(w, "upload too large or malformed")
		return
	}

	f, header, err := r.FormFile("file")
	if err != nil {
		jsonutil.ValidationError(w, map[string]string{"file": "A file is required."})
		return
	}
	defer f.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedUploadExts[ext] {
		jsonutil.ValidationError(w, map[string]string{"file": "This file type is not allowed."})
		return
	}

	now := time.Now().UTC()
	path := fmt.Sprintf("uploads/%04d/%02d/%s%s", now.Year(), int(now.Month()), uuid.New().String()[:8], ext)

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	opts := &storage.PutOptions{ContentType: contentType}
	if err := h.files.Put(r.Context(), path, f, opts); err != nil {
		h.logger.Error("failed to store upload",
			zap.String("path", path),
			zap.Error(err),
		)
		jsonutil.Error(w, http.StatusInternalServerError, "upload failed")
		return
	}

	jsonutil.Created(w, uploadResponse{
		Path: path,
		Name: header.Filename,
		Size: header.Size,
		URL:  h.files.URL(path),
	})
}
