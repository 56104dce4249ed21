package rest

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"toolroom-backend/internal/service"
	"toolroom-backend/internal/storage"
)

// ImageHandler serves tool image upload and download against local storage.
type ImageHandler struct {
	toolSvc     service.ToolService
	store       *storage.LocalStorage
	maxFileSize int64 // bytes
}

func NewImageHandler(toolSvc service.ToolService, store *storage.LocalStorage, maxFileSizeMB int64) *ImageHandler {
	return &ImageHandler{
		toolSvc:     toolSvc,
		store:       store,
		maxFileSize: maxFileSizeMB * 1024 * 1024,
	}
}

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

// Upload handles PUT /api/tools/{id}/image. The raw image is the request
// body; the stored key replaces any previous image path on the tool.
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid tool id")
		return
	}

	contentType := r.Header.Get("Content-Type")
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		respondError(w, http.StatusBadRequest, "unsupported image type")
		return
	}

	tool, err := h.toolSvc.GetTool(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	key := h.store.NewKey("image" + ext)
	body := http.MaxBytesReader(w, r.Body, h.maxFileSize)
	if err := h.store.Save(key, body); err != nil {
		respondError(w, http.StatusBadRequest, "failed to store image")
		return
	}

	if tool.ImagePath != "" {
		// Previous image is replaced; removal failure is not fatal.
		_ = h.store.Delete(tool.ImagePath)
	}

	if err := h.toolSvc.SetImagePath(r.Context(), id, key); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"image_path": key})
}

// Download handles GET /api/tools/{id}/image
func (h *ImageHandler) Download(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid tool id")
		return
	}

	tool, err := h.toolSvc.GetTool(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if tool.ImagePath == "" {
		respondError(w, http.StatusNotFound, "tool has no image")
		return
	}

	file, err := h.store.Open(tool.ImagePath)
	if err != nil {
		respondError(w, http.StatusNotFound, "image not found")
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	if _, err := io.Copy(w, file); err != nil {
		// Headers already sent; nothing more to do.
		return
	}
}
