package handlers

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/noorix/hub/backend/auth"
	"github.com/noorix/hub/backend/service"
	"github.com/noorix/hub/backend/store"
)

const imagePrefix = "images/"

var allowedImageExts = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
	".gif":  "image/gif",
}

type UploadHandler struct {
	DB       *store.DB
	Guard    *auth.Guard
	S3       *service.S3Service
	MaxBytes int64
}

// Upload stores a content image in S3 and returns the stable URL it can be
// referenced at. Content managers only.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := h.Guard.Authorize(r.Context(), session(r), auth.ContentManager()); err != nil {
		writeGuardError(w, err)
		return
	}
	if h.S3 == nil {
		writeMessage(w, http.StatusServiceUnavailable, "upload not configured (missing S3)")
		return
	}
	if h.MaxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.MaxBytes)
	}
	if err := r.ParseMultipartForm(h.MaxBytes); err != nil {
		writeMessage(w, http.StatusBadRequest, "failed to parse multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "missing file")
		return
	}
	defer file.Close()

	ext := strings.ToLower(strings.TrimSpace(filepath.Ext(header.Filename)))
	contentType, ok := allowedImageExts[ext]
	if !ok {
		writeMessage(w, http.StatusBadRequest, "only png, jpeg, webp and gif images are allowed")
		return
	}
	if ct := header.Header.Get("Content-Type"); strings.HasPrefix(ct, "image/") {
		contentType = ct
	}

	key, err := h.S3.Upload(r.Context(), imagePrefix, header.Filename, file, contentType)
	if err != nil {
		writeStoreError(w, "failed to upload image", err)
		return
	}
	writeJSON(w, http.StatusCreated, envelope{
		"message": "image uploaded",
		"key":     key,
		"url":     "/api/images/" + strings.TrimPrefix(key, imagePrefix),
	})
}

// ServeImage streams an uploaded image back out of S3. Public, so image tags
// on the marketing pages can reference uploads directly.
func (h *UploadHandler) ServeImage(w http.ResponseWriter, r *http.Request) {
	if h.S3 == nil {
		writeMessage(w, http.StatusNotFound, "image not found")
		return
	}
	name := chi.URLParam(r, "*")
	if name == "" || strings.Contains(name, "..") {
		writeMessage(w, http.StatusBadRequest, "invalid image path")
		return
	}
	body, contentType, err := h.S3.GetObject(r.Context(), imagePrefix+name)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "image not found")
		return
	}
	defer body.Close()
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	_, _ = io.Copy(w, body)
}
