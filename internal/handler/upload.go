package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/jaiganesh5555/arcade/internal/middleware"
	"github.com/jaiganesh5555/arcade/internal/model"
	"github.com/jaiganesh5555/arcade/internal/storage"
)

const maxUploadSize = 10 << 20 // 10MB

// Uploader stores a blob under a key and returns its public URL.
// *storage.S3Uploader satisfies it.
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

// UploadHandler handles image uploads to object storage.
type UploadHandler struct {
	uploader Uploader
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(uploader Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// HandleUploadImage handles POST /api/upload-image requests. It expects a
// single multipart field named "image" and responds with the stored object's
// public URL.
func (h *UploadHandler) HandleUploadImage(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserIDFromContext(r.Context()); !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	file, header, err := r.FormFile("image")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("image file is required"))
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := storage.ObjectKey(header.Filename)
	url, err := h.uploader.Upload(r.Context(), key, contentType, file)
	if err != nil {
		if errors.Is(err, storage.ErrBucketNotConfigured) {
			slog.Error("upload rejected: no bucket configured")
			writeJSON(w, http.StatusInternalServerError, errorResponse("storage is not configured"))
			return
		}
		slog.Error("image upload failed", "key", key, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("image upload failed"))
		return
	}

	writeJSON(w, http.StatusOK, model.UploadResponse{URL: url})
}
