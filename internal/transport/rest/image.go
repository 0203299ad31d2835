package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/novahq/nova-backend/internal/domain"
)

// imageOpener defines the minimal interface for reading stored attachments.
type imageOpener interface {
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// ImageHandler serves stored item photos.
type ImageHandler struct {
	images imageOpener
	log    *slog.Logger
}

// NewImageHandler creates an ImageHandler.
func NewImageHandler(images imageOpener, logger *slog.Logger) *ImageHandler {
	return &ImageHandler{images: images, log: logger.With("handler", "image")}
}

// Get handles GET /api/images/{key}. All stored photos are re-encoded to
// JPEG at upload time, so the content type is fixed.
func (h *ImageHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	if key == "" {
		writeError(w, http.StatusBadRequest, "missing image key")
		return
	}

	rc, err := h.images.Open(r.Context(), key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		h.log.ErrorContext(r.Context(), "open image failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	if _, err := io.Copy(w, rc); err != nil {
		h.log.WarnContext(r.Context(), "image stream interrupted",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}
