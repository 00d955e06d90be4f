package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dbgeneral/construction-api/internal/model"
	"github.com/dbgeneral/construction-api/internal/repository"
	"github.com/dbgeneral/construction-api/internal/storage"
)

// MediaStore is the metadata side of the media endpoints;
// *repository.MediaRepo satisfies it.
type MediaStore interface {
	List(ctx context.Context) ([]model.Media, error)
	GetByID(ctx context.Context, id uint64) (model.Media, error)
	Create(ctx context.Context, m *model.Media) error
	DeleteIfUnused(ctx context.Context, id uint64, removeFile func(filename string) error) error
}

// FileStore is the physical side; *storage.LocalStore satisfies it.
type FileStore interface {
	GenerateFilename(original string) string
	Save(filename string, src io.Reader) (int64, error)
	Remove(filename string) error
}

// MediaHandler serves upload, listing and deletion of media files.
type MediaHandler struct {
	Env           string
	MaxUploadSize int64
	Media         MediaStore
	Files         FileStore
}

func NewMediaHandler(env string, maxUploadSize int64, media MediaStore, files FileStore) *MediaHandler {
	return &MediaHandler{Env: env, MaxUploadSize: maxUploadSize, Media: media, Files: files}
}

// List handles GET /api/media.
func (h *MediaHandler) List(c echo.Context) error {
	images, err := h.Media.List(c.Request().Context())
	if err != nil {
		return serverError(c, h.Env, "Failed to retrieve images", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"count":   len(images),
		"data":    images,
	})
}

// GetByID handles GET /api/media/:id.
func (h *MediaHandler) GetByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Validation Error", "message": "Invalid id"})
	}
	image, err := h.Media.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Not Found", "message": "Image not found"})
		}
		return serverError(c, h.Env, "Failed to retrieve image", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": image})
}

// Upload handles POST /api/media/upload. The multipart field is "image".
// The declared MIME type and size are validated before any bytes touch
// disk; if the metadata insert fails after the file is written, the
// orphaned file is removed again.
func (h *MediaHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":   "Validation Error",
			"message": "No file uploaded",
		})
	}

	if err := storage.ValidateUpload(fh, h.MaxUploadSize); err != nil {
		switch {
		case errors.Is(err, storage.ErrFileTooLarge):
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error":   "File Too Large",
				"message": "File size must not exceed 5MB",
			})
		default:
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error":   "Upload Error",
				"message": "Invalid file type. Only JPEG, PNG, GIF, and WebP images are allowed.",
			})
		}
	}

	src, err := fh.Open()
	if err != nil {
		return serverError(c, h.Env, "Failed to upload image", err)
	}
	defer src.Close()

	filename := h.Files.GenerateFilename(fh.Filename)
	if _, err := h.Files.Save(filename, src); err != nil {
		return serverError(c, h.Env, "Failed to upload image", err)
	}

	media := model.Media{
		Filename:     filename,
		OriginalName: fh.Filename,
		MimeType:     fh.Header.Get("Content-Type"),
		Size:         fh.Size,
		URL:          "/uploads/" + filename,
		UploadedAt:   time.Now().UTC(),
	}
	if err := h.Media.Create(c.Request().Context(), &media); err != nil {
		// The bytes are on disk but the record is not; remove the orphan.
		if rmErr := h.Files.Remove(filename); rmErr != nil {
			c.Logger().Errorf("media: orphan cleanup failed for %s: %v", filename, rmErr)
		}
		return serverError(c, h.Env, "Failed to upload image", err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"message": "Image uploaded successfully",
		"data":    media,
	})
}

// Delete handles DELETE /api/media/:id. Deletion is refused while any
// project image still references the media URL; otherwise record and file
// go away together and a repeated call reports 404.
func (h *MediaHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Validation Error", "message": "Invalid id"})
	}

	err = h.Media.DeleteIfUnused(c.Request().Context(), id, h.Files.Remove)
	if err != nil {
		var inUse *repository.MediaInUseError
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Not Found", "message": "Image not found"})
		case errors.As(err, &inUse):
			return c.JSON(http.StatusConflict, echo.Map{
				"error":      "Conflict",
				"message":    "Cannot delete image. It is currently used in one or more projects.",
				"usageCount": inUse.Count,
			})
		default:
			return serverError(c, h.Env, "Failed to delete image", err)
		}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Image deleted successfully",
	})
}
