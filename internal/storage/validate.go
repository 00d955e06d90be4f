package storage

import (
	"errors"
	"mime/multipart"
)

// Upload rejection modes. Handlers map each to its own 400 message so
// clients can tell a bad type from an oversized file.
var (
	ErrFileType     = errors.New("invalid file type: only JPEG, PNG, GIF and WebP images are allowed")
	ErrFileTooLarge = errors.New("file size must not exceed 5MB")
)

// allowedMimeTypes is the fixed allow-list for uploaded images.
var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// ValidateUpload checks a multipart file's declared content type and size
// before it is admitted to storage. The size ceiling is exclusive: a file
// of exactly maxSize bytes is rejected.
func ValidateUpload(fh *multipart.FileHeader, maxSize int64) error {
	if !allowedMimeTypes[fh.Header.Get("Content-Type")] {
		return ErrFileType
	}
	if fh.Size >= maxSize {
		return ErrFileTooLarge
	}
	return nil
}
