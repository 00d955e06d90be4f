package storage

import (
	"errors"
	"mime/multipart"
	"net/textproto"
	"testing"
)

func header(name, contentType string, size int64) *multipart.FileHeader {
	h := textproto.MIMEHeader{}
	h.Set("Content-Type", contentType)
	return &multipart.FileHeader{Filename: name, Header: h, Size: size}
}

func TestValidateUpload_AllowedTypes(t *testing.T) {
	t.Parallel()

	for _, ct := range []string{"image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp"} {
		if err := ValidateUpload(header("a.img", ct, 100), 5242880); err != nil {
			t.Fatalf("type %s rejected: %v", ct, err)
		}
	}
}

func TestValidateUpload_RejectedTypes(t *testing.T) {
	t.Parallel()

	for _, ct := range []string{"application/pdf", "text/html", "image/svg+xml", "video/mp4", ""} {
		err := ValidateUpload(header("a.bin", ct, 100), 5242880)
		if !errors.Is(err, ErrFileType) {
			t.Fatalf("type %s: expected ErrFileType, got %v", ct, err)
		}
	}
}

func TestValidateUpload_SizeBoundary(t *testing.T) {
	t.Parallel()

	// The ceiling is exclusive: exactly 5 MiB is already too large.
	if err := ValidateUpload(header("a.png", "image/png", 5242880), 5242880); !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("5242880 bytes: expected ErrFileTooLarge, got %v", err)
	}
	if err := ValidateUpload(header("a.png", "image/png", 5242879), 5242880); err != nil {
		t.Fatalf("5242879 bytes rejected: %v", err)
	}
	if err := ValidateUpload(header("a.png", "image/png", 0), 5242880); err != nil {
		t.Fatalf("empty file rejected: %v", err)
	}
}

func TestValidateUpload_TypeCheckedBeforeSize(t *testing.T) {
	t.Parallel()

	err := ValidateUpload(header("a.pdf", "application/pdf", 99999999), 5242880)
	if !errors.Is(err, ErrFileType) {
		t.Fatalf("expected ErrFileType for oversized non-image, got %v", err)
	}
}
