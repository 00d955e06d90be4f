package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LocalStore writes uploaded files to a directory on disk. Filenames are
// generated server-side; client-provided names only contribute a sanitized
// base and extension so path traversal is impossible.
type LocalStore struct {
	dir string
}

// NewLocalStore ensures the upload directory exists and returns a store
// rooted at it.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{dir: dir}, nil
}

// Dir returns the directory files are stored under.
func (s *LocalStore) Dir() string { return s.dir }

// GenerateFilename produces a collision-resistant name for an upload:
// sanitized original base, millisecond timestamp, random suffix, original
// extension.
func (s *LocalStore) GenerateFilename(original string) string {
	base := filepath.Base(original)
	ext := strings.ToLower(filepath.Ext(base))
	name := sanitize(strings.TrimSuffix(base, filepath.Ext(base)))
	if name == "" {
		name = "upload"
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%s-%d-%s%s", name, time.Now().UnixMilli(), suffix, ext)
}

// Save streams src into a new file under the store directory and returns
// the number of bytes written. The caller owns cleanup on later failures.
func (s *LocalStore) Save(filename string, src io.Reader) (int64, error) {
	dst, err := os.Create(filepath.Join(s.dir, filepath.Base(filename)))
	if err != nil {
		return 0, err
	}
	defer dst.Close()
	return io.Copy(dst, src)
}

// Remove deletes a stored file. A file that is already absent is not an
// error so deletions stay idempotent.
func (s *LocalStore) Remove(filename string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(filename)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// sanitize strips everything but letters, digits, dash, underscore and dot
// from a filename fragment.
func sanitize(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-.")
}
