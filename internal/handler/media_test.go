package handler

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbgeneral/construction-api/internal/model"
	"github.com/dbgeneral/construction-api/internal/repository"
	"github.com/dbgeneral/construction-api/internal/storage"
)

// fakeMediaStore keeps media records in memory and lets tests inject a
// usage count or a Create failure.
type fakeMediaStore struct {
	nextID    uint64
	records   map[uint64]model.Media
	usage     int64
	createErr error
}

func newFakeMediaStore() *fakeMediaStore {
	return &fakeMediaStore{nextID: 1, records: map[uint64]model.Media{}}
}

func (f *fakeMediaStore) List(_ context.Context) ([]model.Media, error) {
	out := make([]model.Media, 0, len(f.records))
	for _, m := range f.records {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeMediaStore) GetByID(_ context.Context, id uint64) (model.Media, error) {
	m, ok := f.records[id]
	if !ok {
		return model.Media{}, repository.ErrNotFound
	}
	return m, nil
}

func (f *fakeMediaStore) Create(_ context.Context, m *model.Media) error {
	if f.createErr != nil {
		return f.createErr
	}
	m.ID = f.nextID
	f.nextID++
	f.records[m.ID] = *m
	return nil
}

func (f *fakeMediaStore) DeleteIfUnused(_ context.Context, id uint64, removeFile func(string) error) error {
	m, ok := f.records[id]
	if !ok {
		return repository.ErrNotFound
	}
	if f.usage > 0 {
		return &repository.MediaInUseError{Count: f.usage}
	}
	delete(f.records, id)
	return removeFile(m.Filename)
}

func testMediaHandler(t *testing.T) (*MediaHandler, *fakeMediaStore, string) {
	t.Helper()
	dir := t.TempDir()
	files, err := storage.NewLocalStore(dir)
	require.NoError(t, err)
	store := newFakeMediaStore()
	return NewMediaHandler("test", 5242880, store, files), store, dir
}

// multipartBody builds a multipart form with one file part named field,
// carrying the given Content-Type on the part header.
func multipartBody(t *testing.T, field, filename, mimeType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	h.Set("Content-Type", mimeType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func doUpload(t *testing.T, h *MediaHandler, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/media/upload", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Upload(e.NewContext(req, rec)))
	return rec
}

func doDelete(t *testing.T, h *MediaHandler, id string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/media/"+id, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/media/:id")
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, h.Delete(c))
	return rec
}

func filesIn(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestUpload_Success(t *testing.T) {
	h, store, dir := testMediaHandler(t)

	content := []byte("fake image bytes")
	body, ct := multipartBody(t, "image", "site photo.jpg", "image/jpeg", content)
	rec := doUpload(t, h, body, ct)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	require.Len(t, store.records, 1)
	var saved model.Media
	for _, m := range store.records {
		saved = m
	}
	assert.Equal(t, "site photo.jpg", saved.OriginalName)
	assert.Equal(t, "image/jpeg", saved.MimeType)
	assert.Equal(t, int64(len(content)), saved.Size)
	assert.Equal(t, "/uploads/"+saved.Filename, saved.URL)

	// The bytes actually landed on disk under the generated name.
	data, err := os.ReadFile(filepath.Join(dir, saved.Filename))
	require.NoError(t, err)
	assert.Equal(t, content, data)
}

func TestUpload_NoFile(t *testing.T) {
	h, _, _ := testMediaHandler(t)

	body, ct := multipartBody(t, "document", "a.jpg", "image/jpeg", []byte("x"))
	rec := doUpload(t, h, body, ct)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "No file uploaded")
}

func TestUpload_InvalidType(t *testing.T) {
	h, store, dir := testMediaHandler(t)

	body, ct := multipartBody(t, "image", "doc.pdf", "application/pdf", []byte("%PDF-1.4"))
	rec := doUpload(t, h, body, ct)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid file type")
	assert.Empty(t, store.records)
	assert.Empty(t, filesIn(t, dir))
}

func TestUpload_TooLarge(t *testing.T) {
	h, store, dir := testMediaHandler(t)

	// Exactly 5 MiB is already over the limit.
	body, ct := multipartBody(t, "image", "big.png", "image/png", make([]byte, 5242880))
	rec := doUpload(t, h, body, ct)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "File size must not exceed 5MB")
	assert.Empty(t, store.records)
	assert.Empty(t, filesIn(t, dir))
}

func TestUpload_OrphanCleanup(t *testing.T) {
	h, store, dir := testMediaHandler(t)
	store.createErr = errors.New("insert failed")

	body, ct := multipartBody(t, "image", "photo.webp", "image/webp", []byte("bytes"))
	rec := doUpload(t, h, body, ct)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	// The written file was removed again when the insert failed.
	assert.Empty(t, filesIn(t, dir))
}

func uploadOne(t *testing.T, h *MediaHandler, store *fakeMediaStore) model.Media {
	t.Helper()
	body, ct := multipartBody(t, "image", "keep.gif", "image/gif", []byte("gif!"))
	rec := doUpload(t, h, body, ct)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, store.records, 1)
	for _, m := range store.records {
		return m
	}
	return model.Media{}
}

func TestDelete_InUse(t *testing.T) {
	h, store, dir := testMediaHandler(t)
	m := uploadOne(t, h, store)
	store.usage = 3

	rec := doDelete(t, h, "1")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "currently used in one or more projects")
	assert.Contains(t, rec.Body.String(), `"usageCount":3`)

	// Record and file both survive a refused delete.
	assert.Contains(t, store.records, m.ID)
	assert.Contains(t, filesIn(t, dir), m.Filename)
}

func TestDelete_Unused(t *testing.T) {
	h, store, dir := testMediaHandler(t)
	uploadOne(t, h, store)

	rec := doDelete(t, h, "1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Image deleted successfully")
	assert.Empty(t, store.records)
	assert.Empty(t, filesIn(t, dir))

	// A second delete of the same id is a plain 404.
	rec = doDelete(t, h, "1")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDelete_BadID(t *testing.T) {
	h, _, _ := testMediaHandler(t)
	rec := doDelete(t, h, "abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetByID_NotFound(t *testing.T) {
	h, _, _ := testMediaHandler(t)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/media/9", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/media/:id")
	c.SetParamNames("id")
	c.SetParamValues("9")
	require.NoError(t, h.GetByID(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
