package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbgeneral/construction-api/internal/config"
	"github.com/dbgeneral/construction-api/internal/middleware"
	"github.com/dbgeneral/construction-api/internal/model"
	"github.com/dbgeneral/construction-api/internal/repository"
	"github.com/dbgeneral/construction-api/internal/utils"
)

type fakeUserStore struct {
	users      map[uint64]model.AdminUser
	lastLogins map[uint64]time.Time
}

func newFakeUserStore(t *testing.T) *fakeUserStore {
	t.Helper()
	hash, err := utils.HashPassword("secret123", 10)
	require.NoError(t, err)
	return &fakeUserStore{
		users: map[uint64]model.AdminUser{
			1: {ID: 1, Username: "admin", Email: "admin@example.com", Name: "Site Admin", Role: "admin", Password: hash},
		},
		lastLogins: map[uint64]time.Time{},
	}
}

func (f *fakeUserStore) GetByUsername(_ context.Context, username string) (model.AdminUser, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return model.AdminUser{}, repository.ErrNotFound
}

func (f *fakeUserStore) GetByID(_ context.Context, id uint64) (model.AdminUser, error) {
	u, ok := f.users[id]
	if !ok {
		return model.AdminUser{}, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserStore) TouchLastLogin(_ context.Context, id uint64, at time.Time) error {
	f.lastLogins[id] = at
	return nil
}

func testAuthHandler(t *testing.T) (*AuthHandler, *fakeUserStore) {
	t.Helper()
	store := newFakeUserStore(t)
	cfg := config.Config{Env: "test", JWTSecret: "test-secret", JWTExpiresIn: time.Hour}
	return NewAuthHandler(cfg, store), store
}

func postLogin(t *testing.T, h *AuthHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Login(e.NewContext(req, rec)))
	return rec
}

func TestLogin_Success(t *testing.T) {
	h, store := testAuthHandler(t)

	rec := postLogin(t, h, `{"username":"admin","password":"secret123"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
		User    struct {
			ID       uint64 `json:"id"`
			Username string `json:"username"`
			Role     string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "admin", resp.User.Username)
	assert.Equal(t, "admin", resp.User.Role)
	require.NotEmpty(t, resp.Token)

	// The issued token verifies against the same secret.
	claims, err := utils.ParseAccessToken("test-secret", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)

	// A successful login records the time.
	assert.Contains(t, store.lastLogins, uint64(1))
}

func TestLogin_WrongPassword(t *testing.T) {
	h, store := testAuthHandler(t)

	rec := postLogin(t, h, `{"username":"admin","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid username or password")
	assert.Empty(t, store.lastLogins)
}

func TestLogin_UnknownUser(t *testing.T) {
	h, _ := testAuthHandler(t)

	rec := postLogin(t, h, `{"username":"ghost","password":"secret123"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	// Unknown user and wrong password are indistinguishable to the caller.
	assert.Contains(t, rec.Body.String(), "Invalid username or password")
}

func TestLogin_MissingFields(t *testing.T) {
	h, _ := testAuthHandler(t)

	for _, body := range []string{`{}`, `{"username":"admin"}`, `{"password":"secret123"}`, `{"username":"  "}`} {
		rec := postLogin(t, h, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
	}
}

func TestLogout(t *testing.T) {
	h, _ := testAuthHandler(t)
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Logout(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Logout successful")
}

// getVerify runs GET /api/auth/verify through the real auth middleware,
// exactly as the router mounts it.
func getVerify(t *testing.T, h *AuthHandler, token string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	chained := middleware.JWTAuth(h.Cfg.JWTSecret)(h.Verify)
	require.NoError(t, chained(e.NewContext(req, rec)))
	return rec
}

func TestVerify_EndToEnd(t *testing.T) {
	h, _ := testAuthHandler(t)

	login := postLogin(t, h, `{"username":"admin","password":"secret123"}`)
	require.Equal(t, http.StatusOK, login.Code)
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(login.Body.Bytes(), &resp))

	rec := getVerify(t, h, resp.Token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"valid":true`)
}

func TestVerify_ExpiredToken(t *testing.T) {
	h, store := testAuthHandler(t)

	tok, err := utils.NewAccessToken(h.Cfg.JWTSecret, store.users[1], -time.Minute)
	require.NoError(t, err)

	rec := getVerify(t, h, tok)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, strings.ToLower(rec.Body.String()), "expired")
}

func TestVerify_UserGone(t *testing.T) {
	h, store := testAuthHandler(t)

	tok, err := utils.NewAccessToken(h.Cfg.JWTSecret, store.users[1], time.Hour)
	require.NoError(t, err)
	delete(store.users, 1)

	rec := getVerify(t, h, tok)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "no longer exists")
}

func TestVerify_NoToken(t *testing.T) {
	h, _ := testAuthHandler(t)
	rec := getVerify(t, h, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
