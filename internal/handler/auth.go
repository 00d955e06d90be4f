package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dbgeneral/construction-api/internal/config"
	"github.com/dbgeneral/construction-api/internal/middleware"
	"github.com/dbgeneral/construction-api/internal/model"
	"github.com/dbgeneral/construction-api/internal/repository"
	"github.com/dbgeneral/construction-api/internal/utils"
)

// UserStore is the slice of the credential store the auth endpoints need.
// *repository.AdminUserRepo satisfies it.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (model.AdminUser, error)
	GetByID(ctx context.Context, id uint64) (model.AdminUser, error)
	TouchLastLogin(ctx context.Context, id uint64, at time.Time) error
}

// AuthHandler bundles dependencies for the auth endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users UserStore
}

func NewAuthHandler(cfg config.Config, users UserStore) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: users}
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userPart struct {
	ID        uint64     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

func toUserPart(u model.AdminUser) userPart {
	return userPart{ID: u.ID, Username: u.Username, Email: u.Email, Name: u.Name, Role: u.Role, LastLogin: u.LastLogin}
}

// Login handles POST /api/auth/login: verify credentials, issue a token,
// record the login time. Unknown user and wrong password produce the same
// 401 so the response does not reveal which usernames exist.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":   "Validation Error",
			"message": "Username and password are required",
		})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":   "Validation Error",
			"message": "Username and password are required",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{
				"error":   "Authentication Failed",
				"message": "Invalid username or password",
			})
		}
		return serverError(c, h.Cfg.Env, "An error occurred during login", err)
	}
	if !utils.VerifyPassword(u.Password, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error":   "Authentication Failed",
			"message": "Invalid username or password",
		})
	}

	token, err := utils.NewAccessToken(h.Cfg.JWTSecret, u, h.Cfg.JWTExpiresIn)
	if err != nil {
		return serverError(c, h.Cfg.Env, "An error occurred during login", err)
	}

	now := time.Now().UTC()
	if err := h.Users.TouchLastLogin(ctx, u.ID, now); err != nil {
		// Token is already issued; a failed last-login write should not
		// fail the authentication itself.
		c.Logger().Warnf("auth: last-login update failed for user %d: %v", u.ID, err)
	}
	u.LastLogin = &now

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user":    toUserPart(u),
	})
}

// Logout handles POST /api/auth/logout. Tokens are stateless and carry no
// server-side session, so logout is a client-side token discard; the
// endpoint exists for symmetry and logging.
func (h *AuthHandler) Logout(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Logout successful",
	})
}

// Verify handles GET /api/auth/verify. The token was already validated by
// the auth middleware; this confirms the user behind it still exists.
func (h *AuthHandler) Verify(c echo.Context) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error":   "Authentication Required",
			"message": "No token provided",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error":   "User Not Found",
				"message": "User associated with this token no longer exists",
			})
		}
		return serverError(c, h.Cfg.Env, "An error occurred during token verification", err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"valid":   true,
		"user":    toUserPart(u),
	})
}
