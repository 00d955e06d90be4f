package router // package router wires HTTP routes to their handlers and middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/dbgeneral/construction-api/internal/config"
	"github.com/dbgeneral/construction-api/internal/handler"
	"github.com/dbgeneral/construction-api/internal/middleware"
)

// Handlers bundles every handler the API exposes.
type Handlers struct {
	Auth     *handler.AuthHandler
	Projects *handler.ProjectHandler
	Services *handler.ServiceHandler
	Company  *handler.CompanyHandler
	Inquiry  *handler.InquiryHandler
	Media    *handler.MediaHandler
}

// Register mounts the full route table. Public reads and the contact form
// carry no auth; every admin operation passes the JWT gate and then the
// role gate. Login additionally passes the redis rate limiter.
func Register(e *echo.Echo, cfg config.Config, rlCfg config.RateLimitConfig, rdb *redis.Client, h Handlers) {
	jwtGate := middleware.JWTAuth(cfg.JWTSecret)
	adminGate := middleware.RequireRole("admin")

	e.GET("/health", handler.Health(cfg.Env))
	e.Static("/uploads", cfg.UploadDir)

	// Unknown routes get the same envelope as every other error.
	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, echo.Map{
			"error":   "Not Found",
			"message": "Route not found",
		})
	})

	// Auth: login is rate limited, verify requires a valid token. Logout
	// is unauthenticated on purpose: tokens are stateless and discarding
	// one client-side needs no server state.
	auth := e.Group("/api/auth")
	auth.POST("/login", h.Auth.Login, middleware.LoginRateLimit(rlCfg, rdb))
	auth.POST("/logout", h.Auth.Logout)
	auth.GET("/verify", h.Auth.Verify, jwtGate)

	// Projects: public read, admin write.
	e.GET("/api/projects", h.Projects.List)
	e.GET("/api/projects/:id", h.Projects.GetByID)
	projects := e.Group("/api/projects", jwtGate, adminGate)
	projects.POST("", h.Projects.Create)
	projects.PUT("/:id", h.Projects.Update)
	projects.DELETE("/:id", h.Projects.Delete)

	// Services: public read, admin write.
	e.GET("/api/services", h.Services.List)
	e.GET("/api/services/:id", h.Services.GetByID)
	services := e.Group("/api/services", jwtGate, adminGate)
	services.POST("", h.Services.Create)
	services.PUT("/:id", h.Services.Update)
	services.DELETE("/:id", h.Services.Delete)

	// Company info: public read, admin write.
	e.GET("/api/company", h.Company.Get)
	e.PUT("/api/company", h.Company.Update, jwtGate, adminGate)

	// Inquiries: the contact form is public, triage is admin-only.
	e.POST("/api/inquiries", h.Inquiry.Create)
	inquiries := e.Group("/api/inquiries", jwtGate, adminGate)
	inquiries.GET("", h.Inquiry.List)
	inquiries.GET("/unread/count", h.Inquiry.UnreadCount)
	inquiries.GET("/:id", h.Inquiry.GetByID)
	inquiries.PUT("/:id/status", h.Inquiry.UpdateStatus)
	inquiries.DELETE("/:id", h.Inquiry.Delete)

	// Media: everything behind the gates, including reads.
	media := e.Group("/api/media", jwtGate, adminGate)
	media.GET("", h.Media.List)
	media.GET("/:id", h.Media.GetByID)
	media.POST("/upload", h.Media.Upload)
	media.DELETE("/:id", h.Media.Delete)
}
