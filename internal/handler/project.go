package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dbgeneral/construction-api/internal/model"
	"github.com/dbgeneral/construction-api/internal/repository"
)

// ProjectHandler serves the portfolio CRUD endpoints.
type ProjectHandler struct {
	Env      string
	Projects *repository.ProjectRepo
}

func NewProjectHandler(env string, projects *repository.ProjectRepo) *ProjectHandler {
	return &ProjectHandler{Env: env, Projects: projects}
}

type projectImageReq struct {
	Src       string `json:"src"`
	Alt       string `json:"alt"`
	Thumbnail string `json:"thumbnail"`
}

// projectReq is shared by create and update. Images is a pointer so an
// update can distinguish "leave the gallery alone" (field omitted) from
// "replace it with this list" (field present, possibly empty).
type projectReq struct {
	Title          string             `json:"title"`
	Description    string             `json:"description"`
	Category       string             `json:"category"`
	CompletionDate string             `json:"completionDate"`
	Location       string             `json:"location"`
	Images         *[]projectImageReq `json:"images"`
}

func toImages(reqs []projectImageReq) []model.ProjectImage {
	images := make([]model.ProjectImage, 0, len(reqs))
	for _, img := range reqs {
		if strings.TrimSpace(img.Src) == "" {
			continue
		}
		images = append(images, model.ProjectImage{Src: img.Src, Alt: img.Alt, Thumbnail: img.Thumbnail})
	}
	return images
}

// List handles GET /api/projects (public).
func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.Projects.List(c.Request().Context())
	if err != nil {
		return serverError(c, h.Env, "Failed to retrieve projects", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"count":   len(projects),
		"data":    projects,
	})
}

// GetByID handles GET /api/projects/:id (public).
func (h *ProjectHandler) GetByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Validation Error", "message": "Invalid id"})
	}
	p, err := h.Projects.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Not Found", "message": "Project not found"})
		}
		return serverError(c, h.Env, "Failed to retrieve project", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": p})
}

// Create handles POST /api/projects (admin).
func (h *ProjectHandler) Create(c echo.Context) error {
	var req projectReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Validation Error", "message": "Invalid input data"})
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" ||
		strings.TrimSpace(req.Category) == "" || strings.TrimSpace(req.Location) == "" ||
		strings.TrimSpace(req.CompletionDate) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":   "Validation Error",
			"message": "Title, description, category, completion date and location are required",
		})
	}
	completion, err := parseDate(req.CompletionDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Validation Error", "message": "Completion date must be a valid date"})
	}

	p := model.Project{
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		CompletionDate: completion,
		Location:       req.Location,
	}
	if req.Images != nil {
		p.Images = toImages(*req.Images)
	}
	if err := h.Projects.Create(c.Request().Context(), &p); err != nil {
		return serverError(c, h.Env, "Failed to create project", err)
	}
	created, err := h.Projects.GetByID(c.Request().Context(), p.ID)
	if err != nil {
		created = p
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"message": "Project created successfully",
		"data":    created,
	})
}

// Update handles PUT /api/projects/:id (admin). Omitted scalar fields keep
// their current value; a present images list replaces the gallery.
func (h *ProjectHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Validation Error", "message": "Invalid id"})
	}
	p, err := h.Projects.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Not Found", "message": "Project not found"})
		}
		return serverError(c, h.Env, "Failed to update project", err)
	}

	var req projectReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Validation Error", "message": "Invalid input data"})
	}
	if req.Title != "" {
		p.Title = req.Title
	}
	if req.Description != "" {
		p.Description = req.Description
	}
	if req.Category != "" {
		p.Category = req.Category
	}
	if req.Location != "" {
		p.Location = req.Location
	}
	if req.CompletionDate != "" {
		completion, err := parseDate(req.CompletionDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Validation Error", "message": "Completion date must be a valid date"})
		}
		p.CompletionDate = completion
	}

	var images []model.ProjectImage
	if req.Images != nil {
		images = toImages(*req.Images)
	}
	if err := h.Projects.Update(c.Request().Context(), &p, images, req.Images != nil); err != nil {
		return serverError(c, h.Env, "Failed to update project", err)
	}
	updated, err := h.Projects.GetByID(c.Request().Context(), id)
	if err != nil {
		updated = p
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Project updated successfully",
		"data":    updated,
	})
}

// Delete handles DELETE /api/projects/:id (admin). Project images go with
// the project.
func (h *ProjectHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Validation Error", "message": "Invalid id"})
	}
	if err := h.Projects.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Not Found", "message": "Project not found"})
		}
		return serverError(c, h.Env, "Failed to delete project", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Project deleted successfully",
	})
}
