package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dbgeneral/construction-api/internal/model"
	"github.com/dbgeneral/construction-api/internal/repository"
)

// ServiceHandler serves the service-catalog CRUD endpoints.
type ServiceHandler struct {
	Env      string
	Services *repository.ServiceRepo
}

func NewServiceHandler(env string, services *repository.ServiceRepo) *ServiceHandler {
	return &ServiceHandler{Env: env, Services: services}
}

type serviceReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// List handles GET /api/services (public).
func (h *ServiceHandler) List(c echo.Context) error {
	services, err := h.Services.List(c.Request().Context())
	if err != nil {
		return serverError(c, h.Env, "Failed to retrieve services", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"count":   len(services),
		"data":    services,
	})
}

// GetByID handles GET /api/services/:id (public).
func (h *ServiceHandler) GetByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Validation Error", "message": "Invalid id"})
	}
	s, err := h.Services.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Not Found", "message": "Service not found"})
		}
		return serverError(c, h.Env, "Failed to retrieve service", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": s})
}

// Create handles POST /api/services (admin).
func (h *ServiceHandler) Create(c echo.Context) error {
	var req serviceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Validation Error", "message": "Invalid input data"})
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" || strings.TrimSpace(req.Icon) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":   "Validation Error",
			"message": "Title, description and icon are required",
		})
	}
	s := model.Service{Title: req.Title, Description: req.Description, Icon: req.Icon}
	if err := h.Services.Create(c.Request().Context(), &s); err != nil {
		return serverError(c, h.Env, "Failed to create service", err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"message": "Service created successfully",
		"data":    s,
	})
}

// Update handles PUT /api/services/:id (admin). Omitted fields keep their
// current value.
func (h *ServiceHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Validation Error", "message": "Invalid id"})
	}
	s, err := h.Services.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Not Found", "message": "Service not found"})
		}
		return serverError(c, h.Env, "Failed to update service", err)
	}

	var req serviceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Validation Error", "message": "Invalid input data"})
	}
	if req.Title != "" {
		s.Title = req.Title
	}
	if req.Description != "" {
		s.Description = req.Description
	}
	if req.Icon != "" {
		s.Icon = req.Icon
	}
	if err := h.Services.Update(c.Request().Context(), &s); err != nil {
		return serverError(c, h.Env, "Failed to update service", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Service updated successfully",
		"data":    s,
	})
}

// Delete handles DELETE /api/services/:id (admin).
func (h *ServiceHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Validation Error", "message": "Invalid id"})
	}
	if err := h.Services.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Not Found", "message": "Service not found"})
		}
		return serverError(c, h.Env, "Failed to delete service", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Service deleted successfully",
	})
}
