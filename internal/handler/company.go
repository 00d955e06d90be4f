package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dbgeneral/construction-api/internal/repository"
)

// CompanyHandler serves the single company-info record.
type CompanyHandler struct {
	Env     string
	Company *repository.CompanyRepo
}

func NewCompanyHandler(env string, company *repository.CompanyRepo) *CompanyHandler {
	return &CompanyHandler{Env: env, Company: company}
}

// companyReq uses pointers so an update can distinguish omitted optional
// fields from deliberately cleared ones.
type companyReq struct {
	CompanyName string  `json:"companyName"`
	History     string  `json:"history"`
	Mission     string  `json:"mission"`
	TeamInfo    *string `json:"teamInfo"`
	Address     *string `json:"address"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
}

// Get handles GET /api/company (public).
func (h *CompanyHandler) Get(c echo.Context) error {
	info, err := h.Company.Get(c.Request().Context())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Not Found", "message": "Company information not found"})
		}
		return serverError(c, h.Env, "Failed to retrieve company information", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": info})
}

// Update handles PUT /api/company (admin): update the existing record or
// create the first one. Required fields must be present when creating;
// when updating, empty required fields keep their current value.
func (h *CompanyHandler) Update(c echo.Context) error {
	var req companyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Validation Error", "message": "Invalid input data"})
	}

	ctx := c.Request().Context()
	info, err := h.Company.Get(ctx)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return serverError(c, h.Env, "Failed to update company information", err)
	}
	creating := errors.Is(err, repository.ErrNotFound)

	if creating && (strings.TrimSpace(req.CompanyName) == "" ||
		strings.TrimSpace(req.History) == "" || strings.TrimSpace(req.Mission) == "") {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":   "Validation Error",
			"message": "Company name, history and mission are required",
		})
	}

	if req.CompanyName != "" {
		info.CompanyName = req.CompanyName
	}
	if req.History != "" {
		info.History = req.History
	}
	if req.Mission != "" {
		info.Mission = req.Mission
	}
	if req.TeamInfo != nil {
		info.TeamInfo = *req.TeamInfo
	}
	if req.Address != nil {
		info.Address = *req.Address
	}
	if req.Phone != nil {
		info.Phone = *req.Phone
	}
	if req.Email != nil {
		info.Email = *req.Email
	}

	if err := h.Company.Upsert(ctx, &info); err != nil {
		return serverError(c, h.Env, "Failed to update company information", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Company information updated successfully",
		"data":    info,
	})
}
