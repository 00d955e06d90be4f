package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dbgeneral/construction-api/internal/model"
	"github.com/dbgeneral/construction-api/internal/queue"
	"github.com/dbgeneral/construction-api/internal/repository"
	"github.com/dbgeneral/construction-api/internal/service"
)

// InquiryHandler serves contact-form submission (public) and inquiry
// triage (admin).
type InquiryHandler struct {
	Env       string
	Inquiries *repository.InquiryRepo
	// Publish sends the received-event to the broker; swapped in tests.
	Publish func(ctx context.Context, ev queue.InquiryReceivedEvent) error
}

func NewInquiryHandler(env string, inquiries *repository.InquiryRepo) *InquiryHandler {
	return &InquiryHandler{Env: env, Inquiries: inquiries, Publish: service.PublishInquiryReceived}
}

type inquiryReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type statusReq struct {
	Status string `json:"status"`
}

// List handles GET /api/inquiries (admin), optionally filtered by
// ?status=unread|read|resolved.
func (h *InquiryHandler) List(c echo.Context) error {
	inquiries, err := h.Inquiries.List(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return serverError(c, h.Env, "Failed to retrieve inquiries", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"count":   len(inquiries),
		"data":    inquiries,
	})
}

// GetByID handles GET /api/inquiries/:id (admin).
func (h *InquiryHandler) GetByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Validation Error", "message": "Invalid id"})
	}
	in, err := h.Inquiries.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Not Found", "message": "Inquiry not found"})
		}
		return serverError(c, h.Env, "Failed to retrieve inquiry", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": in})
}

// Create handles POST /api/inquiries, the public contact form. On success
// an inquiry.received event is published in the background; a broker
// outage never fails the submission.
func (h *InquiryHandler) Create(c echo.Context) error {
	var req inquiryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Validation Error", "message": "Invalid input data"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)
	if req.Name == "" || req.Email == "" || req.Message == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":   "Validation Error",
			"message": "Name, email and message are required",
		})
	}
	if !looksLikeEmail(req.Email) {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":   "Validation Error",
			"message": "Must be a valid email address",
		})
	}

	in := model.Inquiry{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   strings.TrimSpace(req.Phone),
		Message: req.Message,
		Status:  model.InquiryStatusUnread,
	}
	if err := h.Inquiries.Create(c.Request().Context(), &in); err != nil {
		return serverError(c, h.Env, "Failed to submit inquiry", err)
	}

	if h.Publish != nil {
		ev := queue.InquiryReceivedEvent{
			InquiryID:  in.ID,
			Name:       in.Name,
			Email:      in.Email,
			Phone:      in.Phone,
			Message:    in.Message,
			ReceivedAt: in.CreatedAt.UTC().Format(time.RFC3339),
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = h.Publish(ctx, ev) // errors are logged by the publisher
		}()
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"message": "Inquiry submitted successfully. We will contact you soon!",
		"data":    in,
	})
}

// UpdateStatus handles PUT /api/inquiries/:id/status (admin).
func (h *InquiryHandler) UpdateStatus(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Validation Error", "message": "Invalid id"})
	}
	var req statusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Validation Error", "message": "Invalid input data"})
	}
	in, err := h.Inquiries.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		var vErr *repository.ValidationError
		switch {
		case errors.As(err, &vErr):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Validation Error", "message": vErr.Message})
		case errors.Is(err, repository.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Not Found", "message": "Inquiry not found"})
		default:
			return serverError(c, h.Env, "Failed to update inquiry status", err)
		}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Inquiry status updated successfully",
		"data":    in,
	})
}

// Delete handles DELETE /api/inquiries/:id (admin).
func (h *InquiryHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Validation Error", "message": "Invalid id"})
	}
	if err := h.Inquiries.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Not Found", "message": "Inquiry not found"})
		}
		return serverError(c, h.Env, "Failed to delete inquiry", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Inquiry deleted successfully",
	})
}

// UnreadCount handles GET /api/inquiries/unread/count (admin), powering
// the dashboard badge.
func (h *InquiryHandler) UnreadCount(c echo.Context) error {
	n, err := h.Inquiries.CountUnread(c.Request().Context())
	if err != nil {
		return serverError(c, h.Env, "Failed to count unread inquiries", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "count": n})
}

// looksLikeEmail is the lightweight shape check the contact form needs;
// real deliverability is the mail system's problem.
func looksLikeEmail(s string) bool {
	at := strings.Index(s, "@")
	if at < 1 || at == len(s)-1 {
		return false
	}
	domain := s[at+1:]
	return strings.Contains(domain, ".") && !strings.ContainsAny(s, " \t")
}
