// Package handler defines the HTTP handlers behind the REST API. Every
// handler maps failures onto the shared JSON envelope {error, message};
// lower layers return typed errors so the right status code can be chosen
// here.
package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// parseID reads the :id route parameter as a uint64.
func parseID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

// serverError writes the generic 500 envelope. The underlying error is
// logged server-side and only exposed to the client in development mode.
func serverError(c echo.Context, env, message string, err error) error {
	c.Logger().Errorf("%s: %v", message, err)
	resp := echo.Map{"error": "Server Error", "message": message}
	if env == "development" && err != nil {
		resp["details"] = err.Error()
	}
	return c.JSON(http.StatusInternalServerError, resp)
}

// parseDate accepts the date formats the admin frontend sends.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
