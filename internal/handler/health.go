package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Health reports service liveness for load balancers and monitoring.
func Health(env string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"status":      "OK",
			"message":     "Construction API is running",
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"environment": env,
		})
	}
}
