package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRole returns middleware that enforces that the authenticated
// user's role claim is in the allowed set. It composes after JWTAuth:
// identity is already known here, so a failed check is 403, not 401.
// Missing claims (the gate somehow did not run) are treated the same way.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := CurrentClaims(c)
			if !ok || !allowed[claims.Role] {
				return c.JSON(http.StatusForbidden, echo.Map{
					"error":   "Access Denied",
					"message": "You do not have permission to access this resource",
				})
			}
			return next(c)
		}
	}
}

// HasRole is the transport-independent form of the role check, exposed
// for direct unit testing.
func HasRole(role string, allowed map[string]bool) bool {
	return allowed[role]
}
