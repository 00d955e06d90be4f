package middleware // middleware contains reusable HTTP middleware functions

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dbgeneral/construction-api/internal/utils"
)

// claimsKey is the echo context key the verified token claims live under.
const claimsKey = "claims"

// JWTAuth returns middleware that validates a Bearer access token and
// stores its claims in the request context. Requests reach the wrapped
// handler only with a successfully verified, non-expired token; every
// decode failure maps to a 401, never a 500. The three rejection shapes
// (missing header, malformed header, bad token) each carry their own
// message, and an expired token is reported distinctly from an invalid
// one so clients can trigger a re-login.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if auth == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error":   "Authentication Required",
					"message": "No authorization header provided",
				})
			}
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error":   "Authentication Required",
					"message": "Invalid authorization header format. Use: Bearer <token>",
				})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")
			if raw == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error":   "Authentication Required",
					"message": "No token provided",
				})
			}

			claims, err := utils.ParseAccessToken(secret, raw)
			if err != nil {
				if errors.Is(err, utils.ErrTokenExpired) {
					return c.JSON(http.StatusUnauthorized, echo.Map{
						"error":   "Token Expired",
						"message": "Your session has expired. Please login again.",
					})
				}
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error":   "Invalid Token",
					"message": "The provided token is invalid",
				})
			}

			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// CurrentClaims returns the verified claims JWTAuth stored for this
// request, or false when the request did not pass through it.
func CurrentClaims(c echo.Context) (*utils.Claims, bool) {
	claims, ok := c.Get(claimsKey).(*utils.Claims)
	return claims, ok
}
