package middleware

import (
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"

	"github.com/valeconecta/conecta/internal/models"
)

// RequireRoles ensures the requester's role is one of the allowed roles.
// Usage: route(..., RequireRoles(models.RolePro))
func RequireRoles(roles ...models.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role := CurrentActor(c).Role
			if role == models.RoleGuest {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "role missing"})
			}
			if slices.Contains(roles, role) {
				return next(c)
			}
			return c.JSON(http.StatusForbidden, echo.Map{"error": "access denied"})
		}
	}
}
