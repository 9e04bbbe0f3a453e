package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/valeconecta/conecta/internal/models"
)

// TokenParser turns a bearer token into the actor it was issued to.
type TokenParser interface {
	Parse(token string) (models.Actor, error)
}

// JWT rejects requests without a valid bearer token and stores the
// token's user_id and role in the echo context.
func JWT(parser TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing Authorization header"})
			}
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid Authorization format"})
			}

			actor, err := parser.Parse(token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
			}
			c.Set("user_id", actor.ID)
			c.Set("role", string(actor.Role))
			return next(c)
		}
	}
}

// CurrentActor reads the identity JWT stored on the context. Requests that
// did not pass through JWT come back as guests.
func CurrentActor(c echo.Context) models.Actor {
	id, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)
	if role == "" {
		return models.Actor{Role: models.RoleGuest}
	}
	return models.Actor{ID: id, Role: models.Role(role)}
}

// OptionalJWT identifies the caller when a valid bearer token is sent and
// lets everyone else through as a guest.
func OptionalJWT(parser TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := strings.CutPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
			if ok && token != "" {
				if actor, err := parser.Parse(token); err == nil {
					c.Set("user_id", actor.ID)
					c.Set("role", string(actor.Role))
				}
			}
			return next(c)
		}
	}
}
