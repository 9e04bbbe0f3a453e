package user

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/valeconecta/conecta/internal/marketplace"
	"github.com/valeconecta/conecta/internal/utils"
)

// GET /pros/me
func (h *Handler) GetProfile(c echo.Context) error {
	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	p, err := h.store.GetProfessional(userID)
	if err != nil {
		return utils.Fail(c, err)
	}
	return c.JSON(http.StatusOK, marketplace.NewProfessionalView(p))
}
