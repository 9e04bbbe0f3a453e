package wallet

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/valeconecta/conecta/internal/utils"
)

// Balance returns the authenticated professional's credit balance
func (h *Handler) Balance(c echo.Context) error {
	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	balance, err := h.store.Balance(userID)
	if err != nil {
		return utils.Fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"user_id":     userID,
		"balance":     balance,
		"unlock_cost": h.store.UnlockCost(),
	})
}
