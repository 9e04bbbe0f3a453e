package wallet

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetUserTransactions returns the authenticated professional's credit
// movements, newest first
func (h *Handler) GetUserTransactions(c echo.Context) error {
	uid, ok := c.Get("user_id").(string)
	if !ok || uid == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "unauthorized or invalid user",
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"transactions": h.store.CreditTransactions(uid)})
}
