package wallet

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/valeconecta/conecta/internal/utils"
)

// AdminGetAllTransactions returns every credit movement for admin monitoring
func (h *Handler) AdminGetAllTransactions(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"transactions": h.store.CreditTransactions("")})
}

// AdminGetUserTransactions returns the credit movements of one professional (admin view)
func (h *Handler) AdminGetUserTransactions(c echo.Context) error {
	proID := c.Param("id")
	if proID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "professional ID is required"})
	}
	if _, err := h.store.GetProfessional(proID); err != nil {
		return utils.Fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"transactions": h.store.CreditTransactions(proID)})
}
