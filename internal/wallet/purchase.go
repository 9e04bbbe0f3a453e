package wallet

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/valeconecta/conecta/internal/utils"
)

type PurchaseResponse struct {
	TransactionID string  `json:"transaction_id"`
	Credits       int     `json:"credits"`
	Price         float64 `json:"price"`
	Balance       int     `json:"balance"`
	Message       string  `json:"message"`
}

// PurchaseCredits adds one credit pack to the balance.
// POST /wallet/credits/purchase
// No payment is collected; the pack is granted immediately.
func (h *Handler) PurchaseCredits(c echo.Context) error {
	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	tx, err := h.store.PurchaseCredits(userID)
	if err != nil {
		return utils.Fail(c, err)
	}
	h.notify.CreditsPurchased(tx)
	h.log.Info("credits purchased", zap.String("pro_id", userID), zap.Int("credits", tx.Amount), zap.Int("balance", tx.BalanceAfter))

	return c.JSON(http.StatusOK, PurchaseResponse{
		TransactionID: tx.ID,
		Credits:       tx.Amount,
		Price:         tx.Price,
		Balance:       tx.BalanceAfter,
		Message:       "Créditos adicionados com sucesso!",
	})
}
