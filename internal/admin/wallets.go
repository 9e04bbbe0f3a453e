package admin

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/valeconecta/conecta/internal/models"
)

type AdminWallet struct {
	ProID   string `json:"pro_id"`
	Name    string `json:"name"`
	Balance int    `json:"balance"`
	Unlocks int    `json:"unlocks"`
}

// GET /admin/wallets
func (h *Handler) ListWallets(c echo.Context) error {
	unlocks := make(map[string]int)
	for _, tx := range h.store.CreditTransactions("") {
		if tx.Type == models.TxUnlock {
			unlocks[tx.ProID]++
		}
	}

	pros := h.store.ListProfessionals()
	wallets := make([]AdminWallet, 0, len(pros))
	for _, p := range pros {
		wallets = append(wallets, AdminWallet{ProID: p.ID, Name: p.Name, Balance: p.Credits, Unlocks: unlocks[p.ID]})
	}
	return c.JSON(http.StatusOK, echo.Map{"wallets": wallets})
}
