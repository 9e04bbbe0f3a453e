package marketplace

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GET /catalog
func (h *Handler) Catalog(c echo.Context) error {
	cat := h.store.Catalog()
	return c.JSON(http.StatusOK, echo.Map{
		"cities":            cat.Cities,
		"services":          cat.Services,
		"unlock_cost":       h.store.UnlockCost(),
		"credit_pack_size":  h.store.CreditPackSize(),
		"credit_pack_price": h.store.CreditPackPrice(),
	})
}

// GET /plans
func (h *Handler) Plans(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"plans": h.store.ListPlans()})
}
