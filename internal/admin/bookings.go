package admin

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/valeconecta/conecta/internal/middleware"
	"github.com/valeconecta/conecta/internal/models"
)

// GET /admin/bookings?status=paid
func (h *Handler) ListBookings(c echo.Context) error {
	status := models.BookingStatus(c.QueryParam("status"))

	all := h.store.ListBookings(middleware.CurrentActor(c))
	bookings := all[:0]
	for _, b := range all {
		if status == "" || b.Status == status {
			bookings = append(bookings, b)
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": bookings, "count": len(bookings)})
}
