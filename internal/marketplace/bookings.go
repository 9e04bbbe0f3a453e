package marketplace

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/valeconecta/conecta/internal/db"
	"github.com/valeconecta/conecta/internal/middleware"
	"github.com/valeconecta/conecta/internal/models"
	"github.com/valeconecta/conecta/internal/payment"
	"github.com/valeconecta/conecta/internal/utils"
)

type CreateBookingRequest struct {
	ProID       string `json:"pro_id" validate:"required"`
	Service     string `json:"service"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time"`
	Address     string `json:"address" validate:"max=300"`
	Description string `json:"description" validate:"max=2000"`
}

type PayRequest struct {
	Method string `json:"method" validate:"required,oneof=pix card"`
}

// POST /bookings
func (h *Handler) CreateBooking(c echo.Context) error {
	actor := middleware.CurrentActor(c)

	req := new(CreateBookingRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "pro_id and date are required"})
	}

	b, err := h.store.CreateBooking(db.NewBooking{
		ProID:       req.ProID,
		ClientID:    actor.ID,
		Service:     req.Service,
		Date:        req.Date,
		Time:        req.Time,
		Address:     req.Address,
		Description: req.Description,
	})
	if err != nil {
		return utils.Fail(c, err)
	}
	h.notify.BookingRequested(b)
	h.log.Info("booking created", zap.String("booking_id", b.ID), zap.String("pro_id", b.ProID), zap.String("client_id", b.ClientID))

	return c.JSON(http.StatusCreated, echo.Map{
		"booking": b,
		"message": "Agendamento solicitado. Aguarde a confirmação do profissional.",
	})
}

// GET /bookings/me
func (h *Handler) MyBookings(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"bookings": h.store.ListBookings(middleware.CurrentActor(c))})
}

// POST /bookings/:id/accept
func (h *Handler) AcceptBooking(c echo.Context) error {
	return h.transition(c, models.BookingAccepted)
}

// POST /bookings/:id/reject
func (h *Handler) RejectBooking(c echo.Context) error {
	return h.transition(c, models.BookingRejected)
}

// POST /bookings/:id/complete
func (h *Handler) CompleteBooking(c echo.Context) error {
	return h.transition(c, models.BookingCompleted)
}

// POST /bookings/:id/finish
func (h *Handler) FinishBooking(c echo.Context) error {
	return h.transition(c, models.BookingFinished)
}

func (h *Handler) transition(c echo.Context, to models.BookingStatus) error {
	actor := middleware.CurrentActor(c)
	b, err := h.store.TransitionBooking(c.Param("id"), actor, to)
	if err != nil {
		return utils.Fail(c, err)
	}
	h.notify.BookingChanged(b)
	h.log.Info("booking status changed", zap.String("booking_id", b.ID), zap.String("status", string(b.Status)), zap.String("by", actor.ID))
	return c.JSON(http.StatusOK, b)
}

// POST /bookings/:id/pay
// Runs the simulated checkout. A second attempt for the same booking while
// one is running is refused.
func (h *Handler) PayBooking(c echo.Context) error {
	actor := middleware.CurrentActor(c)
	bookingID := c.Param("id")

	req := new(PayRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "method must be pix or card"})
	}

	release, err := h.inflight.Acquire(bookingID)
	if err != nil {
		return utils.Fail(c, err)
	}
	defer release()

	b, err := h.store.PrepareCheckout(bookingID, actor)
	if err != nil {
		return utils.Fail(c, err)
	}

	receipt, err := h.gateway.Charge(c.Request().Context(), payment.Charge{
		BookingID: b.ID,
		Method:    payment.Method(req.Method),
		Amount:    b.Price,
	})
	if err != nil {
		h.log.Error("checkout failed", zap.String("booking_id", b.ID), zap.Error(err))
		return utils.Fail(c, err)
	}

	paid, err := h.store.MarkBookingPaid(b.ID, actor, models.Payment{
		Method:    string(receipt.Method),
		Reference: receipt.Reference,
		Amount:    receipt.Amount,
		PaidAt:    receipt.PaidAt,
	})
	if err != nil {
		return utils.Fail(c, err)
	}
	h.notify.BookingChanged(paid)
	h.log.Info("booking paid", zap.String("booking_id", paid.ID), zap.String("method", req.Method), zap.Float64("amount", receipt.Amount))
	return c.JSON(http.StatusOK, paid)
}
