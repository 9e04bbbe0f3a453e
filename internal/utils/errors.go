package utils

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/valeconecta/conecta/internal/db"
	"github.com/valeconecta/conecta/internal/payment"
)

// StatusFor maps a domain error to the HTTP status it is reported with.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, db.ErrInsufficientCredits):
		return http.StatusPaymentRequired
	case errors.Is(err, db.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, db.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, db.ErrInvalidInput), errors.Is(err, payment.ErrInvalidMethod), errors.Is(err, payment.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, db.ErrAlreadyUnlocked),
		errors.Is(err, db.ErrRequestClosed),
		errors.Is(err, db.ErrInvalidTransition),
		errors.Is(err, db.ErrAlreadyReviewed),
		errors.Is(err, payment.ErrInFlight):
		return http.StatusConflict
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// Fail writes err as a JSON error body.
func Fail(c echo.Context, err error) error {
	status := StatusFor(err)
	switch status {
	case http.StatusPaymentRequired:
		return c.JSON(status, echo.Map{"error": "insufficient balance", "detail": err.Error()})
	case http.StatusForbidden:
		return c.JSON(status, echo.Map{"error": "access denied"})
	case http.StatusInternalServerError:
		return c.JSON(status, echo.Map{"error": "internal error"})
	}
	return c.JSON(status, echo.Map{"error": err.Error()})
}
