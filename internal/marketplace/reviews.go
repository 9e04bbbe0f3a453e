package marketplace

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/valeconecta/conecta/internal/middleware"
	"github.com/valeconecta/conecta/internal/utils"
)

// CreateReviewRequest represents the request payload for creating a review
type CreateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=1000"`
}

// CreateReview lets the client rate a finished booking once.
// POST /bookings/:id/review
func (h *Handler) CreateReview(c echo.Context) error {
	actor := middleware.CurrentActor(c)

	var req CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "rating must be between 1 and 5"})
	}

	r, err := h.store.AddReview(c.Param("id"), actor.ID, req.Rating, req.Comment)
	if err != nil {
		return utils.Fail(c, err)
	}
	if b, err := h.store.GetBooking(c.Param("id")); err == nil {
		h.notify.BookingReviewed(b, r)
	}
	return c.JSON(http.StatusCreated, echo.Map{"review": r, "message": "Avaliação enviada. Obrigado!"})
}
