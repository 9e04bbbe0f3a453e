package assistant

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type EstimateRequest struct {
	Service string `json:"service" validate:"required"`
	Details string `json:"details"`
}

type ClassifyRequest struct {
	Query string `json:"query" validate:"required"`
}

// POST /assistant/estimate
func (h *Handler) Estimate(c echo.Context) error {
	req := new(EstimateRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "service is required"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"estimate": h.svc.Estimate(c.Request().Context(), req.Service, req.Details),
	})
}

// POST /assistant/classify
func (h *Handler) Classify(c echo.Context) error {
	req := new(ClassifyRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "query is required"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"categories": h.svc.Classify(c.Request().Context(), req.Query),
	})
}
