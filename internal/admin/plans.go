package admin

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/valeconecta/conecta/internal/models"
	"github.com/valeconecta/conecta/internal/utils"
)

// PUT /admin/plans/:id
func (h *Handler) SavePlan(c echo.Context) error {
	var plan models.Plan
	if err := c.Bind(&plan); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	plan.ID = c.Param("id")
	if err := c.Validate(&plan); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	created, err := h.store.UpsertPlan(plan)
	if err != nil {
		return utils.Fail(c, err)
	}
	h.log.Info("plan saved", zap.String("plan_id", plan.ID), zap.Bool("created", created))

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return c.JSON(status, plan)
}

// DELETE /admin/plans/:id
func (h *Handler) DeletePlan(c echo.Context) error {
	id := c.Param("id")
	if err := h.store.DeletePlan(id); err != nil {
		return utils.Fail(c, err)
	}
	h.log.Info("plan deleted", zap.String("plan_id", id))
	return c.NoContent(http.StatusNoContent)
}
