package admin

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/valeconecta/conecta/internal/marketplace"
	"github.com/valeconecta/conecta/internal/utils"
)

// GET /admin/verifications
func (h *Handler) PendingVerifications(c echo.Context) error {
	pending := h.store.PendingVerifications()
	out := make([]marketplace.ProfessionalView, 0, len(pending))
	for _, p := range pending {
		out = append(out, marketplace.NewProfessionalView(p))
	}
	return c.JSON(http.StatusOK, echo.Map{"professionals": out})
}

// POST /admin/verifications/:id/approve
func (h *Handler) ApproveVerification(c echo.Context) error {
	return h.reviewVerification(c, true)
}

// POST /admin/verifications/:id/reject
func (h *Handler) RejectVerification(c echo.Context) error {
	return h.reviewVerification(c, false)
}

func (h *Handler) reviewVerification(c echo.Context, approve bool) error {
	id := c.Param("id")
	p, err := h.store.ReviewVerification(id, approve)
	if err != nil {
		return utils.Fail(c, err)
	}
	h.notify.VerificationReviewed(p)
	h.log.Info("verification reviewed",
		zap.String("pro_id", id),
		zap.String("status", string(p.VerificationStatus)),
	)
	return c.JSON(http.StatusOK, marketplace.NewProfessionalView(p))
}
