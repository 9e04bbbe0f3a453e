package user

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/valeconecta/conecta/internal/auth"
	"github.com/valeconecta/conecta/internal/utils"
)

// POST /pros/me/verification
// Documents are not stored; submitting only queues the profile for review.
func (h *Handler) SubmitVerification(c echo.Context) error {
	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	p, err := h.store.SubmitVerification(userID)
	if err != nil {
		return utils.Fail(c, err)
	}
	h.notify.VerificationSubmitted(auth.AdminID, p)
	h.log.Info("verification submitted", zap.String("pro_id", userID))

	return c.JSON(http.StatusAccepted, echo.Map{
		"verification_status": p.VerificationStatus,
		"message":             "Documentos enviados. Aguarde a análise.",
	})
}
