package admin

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/valeconecta/conecta/internal/models"
	"github.com/valeconecta/conecta/internal/reputation"
)

type AdminProfessional struct {
	ID                 string                    `json:"id"`
	Name               string                    `json:"name"`
	Plan               string                    `json:"plan"`
	VerificationStatus models.VerificationStatus `json:"verification_status"`
	Credits            int                       `json:"credits"`
	Rating             float64                   `json:"rating"`
	ReviewCount        int                       `json:"review_count"`
	Tier               string                    `json:"tier"`
}

// GET /admin/professionals
func (h *Handler) ListProfessionals(c echo.Context) error {
	pros := h.store.ListProfessionals()
	out := make([]AdminProfessional, 0, len(pros))
	for _, p := range pros {
		out = append(out, AdminProfessional{
			ID:                 p.ID,
			Name:               p.Name,
			Plan:               p.Plan,
			VerificationStatus: p.VerificationStatus,
			Credits:            p.Credits,
			Rating:             p.Rating,
			ReviewCount:        p.ReviewCount,
			Tier:               reputation.Classify(p.Rating, p.ReviewCount).Level,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"professionals": out})
}
