package user

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/valeconecta/conecta/internal/db"
	"github.com/valeconecta/conecta/internal/marketplace"
	"github.com/valeconecta/conecta/internal/utils"
)

// UpdateProfileRequest lists the editable fields. Omitted fields are kept.
type UpdateProfileRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=2,max=80"`
	Photo       *string  `json:"photo" validate:"omitempty,url"`
	Description *string  `json:"description" validate:"omitempty,max=1000"`
	Services    []string `json:"services" validate:"omitnil,min=1,dive,required"`
	Cities      []string `json:"cities" validate:"omitnil,min=1,dive,required"`
	BasePrice   *float64 `json:"base_price" validate:"omitempty,gte=0"`
	PixKey      *string  `json:"pix_key" validate:"omitempty,max=140"`
}

// PATCH /pros/me
func (h *Handler) UpdateProfile(c echo.Context) error {
	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or missing token"})
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	p, err := h.store.UpdateProfessionalProfile(userID, db.ProfileUpdate{
		Name:        req.Name,
		Photo:       req.Photo,
		Description: req.Description,
		Services:    req.Services,
		Cities:      req.Cities,
		BasePrice:   req.BasePrice,
		PixKey:      req.PixKey,
	})
	if err != nil {
		return utils.Fail(c, err)
	}
	h.log.Info("profile updated", zap.String("pro_id", userID))

	return c.JSON(http.StatusOK, echo.Map{
		"message":      "profile updated successfully",
		"professional": marketplace.NewProfessionalView(p),
	})
}
