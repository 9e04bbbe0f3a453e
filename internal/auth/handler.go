package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/valeconecta/conecta/internal/db"
	"github.com/valeconecta/conecta/internal/marketplace"
	"github.com/valeconecta/conecta/internal/middleware"
	"github.com/valeconecta/conecta/internal/models"
)

const (
	// DefaultProID is the professional a "pro" login acts as when none is named.
	DefaultProID = "1"
	ClientID     = "me"
	AdminID      = "admin"
)

var loginRoles = map[models.Role]bool{
	models.RoleClient: true,
	models.RolePro:    true,
	models.RoleAdmin:  true,
}

type Handler struct {
	store  *db.Store
	tokens *Tokens
	log    *zap.Logger
}

func NewHandler(store *db.Store, tokens *Tokens, log *zap.Logger) *Handler {
	return &Handler{store: store, tokens: tokens, log: log}
}

type LoginRequest struct {
	Role  string `json:"role" validate:"required,oneof=client pro admin"`
	ProID string `json:"pro_id"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
}

// POST /auth/login
// There are no passwords: login picks which side of the marketplace to act as.
func (h *Handler) Login(c echo.Context) error {
	req := new(LoginRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "role must be client, pro or admin"})
	}

	actor := models.Actor{Role: models.Role(req.Role)}
	switch actor.Role {
	case models.RoleClient:
		actor.ID = ClientID
	case models.RoleAdmin:
		actor.ID = AdminID
	case models.RolePro:
		actor.ID = req.ProID
		if actor.ID == "" {
			actor.ID = DefaultProID
		}
		if _, err := h.store.GetProfessional(actor.ID); err != nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "professional not found"})
		}
	}

	token, exp, err := h.tokens.Issue(actor)
	if err != nil {
		h.log.Error("token generation failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token generation failed"})
	}
	h.log.Info("login", zap.String("user_id", actor.ID), zap.String("role", string(actor.Role)))
	return c.JSON(http.StatusOK, LoginResponse{Token: token, ExpiresAt: exp, UserID: actor.ID, Role: string(actor.Role)})
}

// GET /auth/me
func (h *Handler) Me(c echo.Context) error {
	actor := middleware.CurrentActor(c)
	resp := echo.Map{"id": actor.ID, "role": actor.Role}

	switch actor.Role {
	case models.RolePro:
		p, err := h.store.GetProfessional(actor.ID)
		if errors.Is(err, db.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "professional not found"})
		}
		resp["name"] = p.Name
		resp["professional"] = marketplace.NewProfessionalView(p)
	case models.RoleClient:
		resp["name"] = h.store.ClientName(actor.ID)
	case models.RoleAdmin:
		resp["name"] = "Administrador"
	}
	return c.JSON(http.StatusOK, resp)
}
