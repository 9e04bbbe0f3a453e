package marketplace

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/valeconecta/conecta/internal/db"
	"github.com/valeconecta/conecta/internal/middleware"
	"github.com/valeconecta/conecta/internal/models"
	"github.com/valeconecta/conecta/internal/utils"
)

type CreateRequestRequest struct {
	Category     string `json:"category" validate:"required"`
	Description  string `json:"description" validate:"required,max=2000"`
	City         string `json:"city" validate:"required"`
	Urgency      string `json:"urgency" validate:"omitempty,oneof=low medium high"`
	ContactPhone string `json:"contact_phone" validate:"omitempty,min=8,max=20"`
}

type ProposalRequest struct {
	Description string  `json:"description" validate:"required,max=2000"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Timeline    string  `json:"timeline" validate:"max=100"`
}

func (h *Handler) views(reqs []models.ServiceRequest, actor models.Actor) []RequestView {
	out := make([]RequestView, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, h.view(r, actor))
	}
	return out
}

func (h *Handler) view(r models.ServiceRequest, actor models.Actor) RequestView {
	return newRequestView(r, actor, h.store.ClientName(r.ClientID), h.store.UnlockCost())
}

// GET /requests?q=&category=&city=&urgency=
// The public board. Phones stay masked unless the caller may see them.
func (h *Handler) ListRequests(c echo.Context) error {
	f := RequestFilter{
		Query:      c.QueryParam("q"),
		Categories: queryList(c, "category"),
		Cities:     queryList(c, "city"),
		Urgency:    c.QueryParam("urgency"),
	}
	switch f.Urgency {
	case "", "all", string(models.UrgencyLow), string(models.UrgencyMedium), string(models.UrgencyHigh):
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid urgency"})
	}
	reqs := FilterRequests(h.store.ListRequests(), f)
	views := h.views(reqs, middleware.CurrentActor(c))
	return c.JSON(http.StatusOK, echo.Map{"requests": views, "count": len(views)})
}

// GET /requests/me
func (h *Handler) MyRequests(c echo.Context) error {
	actor := middleware.CurrentActor(c)
	reqs := FilterRequests(h.store.ListRequests(), RequestFilter{ClientID: actor.ID, IncludeClosed: true})
	return c.JSON(http.StatusOK, echo.Map{"requests": h.views(reqs, actor)})
}

// GET /requests/:id
func (h *Handler) GetRequest(c echo.Context) error {
	r, err := h.store.GetRequest(c.Param("id"))
	if err != nil {
		return utils.Fail(c, err)
	}
	return c.JSON(http.StatusOK, h.view(r, middleware.CurrentActor(c)))
}

// POST /requests
func (h *Handler) CreateRequest(c echo.Context) error {
	actor := middleware.CurrentActor(c)

	req := new(CreateRequestRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "category, description and city are required"})
	}

	r, err := h.store.CreateRequest(db.NewRequest{
		ClientID:     actor.ID,
		Category:     req.Category,
		Description:  req.Description,
		City:         req.City,
		Urgency:      models.Urgency(req.Urgency),
		ContactPhone: req.ContactPhone,
	})
	if err != nil {
		return utils.Fail(c, err)
	}
	h.log.Info("request created", zap.String("request_id", r.ID), zap.String("client_id", actor.ID), zap.String("category", r.Category))
	return c.JSON(http.StatusCreated, h.view(r, actor))
}

// POST /requests/:id/close
func (h *Handler) CloseRequest(c echo.Context) error {
	actor := middleware.CurrentActor(c)
	r, err := h.store.CloseRequest(c.Param("id"), actor.ID)
	if err != nil {
		return utils.Fail(c, err)
	}
	return c.JSON(http.StatusOK, h.view(r, actor))
}

// POST /requests/:id/reopen
func (h *Handler) ReopenRequest(c echo.Context) error {
	actor := middleware.CurrentActor(c)
	r, err := h.store.ReopenRequest(c.Param("id"), actor.ID)
	if err != nil {
		return utils.Fail(c, err)
	}
	return c.JSON(http.StatusOK, h.view(r, actor))
}

// POST /requests/:id/unlock
// Spends credits to reveal the client's phone. Not charged twice.
func (h *Handler) UnlockContact(c echo.Context) error {
	actor := middleware.CurrentActor(c)
	requestID := c.Param("id")

	r, tx, err := h.store.UnlockContact(actor.ID, requestID)
	if err != nil {
		h.log.Warn("unlock refused", zap.String("pro_id", actor.ID), zap.String("request_id", requestID), zap.Error(err))
		return utils.Fail(c, err)
	}
	h.notify.ContactUnlocked(actor.ID, r, tx)
	h.log.Info("contact unlocked", zap.String("pro_id", actor.ID), zap.String("request_id", requestID), zap.Int("balance", tx.BalanceAfter))

	return c.JSON(http.StatusOK, echo.Map{
		"request":     h.view(r, actor),
		"balance":     tx.BalanceAfter,
		"transaction": tx,
	})
}

// POST /requests/:id/proposals
func (h *Handler) SendProposal(c echo.Context) error {
	actor := middleware.CurrentActor(c)

	req := new(ProposalRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "description and a positive price are required"})
	}

	p, err := h.store.AddProposal(c.Param("id"), db.NewProposal{
		ProID:       actor.ID,
		Description: req.Description,
		Price:       req.Price,
		Timeline:    req.Timeline,
	})
	if err != nil {
		return utils.Fail(c, err)
	}
	if r, err := h.store.GetRequest(c.Param("id")); err == nil {
		if pro, err := h.store.GetProfessional(actor.ID); err == nil {
			h.notify.ProposalReceived(r, p, pro.Name)
		}
	}
	return c.JSON(http.StatusCreated, p)
}
