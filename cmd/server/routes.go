package main

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/valeconecta/conecta/internal/admin"
	"github.com/valeconecta/conecta/internal/alerts"
	"github.com/valeconecta/conecta/internal/assistant"
	"github.com/valeconecta/conecta/internal/auth"
	"github.com/valeconecta/conecta/internal/db"
	"github.com/valeconecta/conecta/internal/marketplace"
	mware "github.com/valeconecta/conecta/internal/middleware"
	"github.com/valeconecta/conecta/internal/models"
	"github.com/valeconecta/conecta/internal/payment"
	"github.com/valeconecta/conecta/internal/user"
	"github.com/valeconecta/conecta/internal/wallet"
)

type serverDeps struct {
	store     *db.Store
	inbox     *alerts.Inbox
	notify    *alerts.Notifier
	gateway   payment.Gateway
	assistant *assistant.Service
	tokens    *auth.Tokens
	log       *zap.Logger
}

func registerRoutes(e *echo.Echo, d serverDeps) {
	authH := auth.NewHandler(d.store, d.tokens, d.log.Named("auth"))
	market := marketplace.NewHandler(d.store, d.notify, d.gateway, d.log.Named("marketplace"))
	pros := user.NewHandler(d.store, d.notify, d.log.Named("user"))
	wal := wallet.NewHandler(d.store, d.notify, d.log.Named("wallet"))
	adm := admin.NewHandler(d.store, d.notify, d.log.Named("admin"))
	notes := alerts.NewHandler(d.inbox)
	ai := assistant.NewHandler(d.assistant)

	jwt := mware.JWT(d.tokens)
	client := mware.RequireRoles(models.RoleClient)
	pro := mware.RequireRoles(models.RolePro)

	// Health
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})
	e.GET("/ready", func(c echo.Context) error {
		if len(d.store.Catalog().Cities) == 0 {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "not_ready", "error": "catalog empty"})
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "ready"})
	})

	// Public routes
	e.GET("/catalog", market.Catalog)
	e.GET("/plans", market.Plans)
	e.GET("/pros", market.ListProfessionals)
	e.GET("/requests", market.ListRequests, mware.OptionalJWT(d.tokens))
	e.POST("/auth/login", authH.Login)
	e.POST("/assistant/estimate", ai.Estimate)
	e.POST("/assistant/classify", ai.Classify)

	// Professional self-service; the static /pros/me wins over /pros/:id.
	me := e.Group("/pros/me", jwt, pro)
	me.GET("", pros.GetProfile)
	me.PATCH("", pros.UpdateProfile)
	me.POST("/verification", pros.SubmitVerification)
	e.GET("/pros/:id", market.GetProfessional)

	// Protected routes
	api := e.Group("", jwt)
	api.GET("/auth/me", authH.Me)

	api.POST("/requests", market.CreateRequest, client)
	api.GET("/requests/me", market.MyRequests, client)
	api.GET("/requests/:id", market.GetRequest)
	api.POST("/requests/:id/close", market.CloseRequest, client)
	api.POST("/requests/:id/reopen", market.ReopenRequest, client)
	api.POST("/requests/:id/unlock", market.UnlockContact, pro)
	api.POST("/requests/:id/proposals", market.SendProposal, pro)

	api.POST("/bookings", market.CreateBooking, client)
	api.GET("/bookings/me", market.MyBookings)
	api.POST("/bookings/:id/accept", market.AcceptBooking, pro)
	api.POST("/bookings/:id/reject", market.RejectBooking, pro)
	api.POST("/bookings/:id/complete", market.CompleteBooking, pro)
	api.POST("/bookings/:id/pay", market.PayBooking, client)
	api.POST("/bookings/:id/finish", market.FinishBooking, client)
	api.POST("/bookings/:id/review", market.CreateReview, client)

	api.GET("/wallet/balance", wal.Balance, pro)
	api.POST("/wallet/credits/purchase", wal.PurchaseCredits, pro)
	api.GET("/wallet/transactions", wal.GetUserTransactions, pro)

	api.GET("/notifications", notes.ListNotifications)
	api.POST("/notifications/:id/read", notes.MarkRead)

	// Admin routes
	ag := e.Group("/admin", jwt, mware.AdminGuard)
	ag.GET("/stats", adm.Stats)
	ag.GET("/bookings", adm.ListBookings)
	ag.GET("/professionals", adm.ListProfessionals)
	ag.GET("/wallets", adm.ListWallets)
	ag.GET("/verifications", adm.PendingVerifications)
	ag.POST("/verifications/:id/approve", adm.ApproveVerification)
	ag.POST("/verifications/:id/reject", adm.RejectVerification)
	ag.PUT("/plans/:id", adm.SavePlan)
	ag.DELETE("/plans/:id", adm.DeletePlan)
	ag.GET("/transactions", wal.AdminGetAllTransactions)
	ag.GET("/transactions/pro/:id", wal.AdminGetUserTransactions)
}
