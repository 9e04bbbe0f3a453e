// Package admin serves the back-office routes: dashboard counters, the plan
// editor, the document verification queue and read-only views over
// professionals, wallets and bookings.
package admin

import (
	"go.uber.org/zap"

	"github.com/valeconecta/conecta/internal/alerts"
	"github.com/valeconecta/conecta/internal/db"
)

type Handler struct {
	store  *db.Store
	notify *alerts.Notifier
	log    *zap.Logger
}

func NewHandler(store *db.Store, notify *alerts.Notifier, log *zap.Logger) *Handler {
	return &Handler{store: store, notify: notify, log: log}
}
