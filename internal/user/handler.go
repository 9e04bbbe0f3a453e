// Package user holds the self-service routes a logged-in professional uses
// to manage their own profile.
package user

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
