package marketplace

import (
	"math"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/valeconecta/conecta/internal/alerts"
	"github.com/valeconecta/conecta/internal/db"
	"github.com/valeconecta/conecta/internal/payment"
)

// Handler serves the public marketplace: professionals, the request board,
// contact unlocks, bookings and checkout.
type Handler struct {
	store    *db.Store
	notify   *alerts.Notifier
	gateway  payment.Gateway
	inflight *payment.InFlight
	log      *zap.Logger
}

func NewHandler(store *db.Store, notify *alerts.Notifier, gateway payment.Gateway, log *zap.Logger) *Handler {
	return &Handler{
		store:    store,
		notify:   notify,
		gateway:  gateway,
		inflight: payment.NewInFlight(),
		log:      log,
	}
}

// queryList reads a repeatable query parameter, also accepting comma
// separated values.
func queryList(c echo.Context, name string) []string {
	var out []string
	for _, v := range c.QueryParams()[name] {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func queryFloat(c echo.Context, name string) (float64, bool) {
	v := c.QueryParam(name)
	if v == "" {
		return 0, true
	}
	f, err := strconv.ParseFloat(strings.Replace(v, ",", ".", 1), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, false
	}
	return f, true
}
