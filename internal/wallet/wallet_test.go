package wallet

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/valeconecta/conecta/internal/alerts"
	"github.com/valeconecta/conecta/internal/db"
	"github.com/valeconecta/conecta/internal/models"
)

func newHandler(t *testing.T) (*Handler, *db.Store) {
	t.Helper()
	seed, err := db.DefaultSeed()
	if err != nil {
		t.Fatal(err)
	}
	store := db.New(seed, db.Options{})
	n := alerts.NewNotifier(alerts.NewInbox(), zap.NewNop())
	n.Start()
	t.Cleanup(n.Close)
	return NewHandler(store, n, zap.NewNop()), store
}

func call(t *testing.T, fn echo.HandlerFunc, userID string, params ...string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	if userID != "" {
		c.Set("user_id", userID)
	}
	if len(params) == 2 {
		c.SetParamNames(params[0])
		c.SetParamValues(params[1])
	}
	if err := fn(c); err != nil {
		t.Fatal(err)
	}
	return rec
}

func TestBalance(t *testing.T) {
	h, _ := newHandler(t)

	rec := call(t, h.Balance, "2")
	var body struct {
		Balance    int `json:"balance"`
		UnlockCost int `json:"unlock_cost"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK || body.Balance != 200 || body.UnlockCost != 50 {
		t.Errorf("got %d %s", rec.Code, rec.Body.String())
	}

	if rec := call(t, h.Balance, ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("anonymous status = %d", rec.Code)
	}
	if rec := call(t, h.Balance, "me"); rec.Code != http.StatusNotFound {
		t.Errorf("client balance status = %d, want 404", rec.Code)
	}
}

func TestPurchaseThenUnlockShowsInLedger(t *testing.T) {
	h, store := newHandler(t)

	rec := call(t, h.PurchaseCredits, "3")
	var resp PurchaseResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK || resp.Credits != 100 || resp.Balance != 100 || resp.Price != 29.90 {
		t.Fatalf("purchase: %d %+v", rec.Code, resp)
	}

	if _, _, err := store.UnlockContact("3", "r1"); err != nil {
		t.Fatalf("unlock after purchase: %v", err)
	}

	rec = call(t, h.GetUserTransactions, "3")
	var ledger struct {
		Transactions []models.CreditTransaction `json:"transactions"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &ledger); err != nil {
		t.Fatal(err)
	}
	if len(ledger.Transactions) != 2 {
		t.Fatalf("ledger = %+v", ledger.Transactions)
	}
	if ledger.Transactions[0].Type != models.TxUnlock || ledger.Transactions[0].BalanceAfter != 50 {
		t.Errorf("newest entry = %+v", ledger.Transactions[0])
	}

	rec = call(t, h.AdminGetUserTransactions, "admin", "id", "1")
	if err := json.Unmarshal(rec.Body.Bytes(), &ledger); err != nil {
		t.Fatal(err)
	}
	if len(ledger.Transactions) != 0 {
		t.Errorf("Carlos has no movements, got %d", len(ledger.Transactions))
	}
	if rec := call(t, h.AdminGetUserTransactions, "admin", "id", "99"); rec.Code != http.StatusNotFound {
		t.Errorf("unknown pro status = %d", rec.Code)
	}
}
