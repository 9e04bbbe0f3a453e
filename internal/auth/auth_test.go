package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/valeconecta/conecta/internal/db"
	"github.com/valeconecta/conecta/internal/middleware"
	"github.com/valeconecta/conecta/internal/models"
)

var secret = []byte("test-secret")

func TestIssueAndParse(t *testing.T) {
	tokens := NewTokens(secret, time.Hour)
	actor := models.Actor{ID: "2", Role: models.RolePro}

	token, exp, err := tokens.Issue(actor)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if d := time.Until(exp); d < 59*time.Minute || d > time.Hour {
		t.Fatalf("expiry %v out of range", exp)
	}
	got, err := tokens.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got != actor {
		t.Fatalf("actor = %+v, want %+v", got, actor)
	}
}

func TestParseRejects(t *testing.T) {
	tokens := NewTokens(secret, time.Hour)
	good, _, err := tokens.Issue(models.Actor{ID: "me", Role: models.RoleClient})
	if err != nil {
		t.Fatal(err)
	}

	expired := NewTokens(secret, time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, _, err := expired.Issue(models.Actor{ID: "me", Role: models.RoleClient})
	if err != nil {
		t.Fatal(err)
	}

	guest, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: "x", Role: string(models.RoleGuest)}).SignedString(secret)
	if err != nil {
		t.Fatal(err)
	}
	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{UserID: "me", Role: string(models.RoleClient)}).SignedString(secret)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		token string
		parse *Tokens
	}{
		{"wrong secret", good, NewTokens([]byte("other"), time.Hour)},
		{"expired", old, tokens},
		{"guest role", guest, tokens},
		{"unexpected algorithm", hs512, tokens},
		{"garbage", "not.a.token", tokens},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.parse.Parse(tt.token); !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("err = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func newTestHandler(t *testing.T) (*Handler, *echo.Echo) {
	t.Helper()
	seed, err := db.DefaultSeed()
	if err != nil {
		t.Fatalf("DefaultSeed: %v", err)
	}
	e := echo.New()
	e.Validator = middleware.NewValidator()
	return NewHandler(db.New(seed, db.Options{}), NewTokens(secret, time.Hour), zap.NewNop()), e
}

func TestLogin(t *testing.T) {
	h, e := newTestHandler(t)

	tests := []struct {
		body   string
		status int
		userID string
	}{
		{`{"role":"client"}`, http.StatusOK, ClientID},
		{`{"role":"pro"}`, http.StatusOK, DefaultProID},
		{`{"role":"pro","pro_id":"4"}`, http.StatusOK, "4"},
		{`{"role":"admin"}`, http.StatusOK, AdminID},
		{`{"role":"pro","pro_id":"99"}`, http.StatusNotFound, ""},
		{`{"role":"guest"}`, http.StatusBadRequest, ""},
		{`{}`, http.StatusBadRequest, ""},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tt.body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		if err := h.Login(e.NewContext(req, rec)); err != nil {
			t.Fatalf("%s: %v", tt.body, err)
		}
		if rec.Code != tt.status {
			t.Errorf("%s: status = %d, want %d", tt.body, rec.Code, tt.status)
			continue
		}
		if tt.status != http.StatusOK {
			continue
		}
		var resp LoginResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if resp.UserID != tt.userID {
			t.Errorf("%s: user = %q, want %q", tt.body, resp.UserID, tt.userID)
		}
		actor, err := h.tokens.Parse(resp.Token)
		if err != nil || actor.ID != tt.userID {
			t.Errorf("%s: token parses to %+v, %v", tt.body, actor, err)
		}
	}
}

func TestMe(t *testing.T) {
	h, e := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "1")
	c.Set("role", string(models.RolePro))
	if err := h.Me(c); err != nil {
		t.Fatal(err)
	}
	var resp struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		Professional struct {
			Credits *int `json:"credits"`
		} `json:"professional"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.ID != "1" || resp.Name == "" {
		t.Fatalf("me = %+v", resp)
	}
	if resp.Professional.Credits == nil || *resp.Professional.Credits != 500 {
		t.Fatalf("owner view should carry credits, got %v", resp.Professional.Credits)
	}
}
