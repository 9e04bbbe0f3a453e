package utils

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/valeconecta/conecta/internal/db"
	"github.com/valeconecta/conecta/internal/payment"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("have 40 credits, need 50: %w", db.ErrInsufficientCredits), http.StatusPaymentRequired},
		{fmt.Errorf("request r9: %w", db.ErrNotFound), http.StatusNotFound},
		{db.ErrForbidden, http.StatusForbidden},
		{fmt.Errorf("unknown city: %w", db.ErrInvalidInput), http.StatusBadRequest},
		{db.ErrAlreadyUnlocked, http.StatusConflict},
		{db.ErrRequestClosed, http.StatusConflict},
		{fmt.Errorf("pending -> paid: %w", db.ErrInvalidTransition), http.StatusConflict},
		{payment.ErrInFlight, http.StatusConflict},
		{payment.ErrInvalidMethod, http.StatusBadRequest},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := StatusFor(tt.err); got != tt.want {
			t.Errorf("StatusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		in, masked, link string
	}{
		{"13999999999", "(13) 9XXXX-XXXX", "https://wa.me/5513999999999"},
		{"(13) 98888-8888", "(13) 9XXXX-XXXX", "https://wa.me/5513988888888"},
		{"", "", ""},
	}
	for _, tt := range tests {
		if got := MaskPhone(tt.in); got != tt.masked {
			t.Errorf("MaskPhone(%q) = %q, want %q", tt.in, got, tt.masked)
		}
		if got := WhatsAppLink(tt.in); got != tt.link {
			t.Errorf("WhatsAppLink(%q) = %q, want %q", tt.in, got, tt.link)
		}
	}
}
