package models

import "time"

const (
	TxPurchase = "purchase"
	TxUnlock   = "unlock"
)

// CreditTransaction is one movement in a professional's credit ledger.
type CreditTransaction struct {
	ID           string    `json:"id"`
	ProID        string    `json:"pro_id"`
	Type         string    `json:"type"`
	Amount       int       `json:"amount"` // signed, in credits
	BalanceAfter int       `json:"balance_after"`
	Price        float64   `json:"price,omitempty"`
	Reference    string    `json:"reference,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
