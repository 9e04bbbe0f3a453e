package db

import (
	"fmt"

	"github.com/valeconecta/conecta/internal/models"
)

// Balance returns a professional's credit balance.
func (s *Store) Balance(proID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.prosByID[proID]
	if !ok {
		return 0, fmt.Errorf("professional %s: %w", proID, ErrNotFound)
	}
	return p.Credits, nil
}

// PurchaseCredits adds one credit pack to the balance.
//
// This is a stub: no payment is collected or verified. A real gateway
// would charge CreditPackPrice before calling this.
func (s *Store) PurchaseCredits(proID string) (models.CreditTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.prosByID[proID]
	if !ok {
		return models.CreditTransaction{}, fmt.Errorf("professional %s: %w", proID, ErrNotFound)
	}
	p.Credits += s.opts.CreditPackSize
	tx := models.CreditTransaction{
		ID:           s.opts.NewID(),
		ProID:        proID,
		Type:         models.TxPurchase,
		Amount:       s.opts.CreditPackSize,
		BalanceAfter: p.Credits,
		Price:        s.opts.CreditPackPrice,
		CreatedAt:    s.opts.Now(),
	}
	s.txs = append([]models.CreditTransaction{tx}, s.txs...)
	return tx, nil
}

// UnlockContact spends ContactUnlockCost credits to reveal a request's phone.
//
// The debit and the unlockedBy append happen together or not at all. A
// professional who already unlocked the request is rejected with
// ErrAlreadyUnlocked and is not charged again.
func (s *Store) UnlockContact(proID, requestID string) (models.ServiceRequest, models.CreditTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.prosByID[proID]
	if !ok {
		return models.ServiceRequest{}, models.CreditTransaction{}, fmt.Errorf("professional %s: %w", proID, ErrNotFound)
	}
	r, err := s.request(requestID)
	if err != nil {
		return models.ServiceRequest{}, models.CreditTransaction{}, err
	}
	if r.IsUnlockedBy(proID) {
		return r.Clone(), models.CreditTransaction{}, ErrAlreadyUnlocked
	}
	if r.Status != models.RequestOpen {
		return models.ServiceRequest{}, models.CreditTransaction{}, ErrRequestClosed
	}
	cost := ContactUnlockCost
	if p.Credits < cost {
		return models.ServiceRequest{}, models.CreditTransaction{}, fmt.Errorf("have %d credits, need %d: %w", p.Credits, cost, ErrInsufficientCredits)
	}

	p.Credits -= cost
	r.UnlockedBy = append(r.UnlockedBy, proID)
	tx := models.CreditTransaction{
		ID:           s.opts.NewID(),
		ProID:        proID,
		Type:         models.TxUnlock,
		Amount:       -cost,
		BalanceAfter: p.Credits,
		Reference:    requestID,
		CreatedAt:    s.opts.Now(),
	}
	s.txs = append([]models.CreditTransaction{tx}, s.txs...)
	return r.Clone(), tx, nil
}

// CreditTransactions lists a professional's ledger, newest first. An empty
// proID lists every professional's movements.
func (s *Store) CreditTransactions(proID string) []models.CreditTransaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.CreditTransaction{}
	for _, tx := range s.txs {
		if proID == "" || tx.ProID == proID {
			out = append(out, tx)
		}
	}
	return out
}
