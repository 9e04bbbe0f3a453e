// Package payment simulates the checkout a client goes through to pay for
// an accepted booking. Nothing is charged; the mock gateway approves every
// payment after a short delay.
package payment

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Method string

const (
	MethodPix  Method = "pix"
	MethodCard Method = "card"
)

func (m Method) Valid() bool {
	return m == MethodPix || m == MethodCard
}

var (
	ErrInFlight      = errors.New("payment already in progress")
	ErrInvalidMethod = errors.New("invalid payment method")
	ErrInvalidAmount = errors.New("invalid payment amount")
)

// Charge is one payment attempt for a booking.
type Charge struct {
	BookingID string
	Method    Method
	Amount    float64
}

// Receipt is what a gateway returns for an approved charge.
type Receipt struct {
	Reference string
	Method    Method
	Amount    float64
	PaidAt    time.Time
}

type Gateway interface {
	Charge(ctx context.Context, ch Charge) (Receipt, error)
}

// MockGateway approves every valid charge after Delay.
type MockGateway struct {
	Delay time.Duration
	Now   func() time.Time
}

func NewMockGateway(delay time.Duration) *MockGateway {
	return &MockGateway{Delay: delay, Now: time.Now}
}

func (g *MockGateway) Charge(ctx context.Context, ch Charge) (Receipt, error) {
	if !ch.Method.Valid() {
		return Receipt{}, fmt.Errorf("%w: %q", ErrInvalidMethod, ch.Method)
	}
	if ch.Amount < 0 {
		return Receipt{}, ErrInvalidAmount
	}

	if g.Delay > 0 {
		timer := time.NewTimer(g.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Receipt{}, ctx.Err()
		case <-timer.C:
		}
	}

	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	return Receipt{
		Reference: "pay_" + uuid.NewString(),
		Method:    ch.Method,
		Amount:    ch.Amount,
		PaidAt:    now(),
	}, nil
}

// InFlight tracks keys with a payment in progress.
type InFlight struct {
	mu   sync.Mutex
	keys map[string]struct{}
}

func NewInFlight() *InFlight {
	return &InFlight{keys: make(map[string]struct{})}
}

// Acquire marks key as busy. It fails with ErrInFlight when key is already
// busy; otherwise the returned release func must be called when done.
func (f *InFlight) Acquire(key string) (release func(), err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, busy := f.keys[key]; busy {
		return nil, ErrInFlight
	}
	f.keys[key] = struct{}{}
	return func() {
		f.mu.Lock()
		delete(f.keys, key)
		f.mu.Unlock()
	}, nil
}
