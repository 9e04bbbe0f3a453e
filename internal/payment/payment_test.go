package payment

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestMockGatewayApproves(t *testing.T) {
	paidAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	g := &MockGateway{Now: func() time.Time { return paidAt }}

	r, err := g.Charge(context.Background(), Charge{BookingID: "b1", Method: MethodPix, Amount: 150})
	if err != nil {
		t.Fatalf("charge: %v", err)
	}
	if !strings.HasPrefix(r.Reference, "pay_") || r.Amount != 150 || r.Method != MethodPix || !r.PaidAt.Equal(paidAt) {
		t.Errorf("unexpected receipt: %+v", r)
	}
}

func TestMockGatewayRejectsUnknownMethod(t *testing.T) {
	g := NewMockGateway(0)
	_, err := g.Charge(context.Background(), Charge{BookingID: "b1", Method: "boleto", Amount: 10})
	if !errors.Is(err, ErrInvalidMethod) {
		t.Fatalf("err = %v, want ErrInvalidMethod", err)
	}
}

func TestMockGatewayHonorsCancellation(t *testing.T) {
	g := NewMockGateway(time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := g.Charge(ctx, Charge{BookingID: "b1", Method: MethodCard, Amount: 10})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
}

func TestInFlight(t *testing.T) {
	f := NewInFlight()

	release, err := f.Acquire("b1")
	if err != nil {
		t.Fatalf("first acquire: %v", err)
	}
	if _, err := f.Acquire("b1"); !errors.Is(err, ErrInFlight) {
		t.Fatalf("second acquire err = %v, want ErrInFlight", err)
	}
	if r, err := f.Acquire("b2"); err != nil {
		t.Fatalf("other key: %v", err)
	} else {
		r()
	}
	release()
	if _, err := f.Acquire("b1"); err != nil {
		t.Fatalf("acquire after release: %v", err)
	}
}

func TestInFlightConcurrent(t *testing.T) {
	f := NewInFlight()

	var wg sync.WaitGroup
	var mu sync.Mutex
	won := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.Acquire("b1"); err == nil {
				mu.Lock()
				won++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if won != 1 {
		t.Fatalf("%d goroutines acquired the same key", won)
	}
}
