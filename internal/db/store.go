// Package db holds the in-memory application state. A single Store owns
// every professional, request, booking and plan; all mutations go through
// its methods, which enforce the marketplace invariants under one lock.
package db

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/valeconecta/conecta/internal/models"
)

// ContactUnlockCost is the fixed price, in credits, of revealing a contact.
const ContactUnlockCost = 50

const (
	DefaultCreditPackSize  = 100
	DefaultCreditPackPrice = 29.90
)

// Options tunes the credit rules. Zero values fall back to the defaults.
type Options struct {
	CreditPackSize  int
	CreditPackPrice float64
	Now             func() time.Time
	NewID           func() string
}

// Catalog lists the localities and service categories the app knows about.
type Catalog struct {
	Cities   []string `json:"cities"`
	Services []string `json:"services"`
}

type Store struct {
	mu sync.Mutex

	opts    Options
	catalog Catalog
	clients map[string]string

	pros     []*models.Professional
	prosByID map[string]*models.Professional
	requests []*models.ServiceRequest // newest first
	bookings []*models.Booking        // newest first
	plans    []*models.Plan
	txs      []models.CreditTransaction // newest first
}

// New builds a Store from seed fixtures.
func New(seed *Seed, opts Options) *Store {
	if opts.CreditPackSize <= 0 {
		opts.CreditPackSize = DefaultCreditPackSize
	}
	if opts.CreditPackPrice <= 0 {
		opts.CreditPackPrice = DefaultCreditPackPrice
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = func() string { return uuid.New().String() }
	}

	s := &Store{
		opts: opts,
		catalog: Catalog{
			Cities:   append([]string(nil), seed.Cities...),
			Services: append([]string(nil), seed.Services...),
		},
		clients:  make(map[string]string, len(seed.Clients)),
		prosByID: make(map[string]*models.Professional, len(seed.Professionals)),
	}
	for _, c := range seed.Clients {
		s.clients[c.ID] = c.Name
	}
	for _, p := range seed.Professionals {
		pro := p.Clone()
		if pro.VerificationStatus == "" {
			pro.VerificationStatus = models.VerificationUnverified
		}
		pro.Verified = pro.VerificationStatus == models.VerificationVerified
		s.pros = append(s.pros, &pro)
		s.prosByID[pro.ID] = &pro
	}
	now := opts.Now()
	for _, r := range seed.Requests {
		req := r.ServiceRequest.Clone()
		if req.Status == "" {
			req.Status = models.RequestOpen
		}
		if req.Urgency == "" {
			req.Urgency = models.UrgencyMedium
		}
		if req.CreatedAt.IsZero() {
			age, _ := time.ParseDuration(r.Age)
			req.CreatedAt = now.Add(-age)
		}
		s.requests = append(s.requests, &req)
	}
	for _, p := range seed.Plans {
		plan := p.Clone()
		s.plans = append(s.plans, &plan)
	}
	return s
}

func (s *Store) UnlockCost() int { return ContactUnlockCost }

// CreditPackSize is how many credits one purchase adds.
func (s *Store) CreditPackSize() int { return s.opts.CreditPackSize }

// CreditPackPrice is the display price of one credit pack.
func (s *Store) CreditPackPrice() float64 { return s.opts.CreditPackPrice }

// Catalog returns the known cities and service categories.
func (s *Store) Catalog() Catalog {
	return Catalog{
		Cities:   append([]string(nil), s.catalog.Cities...),
		Services: append([]string(nil), s.catalog.Services...),
	}
}

// ClientName returns the display name of a client, or a generic label.
func (s *Store) ClientName(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clientName(id)
}

func (s *Store) clientName(id string) string {
	if name, ok := s.clients[id]; ok {
		return name
	}
	return "Cliente"
}

func (s *Store) knownCity(city string) bool {
	for _, c := range s.catalog.Cities {
		if c == city {
			return true
		}
	}
	return false
}

func (s *Store) knownService(service string) bool {
	for _, c := range s.catalog.Services {
		if c == service {
			return true
		}
	}
	return false
}

// Stats summarizes the store for the admin dashboard.
type Stats struct {
	Professionals   int                          `json:"professionals"`
	Verified        int                          `json:"verified"`
	PendingReviews  int                          `json:"pending_verifications"`
	OpenRequests    int                          `json:"open_requests"`
	ClosedRequests  int                          `json:"closed_requests"`
	Unlocks         int                          `json:"unlocks"`
	CreditsInWallet int                          `json:"credits_in_wallets"`
	Bookings        map[models.BookingStatus]int `json:"bookings"`
	Plans           int                          `json:"plans"`
}

func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Stats{Bookings: make(map[models.BookingStatus]int), Plans: len(s.plans)}
	for _, p := range s.pros {
		st.Professionals++
		st.CreditsInWallet += p.Credits
		switch p.VerificationStatus {
		case models.VerificationVerified:
			st.Verified++
		case models.VerificationPending:
			st.PendingReviews++
		}
	}
	for _, r := range s.requests {
		if r.Status == models.RequestOpen {
			st.OpenRequests++
		} else {
			st.ClosedRequests++
		}
		st.Unlocks += len(r.UnlockedBy)
	}
	for _, b := range s.bookings {
		st.Bookings[b.Status]++
	}
	return st
}
