package db

import (
	"fmt"
	"slices"
	"strings"

	"github.com/valeconecta/conecta/internal/models"
)

// NewBooking is the scheduling form a client submits on a profile page.
type NewBooking struct {
	ProID       string
	ClientID    string
	Service     string
	Date        string
	Time        string
	Address     string
	Description string
}

// CreateBooking opens a pending booking priced at the professional's base
// price.
func (s *Store) CreateBooking(in NewBooking) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.prosByID[in.ProID]
	if !ok {
		return models.Booking{}, fmt.Errorf("professional %s: %w", in.ProID, ErrNotFound)
	}
	if in.ClientID == "" || strings.TrimSpace(in.Date) == "" {
		return models.Booking{}, fmt.Errorf("client and date are required: %w", ErrInvalidInput)
	}
	service := in.Service
	if service == "" && len(p.Services) > 0 {
		service = p.Services[0]
	}
	if !slices.Contains(p.Services, service) {
		return models.Booking{}, fmt.Errorf("%s does not offer %q: %w", p.Name, service, ErrInvalidInput)
	}

	now := s.opts.Now()
	b := &models.Booking{
		ID:          s.opts.NewID(),
		ProID:       p.ID,
		ClientID:    in.ClientID,
		ProName:     p.Name,
		ClientName:  s.clientName(in.ClientID),
		Service:     service,
		Status:      models.BookingPending,
		Date:        in.Date,
		Time:        in.Time,
		Address:     in.Address,
		Description: in.Description,
		Price:       p.BasePrice,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.bookings = append([]*models.Booking{b}, s.bookings...)
	return b.Clone(), nil
}

func (s *Store) GetBooking(id string) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.booking(id)
	if err != nil {
		return models.Booking{}, err
	}
	return b.Clone(), nil
}

func (s *Store) booking(id string) (*models.Booking, error) {
	for _, b := range s.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, fmt.Errorf("booking %s: %w", id, ErrNotFound)
}

// ListBookings returns the bookings visible to actor: a professional's
// agenda, a client's appointments, or everything for admins.
func (s *Store) ListBookings(actor models.Actor) []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Booking{}
	for _, b := range s.bookings {
		switch {
		case actor.Role == models.RoleAdmin,
			actor.Role == models.RolePro && b.ProID == actor.ID,
			actor.Role == models.RoleClient && b.ClientID == actor.ID:
			out = append(out, b.Clone())
		}
	}
	return out
}

// checkTransition verifies that actor may move b to status to.
func checkTransition(b *models.Booking, actor models.Actor, to models.BookingStatus) error {
	role, ok := models.TransitionRole(b.Status, to)
	if !ok {
		return fmt.Errorf("%s -> %s: %w", b.Status, to, ErrInvalidTransition)
	}
	if actor.Role != role {
		return ErrForbidden
	}
	switch role {
	case models.RolePro:
		if b.ProID != actor.ID {
			return ErrForbidden
		}
	case models.RoleClient:
		if b.ClientID != actor.ID {
			return ErrForbidden
		}
	}
	return nil
}

// TransitionBooking moves a booking along one edge of the status machine.
// Paying is not allowed here; it goes through MarkBookingPaid after a
// checkout succeeds.
func (s *Store) TransitionBooking(id string, actor models.Actor, to models.BookingStatus) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if to == models.BookingPaid {
		return models.Booking{}, fmt.Errorf("paid requires checkout: %w", ErrInvalidTransition)
	}
	b, err := s.booking(id)
	if err != nil {
		return models.Booking{}, err
	}
	if err := checkTransition(b, actor, to); err != nil {
		return models.Booking{}, err
	}
	b.Status = to
	b.UpdatedAt = s.opts.Now()
	return b.Clone(), nil
}

// PrepareCheckout checks that actor may pay for the booking right now.
func (s *Store) PrepareCheckout(id string, actor models.Actor) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.booking(id)
	if err != nil {
		return models.Booking{}, err
	}
	if err := checkTransition(b, actor, models.BookingPaid); err != nil {
		return models.Booking{}, err
	}
	return b.Clone(), nil
}

// MarkBookingPaid records a successful checkout. The transition is checked
// again since the booking may have changed while the charge was running.
func (s *Store) MarkBookingPaid(id string, actor models.Actor, payment models.Payment) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.booking(id)
	if err != nil {
		return models.Booking{}, err
	}
	if err := checkTransition(b, actor, models.BookingPaid); err != nil {
		return models.Booking{}, err
	}
	b.Status = models.BookingPaid
	b.Payment = &payment
	b.UpdatedAt = s.opts.Now()
	return b.Clone(), nil
}
