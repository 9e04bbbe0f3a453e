package db

import (
	"fmt"
	"math"

	"github.com/valeconecta/conecta/internal/models"
)

// ListProfessionals returns every professional in seed order.
func (s *Store) ListProfessionals() []models.Professional {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Professional, 0, len(s.pros))
	for _, p := range s.pros {
		out = append(out, p.Clone())
	}
	return out
}

func (s *Store) GetProfessional(id string) (models.Professional, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.prosByID[id]
	if !ok {
		return models.Professional{}, fmt.Errorf("professional %s: %w", id, ErrNotFound)
	}
	return p.Clone(), nil
}

// ProfileUpdate carries the fields a professional may edit. Nil fields are
// left untouched.
type ProfileUpdate struct {
	Name        *string
	Photo       *string
	Description *string
	Services    []string
	Cities      []string
	BasePrice   *float64
	PixKey      *string
}

// UpdateProfessionalProfile applies a profile edit. Credits, reputation and
// verification cannot be changed this way.
func (s *Store) UpdateProfessionalProfile(id string, u ProfileUpdate) (models.Professional, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.prosByID[id]
	if !ok {
		return models.Professional{}, fmt.Errorf("professional %s: %w", id, ErrNotFound)
	}
	for _, svc := range u.Services {
		if !s.knownService(svc) {
			return models.Professional{}, fmt.Errorf("unknown service %q: %w", svc, ErrInvalidInput)
		}
	}
	for _, city := range u.Cities {
		if !s.knownCity(city) {
			return models.Professional{}, fmt.Errorf("unknown city %q: %w", city, ErrInvalidInput)
		}
	}
	if u.BasePrice != nil && *u.BasePrice < 0 {
		return models.Professional{}, fmt.Errorf("negative base price: %w", ErrInvalidInput)
	}

	if u.Name != nil && *u.Name != "" {
		p.Name = *u.Name
	}
	if u.Photo != nil && *u.Photo != "" {
		p.Photo = *u.Photo
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Services != nil {
		p.Services = append([]string(nil), u.Services...)
	}
	if u.Cities != nil {
		p.Cities = append([]string(nil), u.Cities...)
	}
	if u.BasePrice != nil {
		p.BasePrice = *u.BasePrice
	}
	if u.PixKey != nil {
		p.PixKey = *u.PixKey
	}
	return p.Clone(), nil
}

// SubmitVerification records that identity documents were uploaded and puts
// the professional in the admin review queue.
func (s *Store) SubmitVerification(id string) (models.Professional, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.prosByID[id]
	if !ok {
		return models.Professional{}, fmt.Errorf("professional %s: %w", id, ErrNotFound)
	}
	switch p.VerificationStatus {
	case models.VerificationUnverified, models.VerificationRejected:
	default:
		return models.Professional{}, fmt.Errorf("verification already %s: %w", p.VerificationStatus, ErrInvalidTransition)
	}
	p.VerificationStatus = models.VerificationPending
	p.Verified = false
	return p.Clone(), nil
}

// ReviewVerification approves or rejects a pending verification.
func (s *Store) ReviewVerification(id string, approve bool) (models.Professional, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.prosByID[id]
	if !ok {
		return models.Professional{}, fmt.Errorf("professional %s: %w", id, ErrNotFound)
	}
	if p.VerificationStatus != models.VerificationPending {
		return models.Professional{}, fmt.Errorf("verification is %s: %w", p.VerificationStatus, ErrInvalidTransition)
	}
	if approve {
		p.VerificationStatus = models.VerificationVerified
	} else {
		p.VerificationStatus = models.VerificationRejected
	}
	p.Verified = approve
	return p.Clone(), nil
}

// PendingVerifications lists professionals waiting for document review.
func (s *Store) PendingVerifications() []models.Professional {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Professional
	for _, p := range s.pros {
		if p.VerificationStatus == models.VerificationPending {
			out = append(out, p.Clone())
		}
	}
	return out
}

// AddReview lets the client of a finished booking rate the professional.
// The rating becomes the running average over all reviews.
func (s *Store) AddReview(bookingID string, clientID string, rating int, comment string) (models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rating < 1 || rating > 5 {
		return models.Review{}, fmt.Errorf("rating must be between 1 and 5: %w", ErrInvalidInput)
	}
	b, err := s.booking(bookingID)
	if err != nil {
		return models.Review{}, err
	}
	if b.ClientID != clientID {
		return models.Review{}, ErrForbidden
	}
	if b.Status != models.BookingFinished {
		return models.Review{}, fmt.Errorf("booking is %s: %w", b.Status, ErrInvalidTransition)
	}
	if b.Reviewed {
		return models.Review{}, ErrAlreadyReviewed
	}
	p, ok := s.prosByID[b.ProID]
	if !ok {
		return models.Review{}, fmt.Errorf("professional %s: %w", b.ProID, ErrNotFound)
	}

	now := s.opts.Now()
	r := models.Review{
		ID:      s.opts.NewID(),
		Author:  s.clientName(clientID),
		Rating:  rating,
		Comment: comment,
		Date:    now.Format("02/01/2006"),
	}
	total := p.Rating*float64(p.ReviewCount) + float64(rating)
	p.ReviewCount++
	p.Rating = math.Round(total/float64(p.ReviewCount)*100) / 100
	p.Reviews = append([]models.Review{r}, p.Reviews...)
	b.Reviewed = true
	b.UpdatedAt = now
	return r, nil
}
