package db

import (
	"fmt"
	"strings"

	"github.com/valeconecta/conecta/internal/models"
)

// NewRequest is what a client fills in to post a demand.
type NewRequest struct {
	ClientID     string
	Category     string
	Description  string
	City         string
	Urgency      models.Urgency
	ContactPhone string
}

// CreateRequest publishes a new open request ahead of the existing ones.
func (s *Store) CreateRequest(in NewRequest) (models.ServiceRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if in.ClientID == "" || strings.TrimSpace(in.Description) == "" {
		return models.ServiceRequest{}, fmt.Errorf("client and description are required: %w", ErrInvalidInput)
	}
	if !s.knownService(in.Category) {
		return models.ServiceRequest{}, fmt.Errorf("unknown category %q: %w", in.Category, ErrInvalidInput)
	}
	if !s.knownCity(in.City) {
		return models.ServiceRequest{}, fmt.Errorf("unknown city %q: %w", in.City, ErrInvalidInput)
	}
	switch in.Urgency {
	case "":
		in.Urgency = models.UrgencyMedium
	case models.UrgencyLow, models.UrgencyMedium, models.UrgencyHigh:
	default:
		return models.ServiceRequest{}, fmt.Errorf("unknown urgency %q: %w", in.Urgency, ErrInvalidInput)
	}

	r := &models.ServiceRequest{
		ID:           s.opts.NewID(),
		ClientID:     in.ClientID,
		Category:     in.Category,
		Description:  strings.TrimSpace(in.Description),
		City:         in.City,
		Urgency:      in.Urgency,
		Status:       models.RequestOpen,
		CreatedAt:    s.opts.Now(),
		ContactPhone: in.ContactPhone,
		UnlockedBy:   []string{},
	}
	s.requests = append([]*models.ServiceRequest{r}, s.requests...)
	return r.Clone(), nil
}

// ListRequests returns every request, newest first.
func (s *Store) ListRequests() []models.ServiceRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.ServiceRequest, 0, len(s.requests))
	for _, r := range s.requests {
		out = append(out, r.Clone())
	}
	return out
}

func (s *Store) GetRequest(id string) (models.ServiceRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.request(id)
	if err != nil {
		return models.ServiceRequest{}, err
	}
	return r.Clone(), nil
}

func (s *Store) request(id string) (*models.ServiceRequest, error) {
	for _, r := range s.requests {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, fmt.Errorf("request %s: %w", id, ErrNotFound)
}

// CloseRequest stops a request from showing on the public board.
func (s *Store) CloseRequest(id, clientID string) (models.ServiceRequest, error) {
	return s.setRequestStatus(id, clientID, models.RequestClosed)
}

// ReopenRequest puts a closed request back on the board. Existing unlocks
// are kept.
func (s *Store) ReopenRequest(id, clientID string) (models.ServiceRequest, error) {
	return s.setRequestStatus(id, clientID, models.RequestOpen)
}

func (s *Store) setRequestStatus(id, clientID string, status models.RequestStatus) (models.ServiceRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.request(id)
	if err != nil {
		return models.ServiceRequest{}, err
	}
	if r.ClientID != clientID {
		return models.ServiceRequest{}, ErrForbidden
	}
	if r.Status == status {
		return models.ServiceRequest{}, fmt.Errorf("request already %s: %w", status, ErrInvalidTransition)
	}
	r.Status = status
	return r.Clone(), nil
}

// NewProposal is a professional's offer on a request.
type NewProposal struct {
	ProID       string
	Description string
	Price       float64
	Timeline    string
}

// AddProposal attaches an offer to an open request.
func (s *Store) AddProposal(requestID string, in NewProposal) (models.Proposal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.prosByID[in.ProID]; !ok {
		return models.Proposal{}, fmt.Errorf("professional %s: %w", in.ProID, ErrNotFound)
	}
	if in.Price <= 0 || strings.TrimSpace(in.Description) == "" {
		return models.Proposal{}, fmt.Errorf("description and positive price are required: %w", ErrInvalidInput)
	}
	r, err := s.request(requestID)
	if err != nil {
		return models.Proposal{}, err
	}
	if r.Status != models.RequestOpen {
		return models.Proposal{}, ErrRequestClosed
	}
	p := models.Proposal{
		ID:          s.opts.NewID(),
		ProID:       in.ProID,
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		Timeline:    in.Timeline,
		CreatedAt:   s.opts.Now(),
	}
	r.Proposals = append(r.Proposals, p)
	return p, nil
}
