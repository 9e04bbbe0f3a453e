package models

import (
	"slices"
	"time"
)

type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

func (u Urgency) Valid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return true
	}
	return false
}

type RequestStatus string

const (
	RequestOpen   RequestStatus = "open"
	RequestClosed RequestStatus = "closed"
)

func (s RequestStatus) Valid() bool {
	return s == RequestOpen || s == RequestClosed
}

// Proposal is a professional's offer on an open service request.
type Proposal struct {
	ID          string    `json:"id"`
	ProID       string    `json:"pro_id"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Timeline    string    `json:"timeline"`
	CreatedAt   time.Time `json:"created_at"`
}

// ServiceRequest is a demand posted by a client. The contact phone stays
// hidden from professionals until they unlock it with credits.
type ServiceRequest struct {
	ID           string        `json:"id" yaml:"id"`
	ClientID     string        `json:"client_id" yaml:"clientId"`
	Category     string        `json:"category" yaml:"category"`
	Description  string        `json:"description" yaml:"description"`
	City         string        `json:"city" yaml:"city"`
	Urgency      Urgency       `json:"urgency" yaml:"urgency"`
	Status       RequestStatus `json:"status" yaml:"status"`
	CreatedAt    time.Time     `json:"created_at" yaml:"createdAt"`
	ContactPhone string        `json:"contact_phone,omitempty" yaml:"contactPhone"`
	UnlockedBy   []string      `json:"unlocked_by" yaml:"unlockedBy"`
	Proposals    []Proposal    `json:"proposals,omitempty" yaml:"-"`
}

// Clone returns a deep copy of the request.
func (r ServiceRequest) Clone() ServiceRequest {
	out := r
	out.UnlockedBy = append([]string{}, r.UnlockedBy...)
	out.Proposals = append([]Proposal(nil), r.Proposals...)
	return out
}

// IsUnlockedBy reports whether proID already paid to see the contact phone.
func (r ServiceRequest) IsUnlockedBy(proID string) bool {
	return slices.Contains(r.UnlockedBy, proID)
}
