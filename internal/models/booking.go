package models

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingAccepted  BookingStatus = "accepted"
	BookingRejected  BookingStatus = "rejected"
	BookingPaid      BookingStatus = "paid"
	BookingCompleted BookingStatus = "completed"
	BookingFinished  BookingStatus = "finished"
)

// bookingEdges lists every allowed transition and the party that may fire it.
var bookingEdges = map[BookingStatus]map[BookingStatus]Role{
	BookingPending: {
		BookingAccepted: RolePro,
		BookingRejected: RolePro,
	},
	BookingAccepted: {
		BookingPaid: RoleClient,
	},
	BookingPaid: {
		BookingCompleted: RolePro,
	},
	BookingCompleted: {
		BookingFinished: RoleClient,
	},
}

// TransitionRole returns the role allowed to move a booking from one status
// to another, and false when the edge does not exist.
func TransitionRole(from, to BookingStatus) (Role, bool) {
	role, ok := bookingEdges[from][to]
	return role, ok
}

// Terminal reports whether no transition leaves s.
func (s BookingStatus) Terminal() bool {
	return len(bookingEdges[s]) == 0
}

// Payment records the simulated checkout that moved a booking to paid.
type Payment struct {
	Method    string    `json:"method"`
	Reference string    `json:"reference"`
	Amount    float64   `json:"amount"`
	PaidAt    time.Time `json:"paid_at"`
}

// Booking is a client's appointment with a professional.
type Booking struct {
	ID          string        `json:"id"`
	ProID       string        `json:"pro_id"`
	ClientID    string        `json:"client_id"`
	ProName     string        `json:"pro_name"`
	ClientName  string        `json:"client_name"`
	Service     string        `json:"service"`
	Status      BookingStatus `json:"status"`
	Date        string        `json:"date"`
	Time        string        `json:"time,omitempty"`
	Address     string        `json:"address,omitempty"`
	Description string        `json:"description,omitempty"`
	Price       float64       `json:"price"`
	Reviewed    bool          `json:"reviewed"`
	Payment     *Payment      `json:"payment,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// Clone returns a copy that does not share the payment record.
func (b Booking) Clone() Booking {
	out := b
	if b.Payment != nil {
		p := *b.Payment
		out.Payment = &p
	}
	return out
}
