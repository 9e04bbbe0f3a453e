package alerts

// Notification kinds
const (
	KindBookingRequested      = "booking:requested"
	KindBookingAccepted       = "booking:accepted"
	KindBookingRejected       = "booking:rejected"
	KindBookingPaid           = "booking:paid"
	KindBookingCompleted      = "booking:completed"
	KindBookingFinished       = "booking:finished"
	KindBookingReviewed       = "booking:reviewed"
	KindContactUnlocked       = "request:contact_unlocked"
	KindProposalReceived      = "request:proposal"
	KindCreditsPurchased      = "wallet:credits_purchased"
	KindVerificationSubmitted = "verification:submitted"
	KindVerificationReviewed  = "verification:reviewed"
)

// Event is one notification waiting to be delivered to a user's inbox.
type Event struct {
	Kind      string
	UserID    string
	Title     string
	Body      string
	Reference string
}
