package models

// VerificationStatus tracks the identity-document review of a professional.
type VerificationStatus string

const (
	VerificationUnverified VerificationStatus = "unverified"
	VerificationPending    VerificationStatus = "pending"
	VerificationVerified   VerificationStatus = "verified"
	VerificationRejected   VerificationStatus = "rejected"
)

// Valid reports whether s is one of the known statuses.
func (s VerificationStatus) Valid() bool {
	switch s {
	case VerificationUnverified, VerificationPending, VerificationVerified, VerificationRejected:
		return true
	}
	return false
}

// Review is a client's rating of a professional.
type Review struct {
	ID      string `json:"id" yaml:"id"`
	Author  string `json:"author" yaml:"author"`
	Rating  int    `json:"rating" yaml:"rating"`
	Comment string `json:"comment" yaml:"comment"`
	Date    string `json:"date" yaml:"date"`
}

// Professional is a service provider listed in the marketplace.
type Professional struct {
	ID                 string             `json:"id" yaml:"id"`
	Name               string             `json:"name" yaml:"name"`
	Photo              string             `json:"photo" yaml:"photo"`
	Description        string             `json:"description" yaml:"description"`
	Services           []string           `json:"services" yaml:"services"`
	Cities             []string           `json:"cities" yaml:"cities"`
	Verified           bool               `json:"verified" yaml:"verified"`
	VerificationStatus VerificationStatus `json:"verification_status" yaml:"verificationStatus"`
	Rating             float64            `json:"rating" yaml:"rating"`
	ReviewCount        int                `json:"review_count" yaml:"reviewCount"`
	Plan               string             `json:"plan" yaml:"plan"`
	BasePrice          float64            `json:"base_price" yaml:"basePrice"`
	Credits            int                `json:"credits" yaml:"credits"`
	PixKey             string             `json:"pix_key,omitempty" yaml:"pixKey"`
	Reviews            []Review           `json:"reviews" yaml:"reviews"`
}

// Clone returns a deep copy so callers never share slices with the store.
func (p Professional) Clone() Professional {
	out := p
	out.Services = append([]string(nil), p.Services...)
	out.Cities = append([]string(nil), p.Cities...)
	out.Reviews = append([]Review(nil), p.Reviews...)
	return out
}

// OffersAny reports whether the professional offers at least one of services.
func (p Professional) OffersAny(services []string) bool {
	return intersects(p.Services, services)
}

// ServesAny reports whether the professional works in at least one of cities.
func (p Professional) ServesAny(cities []string) bool {
	return intersects(p.Cities, cities)
}

func intersects(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}
