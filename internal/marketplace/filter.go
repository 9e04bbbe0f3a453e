package marketplace

import (
	"slices"
	"strings"

	"github.com/valeconecta/conecta/internal/models"
)

// ProfessionalFilter narrows the professionals list. Zero fields do not
// constrain.
type ProfessionalFilter struct {
	Query     string
	Services  []string
	Cities    []string
	MaxPrice  float64
	MinRating float64
}

// Match reports whether p satisfies every active predicate.
func (f ProfessionalFilter) Match(p models.Professional) bool {
	if f.Query != "" && !containsFold(p.Name, f.Query) && !slices.ContainsFunc(p.Services, func(s string) bool {
		return containsFold(s, f.Query)
	}) {
		return false
	}
	if len(f.Services) > 0 && !p.OffersAny(f.Services) {
		return false
	}
	if len(f.Cities) > 0 && !p.ServesAny(f.Cities) {
		return false
	}
	if f.MaxPrice > 0 && p.BasePrice > f.MaxPrice {
		return false
	}
	return p.Rating >= f.MinRating
}

// RequestFilter narrows the request board. Only open requests are kept
// unless IncludeClosed is set.
type RequestFilter struct {
	Query         string
	Categories    []string
	Cities        []string
	Urgency       string // "" or "all" for any
	ClientID      string
	IncludeClosed bool
}

func (f RequestFilter) Match(r models.ServiceRequest) bool {
	if !f.IncludeClosed && r.Status != models.RequestOpen {
		return false
	}
	if f.ClientID != "" && r.ClientID != f.ClientID {
		return false
	}
	if f.Query != "" && !containsFold(r.Description, f.Query) && !containsFold(r.Category, f.Query) {
		return false
	}
	if len(f.Categories) > 0 && !slices.Contains(f.Categories, r.Category) {
		return false
	}
	if len(f.Cities) > 0 && !slices.Contains(f.Cities, r.City) {
		return false
	}
	if f.Urgency != "" && f.Urgency != "all" && string(r.Urgency) != f.Urgency {
		return false
	}
	return true
}

// FilterProfessionals keeps the professionals matching f, in input order.
func FilterProfessionals(pros []models.Professional, f ProfessionalFilter) []models.Professional {
	return keep(pros, f.Match)
}

// FilterRequests keeps the requests matching f, in input order.
func FilterRequests(reqs []models.ServiceRequest, f RequestFilter) []models.ServiceRequest {
	return keep(reqs, f.Match)
}

func keep[T any](items []T, match func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if match(it) {
			out = append(out, it)
		}
	}
	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(strings.TrimSpace(substr)))
}
