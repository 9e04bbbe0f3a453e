package marketplace

import (
	"reflect"
	"testing"

	"github.com/valeconecta/conecta/internal/db"
	"github.com/valeconecta/conecta/internal/models"
)

func seedStore(t *testing.T) *db.Store {
	t.Helper()
	seed, err := db.DefaultSeed()
	if err != nil {
		t.Fatalf("DefaultSeed: %v", err)
	}
	return db.New(seed, db.Options{})
}

func proIDs(pros []models.Professional) []string {
	ids := []string{}
	for _, p := range pros {
		ids = append(ids, p.ID)
	}
	return ids
}

func requestIDs(reqs []models.ServiceRequest) []string {
	ids := []string{}
	for _, r := range reqs {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestFilterProfessionals(t *testing.T) {
	pros := seedStore(t).ListProfessionals()

	tests := []struct {
		name   string
		filter ProfessionalFilter
		want   []string
	}{
		{"no filter", ProfessionalFilter{}, []string{"1", "2", "3", "4"}},
		{"city Registro", ProfessionalFilter{Cities: []string{"Registro"}}, []string{"1", "2", "4"}},
		{"any of two cities", ProfessionalFilter{Cities: []string{"Iguape", "Cajati"}}, []string{"3", "4"}},
		{"service", ProfessionalFilter{Services: []string{"Pintura"}}, []string{"3"}},
		{"query matches name", ProfessionalFilter{Query: "ana maria"}, []string{"2"}},
		{"query matches service", ProfessionalFilter{Query: "hidráulica"}, []string{"4"}},
		{"query matches nothing", ProfessionalFilter{Query: "piscina"}, []string{}},
		{"max price", ProfessionalFilter{MaxPrice: 150}, []string{"1", "4"}},
		{"min rating", ProfessionalFilter{MinRating: 4.8}, []string{"1", "2"}},
		{"conjunction", ProfessionalFilter{Cities: []string{"Registro"}, Services: []string{"Reparos Domésticos"}, MaxPrice: 130}, []string{"4"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := proIDs(FilterProfessionals(pros, tt.filter))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterRequests(t *testing.T) {
	s := seedStore(t)
	if _, err := s.CloseRequest("r3", "c3"); err != nil {
		t.Fatal(err)
	}
	reqs := s.ListRequests()

	tests := []struct {
		name   string
		filter RequestFilter
		want   []string
	}{
		{"open only", RequestFilter{}, []string{"r1", "r2"}},
		{"include closed", RequestFilter{IncludeClosed: true}, []string{"r1", "r2", "r3"}},
		{"category", RequestFilter{Categories: []string{"Pintura"}}, []string{"r1"}},
		{"city", RequestFilter{Cities: []string{"Iguape"}}, []string{"r2"}},
		{"urgency", RequestFilter{Urgency: "high"}, []string{"r2"}},
		{"urgency all", RequestFilter{Urgency: "all"}, []string{"r1", "r2"}},
		{"query in description", RequestFilter{Query: "DISJUNTOR"}, []string{"r2"}},
		{"query in category", RequestFilter{Query: "jardin", IncludeClosed: true}, []string{"r3"}},
		{"client", RequestFilter{ClientID: "c1"}, []string{"r1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := requestIDs(FilterRequests(reqs, tt.filter))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
