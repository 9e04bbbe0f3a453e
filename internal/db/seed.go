package db

import (
	_ "embed"
	"fmt"
	"math"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/valeconecta/conecta/internal/models"
)

//go:embed seed.yaml
var defaultSeed []byte

// Client is a demo customer. Clients have no profile beyond a display name.
type Client struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}

type seedRequest struct {
	models.ServiceRequest `yaml:",inline"`
	Age                   string `yaml:"age"`
}

// Seed is the fixture set a Store starts from.
type Seed struct {
	Cities        []string              `yaml:"cities"`
	Services      []string              `yaml:"services"`
	Clients       []Client              `yaml:"clients"`
	Professionals []models.Professional `yaml:"professionals"`
	Requests      []seedRequest         `yaml:"requests"`
	Plans         []models.Plan         `yaml:"plans"`
}

// DefaultSeed returns the fixtures embedded in the binary.
func DefaultSeed() (*Seed, error) {
	return ParseSeed(defaultSeed)
}

// LoadSeedFile reads fixtures from a YAML file on disk.
func LoadSeedFile(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed decodes and validates YAML fixtures.
func ParseSeed(data []byte) (*Seed, error) {
	var s Seed
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Seed) validate() error {
	seen := make(map[string]bool)
	for _, p := range s.Professionals {
		if p.ID == "" {
			return fmt.Errorf("seed: professional %q has no id", p.Name)
		}
		if seen[p.ID] {
			return fmt.Errorf("seed: duplicate professional id %q", p.ID)
		}
		seen[p.ID] = true
		if p.Credits < 0 {
			return fmt.Errorf("seed: professional %q has negative credits", p.ID)
		}
		if p.VerificationStatus != "" && !p.VerificationStatus.Valid() {
			return fmt.Errorf("seed: professional %q has unknown verification status %q", p.ID, p.VerificationStatus)
		}
		if math.IsNaN(p.Rating) || p.Rating < 0 || p.Rating > 5 {
			return fmt.Errorf("seed: professional %q has rating %v outside 0-5", p.ID, p.Rating)
		}
		if p.ReviewCount < 0 {
			return fmt.Errorf("seed: professional %q has negative review count", p.ID)
		}
		if p.BasePrice < 0 {
			return fmt.Errorf("seed: professional %q has negative base price", p.ID)
		}
		for _, svc := range p.Services {
			if !slices.Contains(s.Services, svc) {
				return fmt.Errorf("seed: professional %q offers unknown service %q", p.ID, svc)
			}
		}
		for _, city := range p.Cities {
			if !slices.Contains(s.Cities, city) {
				return fmt.Errorf("seed: professional %q serves unknown city %q", p.ID, city)
			}
		}
	}
	for _, r := range s.Requests {
		if r.ID == "" || r.ClientID == "" {
			return fmt.Errorf("seed: request needs id and clientId")
		}
		if r.Urgency != "" && !r.Urgency.Valid() {
			return fmt.Errorf("seed: request %q has unknown urgency %q", r.ID, r.Urgency)
		}
		if r.Status != "" && !r.Status.Valid() {
			return fmt.Errorf("seed: request %q has unknown status %q", r.ID, r.Status)
		}
		if !slices.Contains(s.Services, r.Category) {
			return fmt.Errorf("seed: request %q has unknown category %q", r.ID, r.Category)
		}
		if !slices.Contains(s.Cities, r.City) {
			return fmt.Errorf("seed: request %q has unknown city %q", r.ID, r.City)
		}
		if r.Age != "" {
			if _, err := time.ParseDuration(r.Age); err != nil {
				return fmt.Errorf("seed: request %q has bad age: %w", r.ID, err)
			}
		}
	}
	return nil
}
