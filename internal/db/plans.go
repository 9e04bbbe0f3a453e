package db

import (
	"fmt"

	"github.com/valeconecta/conecta/internal/models"
)

func (s *Store) ListPlans() []models.Plan {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Plan, 0, len(s.plans))
	for _, p := range s.plans {
		out = append(out, p.Clone())
	}
	return out
}

// UpsertPlan replaces the plan with the same id, or appends a new one.
// It reports whether the plan was created.
func (s *Store) UpsertPlan(plan models.Plan) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if plan.ID == "" || plan.Name == "" {
		return false, fmt.Errorf("plan id and name are required: %w", ErrInvalidInput)
	}
	p := plan.Clone()
	for i, existing := range s.plans {
		if existing.ID == plan.ID {
			s.plans[i] = &p
			return false, nil
		}
	}
	s.plans = append(s.plans, &p)
	return true, nil
}

func (s *Store) DeletePlan(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.plans {
		if p.ID == id {
			s.plans = append(s.plans[:i], s.plans[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("plan %s: %w", id, ErrNotFound)
}
