package planner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/meltforce/runplan/internal/models"
)

// PlanStore persists generated plans.
type PlanStore interface {
	SavePlan(ctx context.Context, profile models.Profile, plan *models.Plan) error
}

// Service wraps a Generator with request checks, logging and optional persistence.
type Service struct {
	gen   *Generator
	store PlanStore
	log   *slog.Logger
}

// NewService creates a Service. store may be nil, in which case plans are
// never persisted.
func NewService(gen *Generator, store PlanStore, log *slog.Logger) *Service {
	return &Service{gen: gen, store: store, log: log}
}

// Generator returns the underlying generator.
func (s *Service) Generator() *Generator { return s.gen }

// CanPersist reports whether a plan store is configured.
func (s *Service) CanPersist() bool { return s.store != nil }

// Generate checks and generates a plan, saving it when persist is set and a
// store is configured.
func (s *Service) Generate(ctx context.Context, p models.Profile, persist bool) (*models.Plan, error) {
	if err := CheckRequest(p); err != nil {
		s.log.Warn("plan request rejected", "code", Code(err), "error", err)
		return nil, err
	}

	plan, err := s.gen.Generate(p)
	if err != nil {
		if IsValidation(err) {
			s.log.Warn("plan validation failed", "goal", p.Goal, "code", Code(err), "error", err)
		}
		return nil, err
	}

	s.log.Info("plan generated",
		"id", plan.ID,
		"goal", p.Goal,
		"level", plan.Level,
		"weeks", plan.Weeks,
		"days_per_week", plan.DaysPerWeek,
	)

	if persist && s.store != nil {
		if err := s.store.SavePlan(ctx, p, plan); err != nil {
			return nil, fmt.Errorf("saving plan %s: %w", plan.ID, err)
		}
	}
	return plan, nil
}
