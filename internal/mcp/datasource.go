package mcp

import (
	"context"
	"errors"

	"github.com/meltforce/runplan/internal/library"
	"github.com/meltforce/runplan/internal/models"
	"github.com/meltforce/runplan/internal/planner"
	"github.com/meltforce/runplan/internal/storage"
)

// ErrNoStorage is returned for stored-plan lookups when persistence is off.
var ErrNoStorage = errors.New("plan storage is not configured")

// PlanSource abstracts plan generation and lookup for MCP tools. Both Local
// (in-process planner and database) and HTTPClient (remote via REST API)
// satisfy this interface.
type PlanSource interface {
	GeneratePlan(ctx context.Context, profile models.Profile, persist bool) (*models.Plan, error)
	GetPlan(ctx context.Context, id string) (*models.Plan, error)
	ListPlans(ctx context.Context, limit int) ([]models.PlanSummary, error)
	WorkoutLibrary(ctx context.Context) (map[models.WorkoutType][]models.Workout, error)
	Presets(ctx context.Context) ([]library.Preset, error)
}

// PlanReader is the read side of plan storage.
type PlanReader interface {
	GetPlan(ctx context.Context, id string) (*models.Plan, error)
	ListPlans(ctx context.Context, limit int) ([]models.PlanSummary, error)
}

// Compile-time check: *storage.DB satisfies PlanReader.
var _ PlanReader = (*storage.DB)(nil)

// Local serves tools from an in-process planner service. plans may be nil.
type Local struct {
	svc   *planner.Service
	plans PlanReader
}

// Compile-time check: *Local satisfies PlanSource.
var _ PlanSource = (*Local)(nil)

// NewLocal creates a Local source.
func NewLocal(svc *planner.Service, plans PlanReader) *Local {
	return &Local{svc: svc, plans: plans}
}

func (l *Local) GeneratePlan(ctx context.Context, profile models.Profile, persist bool) (*models.Plan, error) {
	return l.svc.Generate(ctx, profile, persist)
}

func (l *Local) GetPlan(ctx context.Context, id string) (*models.Plan, error) {
	if l.plans == nil {
		return nil, ErrNoStorage
	}
	return l.plans.GetPlan(ctx, id)
}

func (l *Local) ListPlans(ctx context.Context, limit int) ([]models.PlanSummary, error) {
	if l.plans == nil {
		return nil, ErrNoStorage
	}
	return l.plans.ListPlans(ctx, limit)
}

func (l *Local) WorkoutLibrary(context.Context) (map[models.WorkoutType][]models.Workout, error) {
	return l.svc.Generator().Library().Templates(), nil
}

func (l *Local) Presets(context.Context) ([]library.Preset, error) {
	return l.svc.Generator().Library().Presets(), nil
}
