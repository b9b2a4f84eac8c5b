// Package planner turns an athlete profile into a multi-week running plan.
//
// The pipeline runs top to bottom once per call: validate the profile, pick
// race or general mode, classify each week's phase, choose a workout type for
// every training day, size each workout and rescale its template blocks.
// Generation is pure apart from the injected clock and identifier source.
package planner

import (
	"fmt"
	"time"

	"github.com/meltforce/runplan/internal/library"
	"github.com/meltforce/runplan/internal/models"
)

// Defaults applied when the profile leaves them open.
const (
	DefaultRaceDistance = "5km"
	Trainer             = "Run Easy"
	genericWorkoutName  = "Workout"
)

// Generator assembles plans from a template library.
type Generator struct {
	lib          *library.Library
	ids          IDSource
	now          func() time.Time
	raceDistance string
}

// Option customizes a Generator.
type Option func(*Generator)

// WithIDSource replaces the UUID identifier source.
func WithIDSource(ids IDSource) Option {
	return func(g *Generator) { g.ids = ids }
}

// WithClock replaces time.Now as the reference instant for race windows.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithDefaultRaceDistance sets the target used when a race profile names none.
func WithDefaultRaceDistance(d string) Option {
	return func(g *Generator) {
		if d != "" {
			g.raceDistance = d
		}
	}
}

// NewGenerator creates a Generator reading templates from lib.
func NewGenerator(lib *library.Library, opts ...Option) *Generator {
	g := &Generator{
		lib:          lib,
		ids:          UUIDSource{},
		now:          time.Now,
		raceDistance: DefaultRaceDistance,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Library returns the template library the generator reads from.
func (g *Generator) Library() *library.Library { return g.lib }

// Generate builds a plan for the profile. Validation failures are returned
// before any week is built and no partial plan is ever returned.
func (g *Generator) Generate(p models.Profile) (*models.Plan, error) {
	params, err := ValidateProfile(p)
	if err != nil {
		return nil, err
	}
	mode, err := SelectMode(p.Goal, p.RaceDate, g.now())
	if err != nil {
		return nil, err
	}

	target := p.TargetDistance
	if mode.Kind == ModeRace && target == "" {
		target = g.raceDistance
	}
	h := mode.header(target)

	plan := &models.Plan{
		ID:          string(mode.Kind) + "-" + g.ids.NewID(),
		Name:        h.name,
		Trainer:     Trainer,
		Description: h.description,
		Level:       params.Level,
		Goal:        h.goal,
		Weeks:       mode.Weeks,
		DaysPerWeek: params.Days,
		Schedule:    make([]models.Week, 0, mode.Weeks),
	}

	for n := 1; n <= mode.Weeks; n++ {
		wk, err := g.week(n, mode.Phase(n), params)
		if err != nil {
			return nil, err
		}
		plan.Schedule = append(plan.Schedule, wk)
	}
	return plan, nil
}

func (g *Generator) week(n int, info PhaseInfo, params Params) (models.Week, error) {
	types := SelectWorkoutTypes(params.Level, info.Phase, params.Injured, params.Days)
	wk := models.Week{
		Number:   n,
		Phase:    info.Phase,
		Focus:    info.Focus,
		Workouts: make([]models.Workout, 0, len(types)),
	}
	for day, wt := range types {
		minutes := Duration(params.Level, wt, info.Phase, info.Progress, params.Injured)
		w, err := g.workout(wt, minutes, n, day+1, params.Level)
		if err != nil {
			return models.Week{}, fmt.Errorf("week %d day %d: %w", n, day+1, err)
		}
		wk.Workouts = append(wk.Workouts, w)
	}
	return wk, nil
}

func (g *Generator) workout(wt models.WorkoutType, minutes, weekNum, dayNum int, level models.Level) (models.Workout, error) {
	tpl, err := g.lib.Template(wt)
	if err != nil {
		return models.Workout{}, err
	}
	return models.Workout{
		ID:            fmt.Sprintf("%s-%d-%d-%s", wt, weekNum, dayNum, g.ids.NewID()),
		Name:          g.workoutName(wt, weekNum),
		Type:          wt,
		Description:   tpl.Description,
		TotalDuration: minutes,
		Blocks:        ScaleBlocks(tpl.Blocks, minutes),
		Benefits:      tpl.Benefits,
		Difficulty:    level,
	}, nil
}

// workoutName rotates through the type's display names by week number.
func (g *Generator) workoutName(wt models.WorkoutType, weekNum int) string {
	names := g.lib.Names(wt)
	if len(names) == 0 {
		return genericWorkoutName
	}
	return names[weekNum%len(names)]
}
