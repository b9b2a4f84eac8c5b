package planner

import (
	"fmt"
	"slices"

	"github.com/meltforce/runplan/internal/models"
)

// Preset materializes one of the fixed catalogue plans. Each day's duration
// grows linearly by week and the template blocks are rescaled to match.
func (g *Generator) Preset(id string) (*models.Plan, error) {
	p, ok := g.lib.Preset(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPresetNotFound, id)
	}

	prefix := p.WorkoutPrefix
	if prefix == "" {
		prefix = p.ID
	}

	plan := &models.Plan{
		ID:          p.ID,
		Name:        p.Name,
		Trainer:     Trainer,
		Description: p.Description,
		Level:       p.Level,
		Goal:        p.Goal,
		Weeks:       p.Weeks,
		DaysPerWeek: len(p.Days),
		Schedule:    make([]models.Week, 0, p.Weeks),
	}

	for i := range p.Weeks {
		wk := models.Week{
			Number:   i + 1,
			Focus:    p.FocusFor(i),
			Workouts: make([]models.Workout, 0, len(p.Days)),
		}
		for d, day := range p.Days {
			tpl, err := g.lib.Template(day.Type)
			if err != nil {
				return nil, fmt.Errorf("preset %s: %w", p.ID, err)
			}
			minutes := day.Base + i*day.Step
			wk.Workouts = append(wk.Workouts, models.Workout{
				ID:            fmt.Sprintf("%s-w%d-d%d", prefix, i+1, d+1),
				Name:          day.Name,
				Type:          day.Type,
				Description:   day.Description,
				TotalDuration: minutes,
				Blocks:        ScaleBlocks(tpl.Blocks, minutes),
				Benefits:      slices.Clone(day.Benefits),
				Difficulty:    p.Level,
			})
		}
		plan.Schedule = append(plan.Schedule, wk)
	}
	return plan, nil
}
