package planner

import (
	"fmt"

	"github.com/meltforce/runplan/internal/models"
)

// MaxTrainingDays leaves room for one rest day per week.
const MaxTrainingDays = 6

// Params are the normalized inputs the rest of the pipeline works from.
type Params struct {
	Level   models.Level
	Days    int
	Injured bool
}

// ValidateProfile normalizes a profile. It fails only on the schedule and
// race-date rules; free-text fields pass through unexamined.
func ValidateProfile(p models.Profile) (Params, error) {
	days := len(p.AvailableDays)
	if days > MaxTrainingDays {
		return Params{}, fmt.Errorf("%w: %d training days requested", ErrInvalidSchedule, days)
	}
	if p.Goal == models.GoalRace && p.RaceDate == nil {
		return Params{}, ErrMissingRaceDate
	}
	return Params{
		Level:   p.ActivityLevel.TrainingLevel(),
		Days:    days,
		Injured: p.RecentInjury || p.CurrentPain,
	}, nil
}

// CheckRequest applies the stricter checks used at external boundaries
// (HTTP, MCP, CLI): at least one training day and a known activity level.
func CheckRequest(p models.Profile) error {
	if len(p.AvailableDays) == 0 {
		return fmt.Errorf("%w: no training days selected", ErrInvalidProfile)
	}
	if !p.ActivityLevel.Known() {
		return fmt.Errorf("%w: unknown activity level %q", ErrInvalidProfile, p.ActivityLevel)
	}
	return nil
}
