package planner

import (
	"fmt"
	"math"
	"time"

	"github.com/meltforce/runplan/internal/models"
)

// Race window bounds and the general-mode horizon, in weeks.
const (
	MinRaceWeeks = 4
	MaxRaceWeeks = 16
	GeneralWeeks = 12
)

const week = 7 * 24 * time.Hour

// ModeKind selects between the two plan pipelines.
type ModeKind string

const (
	ModeRace    ModeKind = "race"
	ModeGeneral ModeKind = "general"
)

// Mode is the outcome of plan mode selection.
type Mode struct {
	Kind  ModeKind
	Weeks int
	Goal  models.Goal
}

// WeeksUntil returns the number of weeks from now to race, rounded up.
func WeeksUntil(race, now time.Time) int {
	return int(math.Ceil(float64(race.Sub(now)) / float64(week)))
}

// SelectMode branches on the goal. Race goals must have their race inside the
// 4 to 16 week window; everything else gets the fixed 12-week horizon.
func SelectMode(goal models.Goal, raceDate *time.Time, now time.Time) (Mode, error) {
	if goal != models.GoalRace {
		return Mode{Kind: ModeGeneral, Weeks: GeneralWeeks, Goal: goal}, nil
	}
	if raceDate == nil {
		return Mode{}, ErrMissingRaceDate
	}
	weeks := WeeksUntil(*raceDate, now)
	if weeks < MinRaceWeeks {
		return Mode{}, &RaceWindowError{Weeks: weeks, Err: ErrRaceWindowTooShort}
	}
	if weeks > MaxRaceWeeks {
		return Mode{}, &RaceWindowError{Weeks: weeks, Err: ErrRaceWindowTooLong}
	}
	return Mode{Kind: ModeRace, Weeks: weeks, Goal: goal}, nil
}

// Phase returns the phase of the 1-based week under this mode.
func (m Mode) Phase(weekNum int) PhaseInfo {
	if m.Kind == ModeRace {
		return RacePhase(weekNum, m.Weeks)
	}
	return GeneralPhase(weekNum)
}

type header struct {
	name        string
	description string
	goal        string
}

var generalHeaders = map[models.Goal]header{
	models.GoalFitness: {
		name:        "Conditioning Boost",
		description: "12-week plan to improve your overall conditioning through running",
	},
	models.GoalContinuousRun: {
		name:        "Continuous Running",
		description: "12-week plan to get you running without stopping, comfortably",
	},
	models.GoalDistance: {
		name:        "Distance Builder",
		description: "12-week plan to increase your running distance",
	},
	models.GoalConsistency: {
		name:        "Building Consistency",
		description: "12-week plan to build a regular running habit",
	},
}

// header picks the plan title, description and goal label.
func (m Mode) header(target string) header {
	if m.Kind == ModeRace {
		return header{
			name:        "Race preparation: " + target,
			description: fmt.Sprintf("Personalized %d-week plan focused on your %s race", m.Weeks, target),
			goal:        target,
		}
	}

	h, ok := generalHeaders[m.Goal]
	if !ok {
		h = header{
			name:        "Development Plan",
			description: "12-week plan focused on your development as a runner",
		}
	}
	if m.Goal == models.GoalDistance && target != "" {
		h.description += " up to " + target
	}
	h.goal = target
	if h.goal == "" {
		h.goal = "General development"
	}
	return h
}
