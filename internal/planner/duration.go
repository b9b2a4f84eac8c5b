package planner

import (
	"math"

	"github.com/meltforce/runplan/internal/models"
)

// Duration tuning constants (minutes unless noted).
const (
	MinWorkoutMinutes = 5
	roundingStep      = 5

	injuryBaseCut   = 10
	injuryBaseFloor = 15
	injuryMaxCut    = 15
	injuryMaxFloor  = 30

	taperFactor = 0.7
)

type bounds struct{ base, max int }

var levelBounds = map[models.Level]bounds{
	models.LevelBeginner:     {20, 45},
	models.LevelIntermediate: {30, 60},
	models.LevelAdvanced:     {40, 90},
}

var typeMultipliers = map[models.WorkoutType]float64{
	models.WorkoutLongRun:     1.5,
	models.WorkoutWalkRun:     0.8,
	models.WorkoutRecoveryRun: 0.7,
}

// Duration returns the target length of one workout in minutes, rounded to
// the nearest 5 and never below MinWorkoutMinutes.
func Duration(level models.Level, wt models.WorkoutType, phase models.Phase, progress float64, injured bool) int {
	b, ok := levelBounds[level]
	if !ok {
		b = levelBounds[models.LevelBeginner]
	}
	if injured {
		b.base = max(injuryBaseFloor, b.base-injuryBaseCut)
		b.max = max(injuryMaxFloor, b.max-injuryMaxCut)
	}

	mult := 1.0
	if m, ok := typeMultipliers[wt]; ok {
		mult = m
	}
	if phase == models.PhaseTaper {
		mult *= taperFactor
	}

	minutes := float64(b.base) + float64(b.max-b.base)*progress*mult
	rounded := roundHalfUp(minutes/roundingStep) * roundingStep
	return max(rounded, MinWorkoutMinutes)
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
