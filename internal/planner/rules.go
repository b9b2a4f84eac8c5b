package planner

import (
	"slices"

	"github.com/meltforce/runplan/internal/models"
)

// Tier is the rule-table row group. Injured athletes always use TierBeginner.
type Tier string

const (
	TierBeginner     Tier = "beginner"
	TierIntermediate Tier = "intermediate"
	TierAdvanced     Tier = "advanced"
)

// TierFor maps level and injury state onto a rule tier.
func TierFor(level models.Level, injured bool) Tier {
	if injured {
		return TierBeginner
	}
	switch level {
	case models.LevelIntermediate:
		return TierIntermediate
	case models.LevelAdvanced:
		return TierAdvanced
	default:
		return TierBeginner
	}
}

// DayMatcher decides whether a day rule applies to day index of days.
type DayMatcher func(day, days int) bool

// DayRule assigns Type to the days its matcher accepts.
type DayRule struct {
	Match DayMatcher
	Type  models.WorkoutType
}

// RuleSet holds the ordered day rules for one tier across a group of phases.
// A nil Phases slice matches every phase.
type RuleSet struct {
	Tier   Tier
	Phases []models.Phase
	Days   []DayRule
}

func (rs RuleSet) matches(tier Tier, phase models.Phase) bool {
	return rs.Tier == tier && (rs.Phases == nil || slices.Contains(rs.Phases, phase))
}

// DefaultType fills any day no rule covers.
const DefaultType = models.WorkoutEasyRun

func at(day, minDays int) DayMatcher {
	return func(d, days int) bool { return d == day && days >= minDays }
}

func even(d, _ int) bool { return d%2 == 0 }

func odd(d, _ int) bool { return d%2 == 1 }

func from(day int) DayMatcher {
	return func(d, _ int) bool { return d >= day }
}

var (
	basePhases  = []models.Phase{models.PhaseBase, models.PhaseAdaptation}
	buildPhases = []models.Phase{models.PhaseBuild, models.PhaseDevelopment}
	peakPhases  = []models.Phase{models.PhasePeak}
	easePhases  = []models.Phase{models.PhaseTaper, models.PhaseConsolidation}
)

// Rules is the workout type decision table, evaluated in order. The first
// RuleSet matching tier and phase wins; within it the first matching day
// rule wins.
var Rules = []RuleSet{
	{TierBeginner, basePhases, []DayRule{
		{even, models.WorkoutWalkRun},
	}},
	{TierBeginner, buildPhases, []DayRule{
		{at(1, 3), models.WorkoutProgressive},
	}},
	{TierBeginner, peakPhases, []DayRule{
		{at(1, 3), models.WorkoutInterval},
		{at(2, 4), models.WorkoutProgressive},
	}},
	{TierBeginner, easePhases, []DayRule{
		{odd, models.WorkoutRecoveryRun},
	}},

	{TierIntermediate, basePhases, []DayRule{
		{at(1, 0), models.WorkoutProgressive},
	}},
	{TierIntermediate, buildPhases, []DayRule{
		{at(1, 0), models.WorkoutInterval},
		{at(2, 3), models.WorkoutTempo},
	}},
	{TierIntermediate, peakPhases, []DayRule{
		{at(1, 0), models.WorkoutInterval},
		{at(2, 3), models.WorkoutTempo},
		{at(3, 4), models.WorkoutLongRun},
	}},
	{TierIntermediate, easePhases, []DayRule{
		{at(1, 3), models.WorkoutProgressive},
		{from(1), models.WorkoutRecoveryRun},
	}},

	{TierAdvanced, nil, []DayRule{
		{at(1, 0), models.WorkoutInterval},
		{at(2, 0), models.WorkoutTempo},
		{at(3, 0), models.WorkoutLongRun},
		{at(4, 0), models.WorkoutFartlek},
	}},
}

// SelectWorkoutTypes returns one workout type per training day, positionally.
func SelectWorkoutTypes(level models.Level, phase models.Phase, injured bool, days int) []models.WorkoutType {
	return selectFrom(Rules, TierFor(level, injured), phase, days)
}

func selectFrom(rules []RuleSet, tier Tier, phase models.Phase, days int) []models.WorkoutType {
	var set *RuleSet
	for i := range rules {
		if rules[i].matches(tier, phase) {
			set = &rules[i]
			break
		}
	}

	types := make([]models.WorkoutType, days)
	for d := range types {
		types[d] = DefaultType
		if set == nil {
			continue
		}
		for _, r := range set.Days {
			if r.Match(d, days) {
				types[d] = r.Type
				break
			}
		}
	}
	return types
}
