package models

import (
	"fmt"
	"time"
)

// ActivityLevel is the self-reported activity scale from the intake questionnaire.
type ActivityLevel string

const (
	ActivitySedentary         ActivityLevel = "sedentary"
	ActivityNovice            ActivityLevel = "novice"
	ActivityLightIntermediate ActivityLevel = "light_intermediate"
)

// Goal is the athlete's primary objective.
type Goal string

const (
	GoalRace          Goal = "race"
	GoalFitness       Goal = "general_fitness"
	GoalContinuousRun Goal = "continuous_run"
	GoalDistance      Goal = "increase_distance"
	GoalConsistency   Goal = "consistency"
)

// Profile is the caller-supplied description of the athlete. It is read once
// per generation call and never modified.
type Profile struct {
	ActivityLevel   ActivityLevel `json:"activity_level" yaml:"activity_level"`
	AvailableDays   []string      `json:"available_days" yaml:"available_days"`
	Goal            Goal          `json:"goal" yaml:"goal"`
	TargetDistance  string        `json:"target_distance,omitempty" yaml:"target_distance,omitempty"`
	RaceDate        *time.Time    `json:"race_date,omitempty" yaml:"race_date,omitempty"`
	RecentInjury    bool          `json:"recent_injury,omitempty" yaml:"recent_injury,omitempty"`
	CurrentPain     bool          `json:"current_pain,omitempty" yaml:"current_pain,omitempty"`
	LongestDistance string        `json:"longest_distance,omitempty" yaml:"longest_distance,omitempty"`
}

// Level is the collapsed three-step training level used by the planner.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// TrainingLevel maps the activity scale onto a training level.
// Unknown values are treated as beginner.
func (a ActivityLevel) TrainingLevel() Level {
	switch a {
	case ActivityLightIntermediate:
		return LevelIntermediate
	default:
		return LevelBeginner
	}
}

// Known reports whether a is one of the defined activity levels.
func (a ActivityLevel) Known() bool {
	switch a {
	case ActivitySedentary, ActivityNovice, ActivityLightIntermediate:
		return true
	}
	return false
}

// ParseRaceDate accepts a calendar date (2006-01-02, taken as midnight UTC)
// or a full RFC 3339 timestamp. An empty string yields nil.
func ParseRaceDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid race date %q: want YYYY-MM-DD or RFC 3339", s)
}
