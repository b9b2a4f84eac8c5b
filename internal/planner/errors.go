package planner

import (
	"errors"
	"fmt"
)

// Validation failures. All are deterministic and raised before any week is built.
var (
	ErrInvalidSchedule    = errors.New("at least one rest day per week is required")
	ErrMissingRaceDate    = errors.New("race date is required for the race goal")
	ErrRaceWindowTooShort = errors.New("race is less than 4 weeks away")
	ErrRaceWindowTooLong  = errors.New("race is more than 16 weeks away")
	ErrInvalidProfile     = errors.New("invalid profile")
	ErrPresetNotFound     = errors.New("preset plan not found")
)

// RaceWindowError carries the computed weeks-to-race alongside the sentinel.
type RaceWindowError struct {
	Weeks int
	Err   error
}

func (e *RaceWindowError) Error() string {
	return fmt.Sprintf("%v (%d weeks until race)", e.Err, e.Weeks)
}

func (e *RaceWindowError) Unwrap() error { return e.Err }

// IsValidation reports whether err is one of the profile validation failures.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidSchedule) ||
		errors.Is(err, ErrMissingRaceDate) ||
		errors.Is(err, ErrRaceWindowTooShort) ||
		errors.Is(err, ErrRaceWindowTooLong) ||
		errors.Is(err, ErrInvalidProfile)
}

// Code returns a stable machine-readable name for a validation error.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrInvalidSchedule):
		return "invalid_schedule"
	case errors.Is(err, ErrMissingRaceDate):
		return "missing_race_date"
	case errors.Is(err, ErrRaceWindowTooShort):
		return "race_window_too_short"
	case errors.Is(err, ErrRaceWindowTooLong):
		return "race_window_too_long"
	case errors.Is(err, ErrInvalidProfile):
		return "invalid_profile"
	case errors.Is(err, ErrPresetNotFound):
		return "preset_not_found"
	}
	return "internal"
}
