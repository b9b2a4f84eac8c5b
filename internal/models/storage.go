package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// PlanRow is a row ready for insertion into the plans table. The full plan
// and the profile it was generated from are stored as JSON documents, with
// the fields used for listing duplicated into columns.
type PlanRow struct {
	ID          string
	Name        string
	Level       Level
	Goal        string
	Weeks       int
	DaysPerWeek int
	Profile     json.RawMessage
	Plan        json.RawMessage
	CreatedAt   time.Time
}

// PlanSummary is the listing view of a stored plan.
type PlanSummary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Level       Level     `json:"level"`
	Goal        string    `json:"goal"`
	Weeks       int       `json:"duration_weeks"`
	DaysPerWeek int       `json:"days_per_week"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewPlanRow encodes a generated plan and its source profile for storage.
func NewPlanRow(profile Profile, plan *Plan) (PlanRow, error) {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return PlanRow{}, fmt.Errorf("encoding profile: %w", err)
	}
	planJSON, err := json.Marshal(plan)
	if err != nil {
		return PlanRow{}, fmt.Errorf("encoding plan %s: %w", plan.ID, err)
	}
	return PlanRow{
		ID:          plan.ID,
		Name:        plan.Name,
		Level:       plan.Level,
		Goal:        plan.Goal,
		Weeks:       plan.Weeks,
		DaysPerWeek: plan.DaysPerWeek,
		Profile:     profileJSON,
		Plan:        planJSON,
	}, nil
}

// Summary returns the listing view of the row.
func (r PlanRow) Summary() PlanSummary {
	return PlanSummary{
		ID:          r.ID,
		Name:        r.Name,
		Level:       r.Level,
		Goal:        r.Goal,
		Weeks:       r.Weeks,
		DaysPerWeek: r.DaysPerWeek,
		CreatedAt:   r.CreatedAt,
	}
}

// DecodePlan unmarshals the stored plan document.
func (r PlanRow) DecodePlan() (*Plan, error) {
	var p Plan
	if err := json.Unmarshal(r.Plan, &p); err != nil {
		return nil, fmt.Errorf("decoding plan %s: %w", r.ID, err)
	}
	return &p, nil
}
