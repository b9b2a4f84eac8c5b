package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/meltforce/runplan/internal/models"
)

// ErrPlanNotFound is returned when no stored plan has the requested ID.
var ErrPlanNotFound = errors.New("plan not found")

const defaultListLimit = 50

// SavePlan stores a generated plan alongside the profile it was built from.
// Saving the same plan ID twice overwrites the earlier row.
func (db *DB) SavePlan(ctx context.Context, profile models.Profile, plan *models.Plan) error {
	row, err := models.NewPlanRow(profile, plan)
	if err != nil {
		return err
	}
	_, err = db.Pool.Exec(ctx,
		`INSERT INTO plans (id, name, level, goal, weeks, days_per_week, profile, plan)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		 ON CONFLICT (id) DO UPDATE SET
		 name = EXCLUDED.name, level = EXCLUDED.level, goal = EXCLUDED.goal,
		 weeks = EXCLUDED.weeks, days_per_week = EXCLUDED.days_per_week,
		 profile = EXCLUDED.profile, plan = EXCLUDED.plan`,
		row.ID, row.Name, string(row.Level), row.Goal, row.Weeks, row.DaysPerWeek,
		[]byte(row.Profile), []byte(row.Plan))
	if err != nil {
		return fmt.Errorf("inserting plan %s: %w", plan.ID, err)
	}
	db.evict(plan.ID)
	return nil
}

// GetPlan returns the stored plan with the given ID. Every call decodes a
// fresh copy, so callers may modify the result.
func (db *DB) GetPlan(ctx context.Context, id string) (*models.Plan, error) {
	row := models.PlanRow{ID: id}
	if doc, ok := db.plans.Get(id); ok {
		row.Plan = doc
		return row.DecodePlan()
	}

	epoch := db.cacheEpoch()
	err := db.Pool.QueryRow(ctx, `SELECT plan FROM plans WHERE id = $1`, id).Scan(&row.Plan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrPlanNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying plan %s: %w", id, err)
	}
	p, err := row.DecodePlan()
	if err != nil {
		return nil, err
	}
	db.fillCache(id, row.Plan, epoch)
	return p, nil
}

// ListPlans returns summaries of the most recently stored plans.
func (db *DB) ListPlans(ctx context.Context, limit int) ([]models.PlanSummary, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	rows, err := db.Pool.Query(ctx,
		`SELECT id, name, level, goal, weeks, days_per_week, created_at
		 FROM plans
		 ORDER BY created_at DESC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying plans: %w", err)
	}
	defer rows.Close()

	result := []models.PlanSummary{}
	for rows.Next() {
		var s models.PlanSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Level, &s.Goal, &s.Weeks, &s.DaysPerWeek, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning plan: %w", err)
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

// DeletePlan removes a stored plan.
func (db *DB) DeletePlan(ctx context.Context, id string) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM plans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting plan %s: %w", id, err)
	}
	db.evict(id)
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrPlanNotFound, id)
	}
	return nil
}
