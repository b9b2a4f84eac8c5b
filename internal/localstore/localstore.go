// Package localstore keeps a history of generated plans in a SQLite file so
// the CLI can list and reprint earlier plans without a server.
package localstore

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/meltforce/runplan/internal/models"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned by Get when no plan with the ID was recorded.
var ErrNotFound = errors.New("plan not recorded")

const dbFile = "history.db"

// Store is the on-disk plan history.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (or creates) the history database at dir/history.db.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history dir %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, dbFile))
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS plans (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		level         TEXT NOT NULL,
		goal          TEXT NOT NULL,
		weeks         INTEGER NOT NULL,
		days_per_week INTEGER NOT NULL,
		profile       TEXT NOT NULL,
		plan          TEXT NOT NULL,
		created_at    INTEGER NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history table: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Record stores a generated plan and the profile it came from. Recording
// the same plan ID again replaces the earlier entry.
func (s *Store) Record(profile models.Profile, plan *models.Plan) error {
	row, err := models.NewPlanRow(profile, plan)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO plans (id, name, level, goal, weeks, days_per_week, profile, plan, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		row.ID, row.Name, string(row.Level), row.Goal, row.Weeks, row.DaysPerWeek,
		string(row.Profile), string(row.Plan), s.now().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("recording plan %s: %w", plan.ID, err)
	}
	return nil
}

// List returns up to limit summaries, newest first. A non-positive limit
// returns everything.
func (s *Store) List(limit int) ([]models.PlanSummary, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.Query(
		`SELECT id, name, level, goal, weeks, days_per_week, created_at
		 FROM plans ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	result := []models.PlanSummary{}
	for rows.Next() {
		var (
			sum     models.PlanSummary
			level   string
			created int64
		)
		if err := rows.Scan(&sum.ID, &sum.Name, &level, &sum.Goal, &sum.Weeks, &sum.DaysPerWeek, &created); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		sum.Level = models.Level(level)
		sum.CreatedAt = time.Unix(0, created).UTC()
		result = append(result, sum)
	}
	return result, rows.Err()
}

// Get returns the recorded plan with the given ID.
func (s *Store) Get(id string) (*models.Plan, error) {
	var doc string
	err := s.db.QueryRow(`SELECT plan FROM plans WHERE id = ?`, id).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying plan %s: %w", id, err)
	}
	return models.PlanRow{ID: id, Plan: []byte(doc)}.DecodePlan()
}

// Close closes the history database.
func (s *Store) Close() error {
	return s.db.Close()
}
