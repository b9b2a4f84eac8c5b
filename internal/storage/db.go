package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

// planCacheSize bounds the number of plan documents kept in memory.
const planCacheSize = 256

// DB wraps a pgxpool.Pool and provides the plan repository methods.
type DB struct {
	Pool *pgxpool.Pool

	// plans caches stored plan documents by ID. cacheMu orders cache fills
	// against writes: a fill only lands if no write happened since its read
	// began.
	plans   *lru.Cache[string, json.RawMessage]
	cacheMu sync.Mutex
	writes  uint64
}

// New creates a new DB with a connection pool.
func New(ctx context.Context, dsn string) (*DB, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("creating pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	cache, err := lru.New[string, json.RawMessage](planCacheSize)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("creating plan cache: %w", err)
	}
	return &DB{Pool: pool, plans: cache}, nil
}

// Ping checks that the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	return db.Pool.Ping(ctx)
}

// cacheEpoch returns the write counter a cache fill must match.
func (db *DB) cacheEpoch() uint64 {
	db.cacheMu.Lock()
	defer db.cacheMu.Unlock()
	return db.writes
}

// fillCache stores doc unless a write happened after epoch was taken.
func (db *DB) fillCache(id string, doc json.RawMessage, epoch uint64) {
	db.cacheMu.Lock()
	defer db.cacheMu.Unlock()
	if db.writes == epoch {
		db.plans.Add(id, doc)
	}
}

// evict drops id from the cache and invalidates fills already in flight.
func (db *DB) evict(id string) {
	db.cacheMu.Lock()
	defer db.cacheMu.Unlock()
	db.writes++
	db.plans.Remove(id)
}

// Close closes the connection pool.
func (db *DB) Close() {
	db.Pool.Close()
}

// RunMigrations applies all pending migrations from the given directory.
// A schema that is already current is not an error.
func RunMigrations(dsn, migrationsPath string) error {
	m, err := migrate.New("file://"+migrationsPath, dsn)
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}
