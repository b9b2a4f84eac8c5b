package planner

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDSource mints identifiers for plans and workouts. Implementations must be
// safe for concurrent use and never repeat a value.
type IDSource interface {
	NewID() string
}

// UUIDSource issues random UUIDs.
type UUIDSource struct{}

func (UUIDSource) NewID() string { return uuid.NewString() }

// CounterSource issues 1, 2, 3, ... and makes generated plans reproducible.
type CounterSource struct {
	n atomic.Uint64
}

func (c *CounterSource) NewID() string {
	return strconv.FormatUint(c.n.Add(1), 10)
}
