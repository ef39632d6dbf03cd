// Package mockstore is an in-memory persistence backend for UI development.
// It holds every collection in process memory for the lifetime of the
// application and sleeps a short randomized delay before every operation to
// approximate a real asynchronous backend. Nothing survives a restart.
package mockstore

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// Default simulated latency window
const (
	DefaultMinLatency = 200 * time.Millisecond
	DefaultMaxLatency = 400 * time.Millisecond
)

// Options configures a collection
type Options struct {
	// MinLatency/MaxLatency bound the simulated per-operation delay.
	// Both zero disables the delay (used by tests).
	MinLatency time.Duration
	MaxLatency time.Duration
}

// Collection is a generic named collection of same-shaped records.
type Collection[T any] struct {
	name  string
	id    func(T) string
	setID func(*T, string)
	clone func(T) T
	newID func() string

	opts Options

	mu      sync.RWMutex
	records []T
}

// NewCollection creates a collection. id/setID access the record's id field,
// clone produces a copy deep enough that callers cannot reach stored state
// through the result, and newID generates store-assigned ids.
func NewCollection[T any](
	name string,
	id func(T) string,
	setID func(*T, string),
	clone func(T) T,
	newID func() string,
	opts Options,
) *Collection[T] {
	return &Collection[T]{
		name:  name,
		id:    id,
		setID: setID,
		clone: clone,
		newID: newID,
		opts:  opts,
	}
}

// Seed replaces the collection contents with the given fixture records.
func (c *Collection[T]) Seed(records []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = make([]T, 0, len(records))
	for _, r := range records {
		c.records = append(c.records, c.clone(r))
	}
}

// Name returns the collection name
func (c *Collection[T]) Name() string {
	return c.name
}

// GetAll returns a snapshot copy of every record.
func (c *Collection[T]) GetAll(ctx context.Context) ([]T, error) {
	if err := c.delay(ctx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.records))
	for _, r := range c.records {
		out = append(out, c.clone(r))
	}
	return out, nil
}

// GetByID returns a copy of the record with the given id, or false.
func (c *Collection[T]) GetByID(ctx context.Context, id string) (T, bool, error) {
	var zero T
	if err := c.delay(ctx); err != nil {
		return zero, false, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, r := range c.records {
		if c.id(r) == id {
			return c.clone(r), true, nil
		}
	}
	return zero, false, nil
}

// Add assigns a fresh id, appends the record and returns the stored copy.
func (c *Collection[T]) Add(ctx context.Context, record T) (T, error) {
	var zero T
	if err := c.delay(ctx); err != nil {
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	stored := c.clone(record)
	c.setID(&stored, c.newID())
	c.records = append(c.records, stored)
	return c.clone(stored), nil
}

// Update applies the mutation to the record with the given id. A missing id
// is a no-op, not an error.
func (c *Collection[T]) Update(ctx context.Context, id string, apply func(*T)) error {
	if err := c.delay(ctx); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.records {
		if c.id(c.records[i]) == id {
			apply(&c.records[i])
			return nil
		}
	}
	return nil
}

// Set replaces the record with a matching id, or inserts when absent.
func (c *Collection[T]) Set(ctx context.Context, record T) error {
	if err := c.delay(ctx); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	stored := c.clone(record)
	for i := range c.records {
		if c.id(c.records[i]) == c.id(stored) {
			c.records[i] = stored
			return nil
		}
	}
	c.records = append(c.records, stored)
	return nil
}

// Remove deletes the record with the given id. A missing id is a no-op.
func (c *Collection[T]) Remove(ctx context.Context, id string) error {
	if err := c.delay(ctx); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.records {
		if c.id(c.records[i]) == id {
			c.records = append(c.records[:i], c.records[i+1:]...)
			return nil
		}
	}
	return nil
}

// Len reports the current record count without simulated latency.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

// delay sleeps the simulated network latency, honoring context cancellation.
func (c *Collection[T]) delay(ctx context.Context) error {
	if c.opts.MaxLatency <= 0 {
		return ctx.Err()
	}

	d := c.opts.MinLatency
	if spread := c.opts.MaxLatency - c.opts.MinLatency; spread > 0 {
		d += time.Duration(rand.Int63n(int64(spread)))
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
