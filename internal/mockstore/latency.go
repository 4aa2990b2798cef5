// Package mockstore holds the pieces shared by the in-memory repositories:
// simulated network latency and id sequences.
package mockstore

import (
	"context"
	"strconv"
	"sync"
	"time"
)

// Base delays of the simulated backend, before scaling.
const (
	CatalogDelay  = 500 * time.Millisecond
	PropertyDelay = 500 * time.Millisecond
	AuthDelay     = 1000 * time.Millisecond
	BookingDelay  = 1500 * time.Millisecond
	PaymentDelay  = 2000 * time.Millisecond
)

// Latency simulates network delay. A zero or negative scale disables it.
type Latency struct {
	scale float64
}

func NewLatency(scale float64) Latency {
	return Latency{scale: scale}
}

// None is a Latency that never waits, used by tests.
func None() Latency {
	return Latency{}
}

// Duration is the scaled delay for base.
func (l Latency) Duration(base time.Duration) time.Duration {
	if l.scale <= 0 {
		return 0
	}
	return time.Duration(float64(base) * l.scale)
}

// Wait blocks for the scaled delay or until ctx is done.
func (l Latency) Wait(ctx context.Context, base time.Duration) error {
	d := l.Duration(base)
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Sequence hands out increasing numeric ids, continuing after seeded rows.
type Sequence struct {
	mu   sync.Mutex
	last int64
}

func NewSequence(last int64) *Sequence {
	return &Sequence{last: last}
}

func (s *Sequence) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last++
	return s.last
}

// NextString is Next formatted as a decimal string.
func (s *Sequence) NextString() string {
	return strconv.FormatInt(s.Next(), 10)
}
