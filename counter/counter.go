// Package counter provides a lock-free uint32 counter that refuses to wrap:
// operations that would overflow or underflow return an error and leave the
// value untouched, instead of silently disabling whatever limit the counter
// enforces.
package counter

import (
	"math"
	"sync/atomic"
)

// Error is the closed set of failures a Counter operation may return.
// It carries no payload and is freely comparable.
type Error uint8

const (
	// ErrOverflow is returned when an operation would push the value
	// past math.MaxUint32.
	ErrOverflow Error = iota + 1

	// ErrUnderflow is returned when an operation would push the value
	// below zero.
	ErrUnderflow
)

func (e Error) Error() string {
	switch e {
	case ErrOverflow:
		return "counter overflow at maximum value"
	case ErrUnderflow:
		return "counter underflow at zero"
	}
	return "unknown counter error"
}

// Counter holds a single uint32 with sequentially consistent atomic access.
// The zero value is a valid counter at 0.
//
// Mutations run a compare-and-swap loop: the bound check is re-derived from a
// fresh load on every iteration, so two concurrent callers can never both
// slip past the bound. Contention only causes retries; a returned error is
// always a genuine bound violation and is never retried internally.
type Counter struct {
	value atomic.Uint32
}

// New returns a counter initialized to n.
func New(n uint32) *Counter {
	c := &Counter{}
	c.value.Store(n)
	return c
}

// Load returns the current value.
func (c *Counter) Load() uint32 { return c.value.Load() }

// Inc adds one and returns the new value.
// Returns ErrOverflow if the counter is at math.MaxUint32.
func (c *Counter) Inc() (uint32, error) { return c.Add(1) }

// Dec subtracts one and returns the new value.
// Returns ErrUnderflow if the counter is at zero.
func (c *Counter) Dec() (uint32, error) { return c.Sub(1) }

// Add adds delta and returns the new value. If the sum would exceed
// math.MaxUint32 the value is left unchanged and ErrOverflow is returned.
// A zero delta always succeeds and returns the current value.
func (c *Counter) Add(delta uint32) (uint32, error) {
	if delta == 0 {
		return c.value.Load(), nil
	}
	for {
		cur := c.value.Load()
		if delta > math.MaxUint32-cur {
			return 0, ErrOverflow
		}
		if c.value.CompareAndSwap(cur, cur+delta) {
			return cur + delta, nil
		}
		// Lost the race; recheck against the fresh value.
	}
}

// Sub subtracts delta and returns the new value. If delta exceeds the current
// value the counter is left unchanged and ErrUnderflow is returned.
// A zero delta always succeeds and returns the current value.
func (c *Counter) Sub(delta uint32) (uint32, error) {
	if delta == 0 {
		return c.value.Load(), nil
	}
	for {
		cur := c.value.Load()
		if delta > cur {
			return 0, ErrUnderflow
		}
		if c.value.CompareAndSwap(cur, cur-delta) {
			return cur - delta, nil
		}
	}
}
