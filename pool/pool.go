// Package pool tracks the number of pending items per key and enforces a
// configurable per-key limit. It is the owning container for counter.Counter:
// one counter per live key, created on first acquire and dropped once the
// count returns to zero.
package pool

import (
	"fmt"
	"sync"

	"github.com/txpool-dev/pendlimit/config"
	"github.com/txpool-dev/pendlimit/counter"
	"github.com/txpool-dev/pendlimit/log"
)

// Pool is safe for concurrent use. The map of counters is guarded by a
// mutex; the counts themselves are lock-free counters, so their overflow
// and underflow guarantees hold no matter how the pool is driven.
type Pool struct {
	mu      sync.Mutex
	entries map[string]*counter.Counter
	cfg     *config.Config
}

// New returns an empty pool enforcing the limits from cfg.
// The pool keeps its own snapshot of cfg and applies its `log_debug` flag.
func New(cfg *config.Config) *Pool {
	p := &Pool{
		entries: make(map[string]*counter.Counter),
		cfg:     cfg.Clone(),
	}
	log.SetDebug(p.cfg.LogDebug)
	return p
}

// Acquire accounts one more pending item for the key and returns the new
// pending count. It fails if the key's configured limit is reached, or with
// counter.ErrOverflow if the count would leave the uint32 range. A failed
// acquire changes nothing.
func (p *Pool) Acquire(key string) (uint32, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	c := p.entries[key]
	var cur uint32
	if c != nil {
		cur = c.Load()
	}

	if max := p.cfg.MaxPendingFor(key); max > 0 && cur >= max {
		rejectTotal.With(limitLabel).Inc()
		return 0, fmt.Errorf("limits for key %q are exceeded: %d pending items (max_pending: %d)", key, cur, max)
	}

	if c == nil {
		c = &counter.Counter{}
		p.entries[key] = c
		pendingKeys.Inc()
		log.Debugf("created entry for key %q", key)
	}

	n, err := c.Inc()
	if err != nil {
		rejectTotal.With(counterLabel).Inc()
		err = fmt.Errorf("cannot account pending item for key %q: %w", key, err)
		log.Errorf("%s", err)
		return 0, err
	}

	acquireTotal.Inc()
	return n, nil
}

// Release accounts one finished item for the key and returns the remaining
// pending count. Releasing a key with nothing pending is a caller-side
// defect; it is surfaced as counter.ErrUnderflow and changes nothing.
// Once a key's count returns to zero its entry is dropped.
func (p *Pool) Release(key string) (uint32, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	c := p.entries[key]
	if c == nil {
		rejectTotal.With(counterLabel).Inc()
		err := fmt.Errorf("cannot release pending item for key %q: %w", key, counter.ErrUnderflow)
		log.Errorf("%s", err)
		return 0, err
	}

	n, err := c.Dec()
	if err != nil {
		rejectTotal.With(counterLabel).Inc()
		err = fmt.Errorf("cannot release pending item for key %q: %w", key, err)
		log.Errorf("%s", err)
		return 0, err
	}

	if n == 0 {
		delete(p.entries, key)
		pendingKeys.Dec()
		log.Debugf("dropped entry for key %q", key)
	}

	releaseTotal.Inc()
	return n, nil
}

// Pending returns the current pending count for the key,
// zero for unknown keys.
func (p *Pool) Pending(key string) uint32 {
	p.mu.Lock()
	defer p.mu.Unlock()

	if c := p.entries[key]; c != nil {
		return c.Load()
	}
	return 0
}

// Len returns the number of keys with at least one pending item.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.entries)
}

// ApplyConfig swaps in a snapshot of cfg and re-applies its `log_debug`
// flag. Counts already accumulated are kept; only the limits checked by
// subsequent acquires change.
func (p *Pool) ApplyConfig(cfg *config.Config) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cfg = cfg.Clone()
	log.SetDebug(p.cfg.LogDebug)
	log.Infof("pool config updated: default max_pending %d, %d key overrides", p.cfg.MaxPending, len(p.cfg.Keys))
}
