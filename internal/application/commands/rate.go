package commands

import (
	"sync"
	"time"
)

// RateGate spaces out provider calls across the worker pool. The lock is held
// through the sleep so concurrent callers queue up behind it.
type RateGate struct {
	mu       sync.Mutex
	last     time.Time
	interval time.Duration
}

func NewRateGate(interval time.Duration) *RateGate {
	return &RateGate{interval: interval}
}

func (g *RateGate) Wait() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if since := time.Since(g.last); since < g.interval {
		time.Sleep(g.interval - since)
	}
	g.last = time.Now()
}
