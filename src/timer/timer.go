// Package timer provides the millisecond clock that every other part of the
// controller reads time from.
//
// The counter is 32 bits wide and wraps after about 49.7 days. Elapsed times are
// always computed with unsigned subtraction (see Elapsed), which gives the right
// answer across a single wraparound, so the wrap is left alone.
package timer

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

type Clock struct {
	ticks atomic.Uint32
}

func New() *Clock {
	return new(Clock)
}

// Now returns the milliseconds elapsed since the clock started.
func (c *Clock) Now() uint32 {
	return c.ticks.Load()
}

// Tick advances the clock by exactly one millisecond.
func (c *Clock) Tick() {
	c.ticks.Add(1)
}

// Advance moves the clock forward by ms ticks at once.
func (c *Clock) Advance(ms uint32) {
	c.ticks.Add(ms)
}

// Run ticks the clock once per interval until ctx is done.
func (c *Clock) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	slog.Debug("Clock started", "interval", interval)
	for {
		select {
		case <-ctx.Done():
			slog.Debug("Clock stopped", "now", c.Now())
			return
		case <-ticker.C:
			c.Tick()
		}
	}
}

// Elapsed returns now-since in clock units, correct across one wraparound.
func Elapsed(since, now uint32) uint32 {
	return now - since
}
