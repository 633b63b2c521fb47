package executor

import (
	"context"

	"twinlift/src/elev"
	"twinlift/src/emergency"
)

// Snapshot is a copy of the controller state taken between iterations.
type Snapshot struct {
	Now       uint32
	Cars      []elev.State
	Emergency emergency.State
	Pending   bool
}

// Snapshot copies the state directly. Only call it from the Step goroutine;
// other goroutines use Query.
func (c *Controller) Snapshot() Snapshot {
	snap := Snapshot{
		Now:       c.clock.Now(),
		Emergency: c.emergency.Snapshot(),
		Pending:   c.debounce.Pending(),
	}
	for _, car := range c.cars {
		snap.Cars = append(snap.Cars, car.Snapshot())
	}
	return snap
}

// Query asks the running loop for a snapshot.
func (c *Controller) Query(ctx context.Context) (Snapshot, bool) {
	reply := make(chan Snapshot, 1)
	select {
	case c.snapshotReq <- reply:
	case <-ctx.Done():
		return Snapshot{}, false
	}
	select {
	case snap := <-reply:
		return snap, true
	case <-ctx.Done():
		return Snapshot{}, false
	}
}
