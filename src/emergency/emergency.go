// Package emergency holds the process-wide safety override.
package emergency

import (
	"fmt"
	"log/slog"

	"twinlift/src/elev"
	"twinlift/src/eventlog"
	"twinlift/src/timer"
	"twinlift/src/types"
)

type State struct {
	Active      bool
	StartTime   uint32
	TotalCount  int
	LastEndTime uint32
}

type Controller struct {
	State
	sink types.EventSink
}

func New(sink types.EventSink) *Controller {
	return &Controller{sink: sink}
}

// Toggle flips the override and reports whether it is now active.
func (c *Controller) Toggle(now uint32, cars []*elev.Elevator) bool {
	if c.Active {
		c.Clear(now)
		return false
	}
	c.Trigger(now, cars)
	return true
}

// Trigger activates the override and stops every moving car in place.
func (c *Controller) Trigger(now uint32, cars []*elev.Elevator) {
	if c.Active {
		return
	}
	msg := "EMERGENCY ACTIVATED"
	if c.TotalCount > 0 {
		msg = fmt.Sprintf("EMERGENCY ACTIVATED (#%d, %ss since last)",
			c.TotalCount+1, eventlog.FormatMillis(timer.Elapsed(c.LastEndTime, now)))
	}
	c.Active = true
	c.StartTime = now
	c.TotalCount++
	c.record(msg)

	for _, car := range cars {
		car.Halt(now)
	}
	slog.Warn("Emergency activated", "count", c.TotalCount, "now", now)
}

// Clear ends an active override. Cars stay where they stopped. Clearing an
// inactive override does nothing.
func (c *Controller) Clear(now uint32) {
	if !c.Active {
		return
	}
	c.Active = false
	c.LastEndTime = now
	c.record(fmt.Sprintf("emergency cleared after %ss", eventlog.FormatMillis(timer.Elapsed(c.StartTime, now))))
	slog.Info("Emergency cleared", "count", c.TotalCount, "now", now)
}

func (c *Controller) Snapshot() State {
	return c.State
}

func (c *Controller) record(msg string) {
	c.sink.Record(types.Event{Source: types.System, Message: msg})
}
