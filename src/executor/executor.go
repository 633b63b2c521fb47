package executor

import (
	"context"
	"log/slog"
	"time"

	"twinlift/src/config"
	"twinlift/src/elev"
	"twinlift/src/emergency"
	"twinlift/src/input"
	"twinlift/src/notifier"
	"twinlift/src/timer"
	"twinlift/src/types"
)

// Sampler reads the multiplexed analog button pin.
type Sampler interface {
	ReadAnalog() int
}

// Controller owns the two cars, the emergency override and the notifier. All of
// them are only touched from the goroutine calling Step.
type Controller struct {
	clock     *timer.Clock
	debounce  *input.Debouncer
	sampler   Sampler
	cars      []*elev.Elevator
	emergency *emergency.Controller
	notifier  *notifier.Notifier
	sink      types.EventSink

	snapshotReq chan chan Snapshot
}

func New(cfg config.Config, clock *timer.Clock, sampler Sampler, panel notifier.Panel, sink types.EventSink) *Controller {
	travel := config.Millis(cfg.TravelPerFloor)
	c := &Controller{
		clock:       clock,
		debounce:    input.NewDebouncer(config.Millis(cfg.DebounceWindow)),
		sampler:     sampler,
		emergency:   emergency.New(sink),
		notifier:    notifier.New(panel, config.Millis(cfg.AlertHalfPeriod), notifier.Ambient),
		sink:        sink,
		snapshotReq: make(chan chan Snapshot),
	}
	for _, id := range types.Elevators {
		c.cars = append(c.cars, elev.New(id, travel, sink))
	}
	c.refreshIndicators()
	return c
}

// Edge is the button interrupt: it latches a pending input unless one is
// already waiting. Safe to call from any goroutine.
func (c *Controller) Edge() {
	now := c.clock.Now()
	if !c.debounce.Latch(now) {
		slog.Debug("Edge dropped, input pending", "now", now)
	}
}

// Step runs one poll iteration: audio, input, motion, indicators.
func (c *Controller) Step() {
	now := c.clock.Now()
	c.notifier.Update(now, c.emergency.Active, c.anyMoving())

	if c.debounce.Due(now) {
		raw := c.sampler.ReadAnalog()
		if btn, ok := input.Decode(raw); ok {
			slog.Debug("Input resolved", "raw", raw, "button", btn, "now", now)
			c.Dispatch(btn, now)
		} else {
			slog.Debug("Input ignored", "raw", raw, "now", now)
		}
		c.debounce.Clear()
	}

	for _, car := range c.cars {
		car.Advance(now)
	}
	c.refreshIndicators()
}

// Dispatch applies one decoded button.
func (c *Controller) Dispatch(btn types.ButtonID, now uint32) {
	src, act, floor := btn.Target()
	switch act {
	case types.ActEmergency:
		if c.emergency.Toggle(now, c.cars) {
			c.notifier.Reset()
		}
	case types.ActCloseDoor:
		c.car(src).HandleCloseDoor(now, c.emergency.Active)
	case types.ActFloor:
		c.car(src).HandleFloorRequest(floor, now, c.emergency.Active)
	}
}

// Run steps the controller every interval until ctx is done. Edges arriving on
// edges are latched from a separate goroutine.
func (c *Controller) Run(ctx context.Context, interval time.Duration, edges <-chan struct{}) {
	go c.relayEdges(ctx, edges)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	c.record("controller started", types.NoFloor)
	for {
		select {
		case <-ctx.Done():
			c.record("controller stopped", types.NoFloor)
			return
		case <-ticker.C:
			c.Step()
		case reply := <-c.snapshotReq:
			reply <- c.Snapshot()
		}
	}
}

func (c *Controller) relayEdges(ctx context.Context, edges <-chan struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-edges:
			c.Edge()
		}
	}
}

func (c *Controller) car(src types.Source) *elev.Elevator {
	for _, car := range c.cars {
		if car.ID == src {
			return car
		}
	}
	panic("unknown elevator " + src.String())
}

func (c *Controller) anyMoving() bool {
	for _, car := range c.cars {
		if car.IsMoving {
			return true
		}
	}
	return false
}

func (c *Controller) refreshIndicators() {
	for _, car := range c.cars {
		c.notifier.ShowCar(car.ID, elev.FloorBits(car.CurrentFloor), car.MovingUp(), car.MovingDown())
	}
}

func (c *Controller) record(msg string, floor int) {
	c.sink.Record(types.Event{Source: types.System, Message: msg, Floor: floor})
}
