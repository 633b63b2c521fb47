package emergency

import (
	"strings"
	"testing"

	"twinlift/src/elev"
	"twinlift/src/eventlog"
	"twinlift/src/types"
)

func setup() (*Controller, []*elev.Elevator, *eventlog.Memory) {
	mem := new(eventlog.Memory)
	cars := []*elev.Elevator{
		elev.New(types.Elevator1, 5000, mem),
		elev.New(types.Elevator2, 5000, mem),
	}
	return New(mem), cars, mem
}

func TestTriggerHaltsMovingCars(t *testing.T) {
	c, cars, mem := setup()
	cars[0].HandleFloorRequest(2, 0, false)

	if !c.Toggle(2000, cars) {
		t.Fatal("Toggle() did not activate")
	}
	if !c.Active || c.StartTime != 2000 || c.TotalCount != 1 {
		t.Errorf("after trigger: %+v", c.State)
	}
	e1 := cars[0]
	if e1.IsMoving || !e1.DoorClosed || e1.CurrentFloor != 1 {
		t.Errorf("car 1 after trigger: %+v", e1.State)
	}
	if e1.MovingUp() || e1.MovingDown() {
		t.Error("direction flags not cleared")
	}
	if mem.Count(types.Elevator1, "emergency stop") != 1 {
		t.Error("car 1 stop not recorded")
	}
	if mem.Count(types.Elevator2, "emergency stop") != 0 {
		t.Error("idle car 2 recorded a stop")
	}
	if mem.Count(types.System, "EMERGENCY ACTIVATED") != 1 {
		t.Errorf("activation not recorded: %+v", mem.Events())
	}
}

func TestClearLeavesCarsStopped(t *testing.T) {
	c, cars, mem := setup()
	cars[1].HandleFloorRequest(3, 0, false)
	c.Toggle(1000, cars)
	if c.Toggle(4000, cars) {
		t.Fatal("second Toggle() reported active")
	}
	if c.Active || c.LastEndTime != 4000 {
		t.Errorf("after clear: %+v", c.State)
	}
	if cars[1].IsMoving || cars[1].Advance(20000) {
		t.Error("car resumed without a new command")
	}
	last, _ := mem.Last()
	if last.Message != "emergency cleared after 00003.000s" {
		t.Errorf("clear logged %q", last.Message)
	}
}

func TestClearWhenInactiveIsNoop(t *testing.T) {
	c, _, mem := setup()
	c.Clear(100)
	if c.Active || c.LastEndTime != 0 || len(mem.Events()) != 0 {
		t.Errorf("Clear() on inactive controller changed something: %+v", c.State)
	}
}

func TestTimeSinceLastEmergency(t *testing.T) {
	c, cars, mem := setup()
	c.Toggle(1000, cars)
	c.Toggle(2000, cars)
	c.Toggle(7500, cars)
	if c.TotalCount != 2 {
		t.Errorf("TotalCount = %d, expected 2", c.TotalCount)
	}
	last, _ := mem.Last()
	if !strings.Contains(last.Message, "#2") || !strings.Contains(last.Message, "00005.500s since last") {
		t.Errorf("second activation logged %q", last.Message)
	}
	if snap := c.Snapshot(); !snap.Active || snap.TotalCount != 2 {
		t.Errorf("Snapshot() = %+v", snap)
	}
}

func TestTriggerWhileActiveIsNoop(t *testing.T) {
	c, cars, _ := setup()
	c.Trigger(10, cars)
	c.Trigger(20, cars)
	if c.TotalCount != 1 || c.StartTime != 10 {
		t.Errorf("repeated Trigger() changed state: %+v", c.State)
	}
}
