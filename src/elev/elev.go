package elev

import (
	"log/slog"

	"twinlift/src/config"
	"twinlift/src/types"

	"github.com/tiendc/go-deepcopy"
)

const (
	BottomFloor = 1
	TopFloor    = config.NumFloors
)

// New returns a car parked at the bottom floor with its door closed.
func New(id types.Source, travelPerFloor uint32, sink types.EventSink) *Elevator {
	elevator := &Elevator{
		State: State{
			ID:           id,
			CurrentFloor: BottomFloor,
			DoorClosed:   true,
			StartFloor:   BottomFloor,
			TargetFloor:  BottomFloor,
		},
		travelPerFloor: travelPerFloor,
		sink:           sink,
	}
	slog.Debug("Elevator initialized", "id", id, "travelPerFloor", travelPerFloor)
	return elevator
}

// Snapshot returns a detached copy of the car state.
func (e *Elevator) Snapshot() State {
	var snap State
	if err := deepcopy.Copy(&snap, &e.State); err != nil {
		slog.Error("Snapshot copy failed", "id", e.ID, "err", err)
		return e.State
	}
	return snap
}

func (e *Elevator) Behaviour() types.ElevBehaviour {
	if e.IsMoving {
		return types.Moving
	}
	return types.Idle
}

func (e *Elevator) Direction() types.MotorDirection {
	switch {
	case !e.IsMoving:
		return types.MD_Stop
	case e.TargetFloor > e.StartFloor:
		return types.MD_Up
	default:
		return types.MD_Down
	}
}

func (e *Elevator) MovingUp() bool   { return e.Direction() == types.MD_Up }
func (e *Elevator) MovingDown() bool { return e.Direction() == types.MD_Down }

// TravelDuration is the time a move from StartFloor to TargetFloor takes.
func (e *Elevator) TravelDuration() uint32 {
	return uint32(abs(e.TargetFloor-e.StartFloor)) * e.travelPerFloor
}

func ValidFloor(floor int) bool {
	return floor >= BottomFloor && floor <= TopFloor
}

func (e *Elevator) record(msg string, floor int) {
	e.sink.Record(types.Event{Source: e.ID, Message: msg, Floor: floor})
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
