// Contains the state machine handlers for a single car.
package elev

import (
	"log/slog"

	"twinlift/src/timer"
)

// HandleCloseDoor closes an open door. Rejected while moving or during an
// emergency; a second close is logged and otherwise ignored.
func (e *Elevator) HandleCloseDoor(now uint32, emergencyActive bool) bool {
	switch {
	case emergencyActive:
		e.record("rejected: emergency active", e.CurrentFloor)
		return false
	case e.IsMoving:
		e.record("rejected: moving", e.CurrentFloor)
		return false
	case e.DoorClosed:
		e.record("door already closed", e.CurrentFloor)
		return false
	}
	e.DoorClosed = true
	e.DoorCloseRequestTime = now
	e.record("door closed", e.CurrentFloor)
	return true
}

// HandleFloorRequest starts a move to floor if the car may move. All guards are
// checked before anything changes; the first failing one is logged.
func (e *Elevator) HandleFloorRequest(floor int, now uint32, emergencyActive bool) bool {
	switch {
	case emergencyActive:
		e.record("rejected: emergency active", floor)
		return false
	case !ValidFloor(floor):
		e.record("rejected: invalid floor", floor)
		return false
	case !e.DoorClosed:
		e.record("rejected: door open", e.CurrentFloor)
		return false
	case e.IsMoving:
		e.record("rejected: moving", e.TargetFloor)
		return false
	case floor == e.CurrentFloor:
		e.record("already at floor", floor)
		return false
	}

	e.IsMoving = true
	e.StartFloor = e.CurrentFloor
	e.TargetFloor = floor
	e.MoveStartTime = now
	if e.MovingUp() {
		e.record("moving up", floor)
	} else {
		e.record("moving down", floor)
	}
	slog.Debug("Move accepted",
		"id", e.ID,
		"from", e.StartFloor,
		"to", e.TargetFloor,
		"duration", e.TravelDuration())
	return true
}

// Advance completes the move once its travel duration has elapsed. Calling it
// before then does nothing.
func (e *Elevator) Advance(now uint32) bool {
	if !e.IsMoving || timer.Elapsed(e.MoveStartTime, now) < e.TravelDuration() {
		return false
	}
	e.IsMoving = false
	e.CurrentFloor = e.TargetFloor
	e.DoorClosed = false
	e.FloorArrivalTime = now
	e.TripCount++
	e.record("arrived, door open", e.CurrentFloor)
	return true
}

// Halt stops a moving car where it is. The door stays closed and the floor is
// not advanced.
func (e *Elevator) Halt(now uint32) bool {
	if !e.IsMoving {
		return false
	}
	slog.Debug("Halting car",
		"id", e.ID,
		"floor", e.CurrentFloor,
		"target", e.TargetFloor,
		"elapsed", timer.Elapsed(e.MoveStartTime, now))
	e.IsMoving = false
	e.TargetFloor = e.CurrentFloor
	e.record("emergency stop", e.CurrentFloor)
	return true
}
