// State types are kept apart from the Elevator so a snapshot carries data only.
package elev

import "twinlift/src/types"

// State is the per-car record. Times are clock readings in milliseconds.
type State struct {
	ID                   types.Source
	CurrentFloor         int
	DoorClosed           bool
	IsMoving             bool
	StartFloor           int
	TargetFloor          int
	MoveStartTime        uint32
	FloorArrivalTime     uint32
	DoorCloseRequestTime uint32
	TripCount            int
}

// Elevator owns one car's state. It is only touched from the poll loop.
type Elevator struct {
	State
	travelPerFloor uint32
	sink           types.EventSink
}
