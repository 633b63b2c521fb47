package types

import "fmt"

// Source identifies who an event or indicator belongs to.
type Source int

const (
	System Source = iota
	Elevator1
	Elevator2
)

func (s Source) String() string {
	switch s {
	case System:
		return "System"
	case Elevator1:
		return "Elevator1"
	case Elevator2:
		return "Elevator2"
	default:
		return fmt.Sprintf("Source(%d)", int(s))
	}
}

// Elevators lists the car tags in panel order.
var Elevators = [...]Source{Elevator1, Elevator2}

type ElevBehaviour int

const (
	Idle ElevBehaviour = iota
	Moving
)

func (b ElevBehaviour) String() string {
	switch b {
	case Idle:
		return "Idle"
	case Moving:
		return "Moving"
	default:
		return "Undefined"
	}
}

type MotorDirection int

const (
	MD_Up   MotorDirection = 1
	MD_Down MotorDirection = -1
	MD_Stop MotorDirection = 0
)

func (d MotorDirection) String() string {
	switch d {
	case MD_Up:
		return "Up"
	case MD_Down:
		return "Down"
	default:
		return "Stop"
	}
}

// ButtonID is one of the nine buttons multiplexed onto the analog input.
type ButtonID int

const (
	BtnE1Close ButtonID = iota
	BtnE1Floor1
	BtnE1Floor2
	BtnE1Floor3
	BtnE2Close
	BtnE2Floor1
	BtnE2Floor2
	BtnE2Floor3
	BtnEmergency
)

type ButtonAction int

const (
	ActCloseDoor ButtonAction = iota
	ActFloor
	ActEmergency
)

// Target resolves a button to the car it addresses, what it asks for and, for
// floor buttons, the floor.
func (b ButtonID) Target() (src Source, act ButtonAction, floor int) {
	switch {
	case b == BtnEmergency:
		return System, ActEmergency, 0
	case b == BtnE1Close:
		return Elevator1, ActCloseDoor, 0
	case b >= BtnE1Floor1 && b <= BtnE1Floor3:
		return Elevator1, ActFloor, int(b-BtnE1Floor1) + 1
	case b == BtnE2Close:
		return Elevator2, ActCloseDoor, 0
	case b >= BtnE2Floor1 && b <= BtnE2Floor3:
		return Elevator2, ActFloor, int(b-BtnE2Floor1) + 1
	}
	return System, ActEmergency, -1
}

func (b ButtonID) String() string {
	src, act, floor := b.Target()
	switch {
	case floor < 0:
		return fmt.Sprintf("Button(%d)", int(b))
	case act == ActEmergency:
		return "Emergency"
	case act == ActCloseDoor:
		return fmt.Sprintf("%s:CloseDoor", src)
	default:
		return fmt.Sprintf("%s:Floor(%d)", src, floor)
	}
}

// NoFloor marks an event that is not tied to a floor.
const NoFloor = 0

// Event is one entry handed to the event sink.
type Event struct {
	Source  Source
	Message string
	Floor   int
}

// EventSink records state transitions, rejected commands and emergency
// milestones. Implementations stamp each record with the clock.
type EventSink interface {
	Record(ev Event)
}
