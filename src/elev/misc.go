package elev

import "fmt"

// FloorBits encodes a floor for the two floor LEDs: 1→01, 2→10, 3→11.
func FloorBits(floor int) uint8 {
	if !ValidFloor(floor) {
		return 0
	}
	return uint8(floor)
}

func (s State) String() string {
	door := "open"
	if s.DoorClosed {
		door = "closed"
	}
	if s.IsMoving {
		return fmt.Sprintf("%s: %d->%d door %s", s.ID, s.StartFloor, s.TargetFloor, door)
	}
	return fmt.Sprintf("%s: floor %d door %s", s.ID, s.CurrentFloor, door)
}
