package utils

import (
	"fmt"
	"io"
	"os"
	"strings"

	"twinlift/src/elev"
	"twinlift/src/eventlog"
	"twinlift/src/executor"
)

// StatusLine renders a snapshot on one line.
func StatusLine(snap executor.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] ", eventlog.FormatMillis(snap.Now))
	for i, car := range snap.Cars {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(carStatus(car))
	}
	if snap.Emergency.Active {
		b.WriteString(" | EMERGENCY")
	}
	return b.String()
}

// PrintStatus overwrites the current terminal line with the status.
func PrintStatus(w io.Writer, snap executor.Snapshot) {
	fmt.Fprintf(w, "\r%-90s\r", StatusLine(snap))
}

// PrintSummary is written once at shutdown.
func PrintSummary(snap executor.Snapshot) {
	fmt.Fprintln(os.Stdout)
	for _, car := range snap.Cars {
		fmt.Fprintf(os.Stdout, "%v: %d trips, at floor %d\n", car.ID, car.TripCount, car.CurrentFloor)
	}
	fmt.Fprintf(os.Stdout, "Emergencies: %d\n", snap.Emergency.TotalCount)
}

func carStatus(car elev.State) string {
	door := "open"
	if car.DoorClosed {
		door = "closed"
	}
	switch {
	case car.IsMoving && car.TargetFloor > car.StartFloor:
		return fmt.Sprintf("%v ^ %d->%d", car.ID, car.StartFloor, car.TargetFloor)
	case car.IsMoving:
		return fmt.Sprintf("%v v %d->%d", car.ID, car.StartFloor, car.TargetFloor)
	default:
		return fmt.Sprintf("%v @%d door %s", car.ID, car.CurrentFloor, door)
	}
}
