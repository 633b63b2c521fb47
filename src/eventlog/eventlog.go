// Package eventlog renders controller events as a human readable log stamped
// with the controller clock.
package eventlog

import (
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"

	"twinlift/src/types"
)

const (
	clockField  = "clock"
	sourceField = "source"
	floorField  = "floor"
)

type Clock interface {
	Now() uint32
}

type Sink struct {
	mu    sync.Mutex
	log   zerolog.Logger
	clock Clock
}

// New returns a sink writing one line per event to w, e.g.
//
//	00012.345 INF Elevator1 moving up floor=3
func New(w io.Writer, clk Clock, instance string) *Sink {
	output := zerolog.ConsoleWriter{
		Out:           w,
		NoColor:       true,
		PartsOrder:    []string{clockField, zerolog.LevelFieldName, sourceField, zerolog.MessageFieldName},
		FieldsExclude: []string{clockField, sourceField, "instance"},
	}
	return &Sink{
		log:   zerolog.New(output).With().Str("instance", instance).Logger(),
		clock: clk,
	}
}

func (s *Sink) Record(ev types.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.log.Info()
	if ev.Source == types.System {
		e = s.log.Warn()
	}
	e = e.Str(clockField, FormatMillis(s.clock.Now())).Str(sourceField, ev.Source.String())
	if ev.Floor != types.NoFloor {
		e = e.Int(floorField, ev.Floor)
	}
	e.Msg(ev.Message)
}

// FormatMillis renders a clock reading as seconds with millisecond resolution.
func FormatMillis(ms uint32) string {
	return fmt.Sprintf("%05d.%03d", ms/1000, ms%1000)
}
