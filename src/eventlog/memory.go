package eventlog

import (
	"sync"

	"twinlift/src/types"
)

// Memory keeps events in a slice. Used by tests and the status output.
type Memory struct {
	mu     sync.Mutex
	events []types.Event
}

func (m *Memory) Record(ev types.Event) {
	m.mu.Lock()
	m.events = append(m.events, ev)
	m.mu.Unlock()
}

func (m *Memory) Events() []types.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]types.Event(nil), m.events...)
}

// Count returns how many events from src carried msg.
func (m *Memory) Count(src types.Source, msg string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, ev := range m.events {
		if ev.Source == src && ev.Message == msg {
			n++
		}
	}
	return n
}

func (m *Memory) Last() (types.Event, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.events) == 0 {
		return types.Event{}, false
	}
	return m.events[len(m.events)-1], true
}

func (m *Memory) Reset() {
	m.mu.Lock()
	m.events = nil
	m.mu.Unlock()
}

// Tee fans each event out to several sinks.
type Tee []types.EventSink

func (t Tee) Record(ev types.Event) {
	for _, sink := range t {
		sink.Record(ev)
	}
}
