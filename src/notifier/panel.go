package notifier

import (
	"log/slog"
	"sync"

	"twinlift/src/types"
)

// StatePanel keeps the last value written to every output and logs changes.
// It stands in for real LEDs when running without hardware.
type StatePanel struct {
	mu     sync.Mutex
	tone   int
	lamp   bool
	floors map[types.Source]uint8
	dirs   map[types.Source][2]bool
	writes int
	quiet  bool
}

func NewStatePanel(quiet bool) *StatePanel {
	return &StatePanel{
		floors: make(map[types.Source]uint8),
		dirs:   make(map[types.Source][2]bool),
		quiet:  quiet,
	}
}

func (p *StatePanel) SetTone(hz int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tone = hz
	p.writes++
	if !p.quiet {
		slog.Debug("Tone", "hz", hz)
	}
}

func (p *StatePanel) SetFloorIndicator(src types.Source, bits uint8) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.floors[src] = bits
	p.writes++
	if !p.quiet {
		slog.Info("Floor indicator", "elevator", src, "bits", bits)
	}
}

func (p *StatePanel) SetDirectionIndicators(src types.Source, up, down bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dirs[src] = [2]bool{up, down}
	p.writes++
	if !p.quiet {
		slog.Info("Direction indicators", "elevator", src, "up", up, "down", down)
	}
}

func (p *StatePanel) SetEmergencyLamp(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lamp = on
	p.writes++
	if !p.quiet {
		slog.Warn("Emergency lamp", "on", on)
	}
}

func (p *StatePanel) Tone() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tone
}

func (p *StatePanel) Lamp() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lamp
}

func (p *StatePanel) Floor(src types.Source) uint8 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.floors[src]
}

func (p *StatePanel) Direction(src types.Source) (up, down bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	d := p.dirs[src]
	return d[0], d[1]
}

// Writes counts panel writes since creation.
func (p *StatePanel) Writes() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.writes
}
