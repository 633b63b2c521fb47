// Package notifier turns controller status into tones and indicator LEDs.
package notifier

import (
	"log/slog"

	"twinlift/src/types"
)

const AlertHz = 1760

// Panel is the output side of the hardware: a buzzer and per-car LEDs.
type Panel interface {
	SetTone(hz int)
	SetFloorIndicator(src types.Source, bits uint8)
	SetDirectionIndicators(src types.Source, up, down bool)
	SetEmergencyLamp(on bool)
}

type indicator struct {
	bits     uint8
	up, down bool
	shown    bool
}

// Notifier only writes to the panel when an output changes.
type Notifier struct {
	panel      Panel
	melody     melody
	alert      alert
	tone       int
	lamp       bool
	indicators map[types.Source]*indicator
}

func New(panel Panel, alertHalfPeriod uint32, tune []Note) *Notifier {
	if alertHalfPeriod == 0 {
		alertHalfPeriod = 1
	}
	return &Notifier{
		panel:      panel,
		melody:     melody{notes: tune},
		alert:      alert{hz: AlertHz, halfPeriod: alertHalfPeriod},
		indicators: make(map[types.Source]*indicator),
	}
}

// Update advances the audio by one poll iteration. The emergency alert takes
// priority over the melody; the melody only plays while a car moves.
func (n *Notifier) Update(now uint32, emergency, anyMoving bool) {
	n.setLamp(emergency)
	switch {
	case emergency:
		n.melody.pause()
		n.setTone(n.alert.step(now))
	case anyMoving:
		n.alert.reset()
		n.setTone(n.melody.step(now))
	default:
		n.alert.reset()
		n.melody.pause()
		n.setTone(0)
	}
}

// ShowCar updates the floor and direction LEDs of one car.
func (n *Notifier) ShowCar(src types.Source, bits uint8, up, down bool) {
	ind, ok := n.indicators[src]
	if !ok {
		ind = new(indicator)
		n.indicators[src] = ind
	}
	if !ind.shown || ind.bits != bits {
		n.panel.SetFloorIndicator(src, bits)
	}
	if !ind.shown || ind.up != up || ind.down != down {
		n.panel.SetDirectionIndicators(src, up, down)
	}
	*ind = indicator{bits: bits, up: up, down: down, shown: true}
}

// Reset drops any scheduled audio and silences the buzzer.
func (n *Notifier) Reset() {
	slog.Debug("Notifier reset")
	n.melody.reset()
	n.alert.reset()
	n.setTone(0)
}

func (n *Notifier) Tone() int { return n.tone }

func (n *Notifier) setTone(hz int) {
	if hz == n.tone {
		return
	}
	n.tone = hz
	n.panel.SetTone(hz)
}

func (n *Notifier) setLamp(on bool) {
	if on == n.lamp {
		return
	}
	n.lamp = on
	n.panel.SetEmergencyLamp(on)
}
