package notifier

import "twinlift/src/timer"

// Note is one entry of a tempo table. Hz 0 is a rest.
type Note struct {
	Hz       int
	Duration uint32
}

// Ambient tune played while a car is moving.
var Ambient = []Note{
	{523, 300}, {659, 300}, {784, 300}, {659, 300},
	{587, 300}, {698, 300}, {880, 450}, {0, 150},
	{784, 300}, {659, 300}, {523, 600}, {0, 300},
}

// melody walks a tempo table. Pausing keeps the position so the tune resumes
// where it left off.
type melody struct {
	notes     []Note
	index     int
	noteStart uint32
	playing   bool
}

// step returns the tone to play at now.
func (m *melody) step(now uint32) int {
	if len(m.notes) == 0 {
		return 0
	}
	if !m.playing {
		m.playing = true
		m.noteStart = now
		return m.notes[m.index].Hz
	}
	if timer.Elapsed(m.noteStart, now) >= m.notes[m.index].Duration {
		m.index = (m.index + 1) % len(m.notes)
		m.noteStart = now
	}
	return m.notes[m.index].Hz
}

func (m *melody) pause() {
	m.playing = false
}

func (m *melody) reset() {
	m.index = 0
	m.playing = false
}

// alert is a fixed-period two-state tone.
type alert struct {
	hz         int
	halfPeriod uint32
	start      uint32
	running    bool
}

func (a *alert) step(now uint32) int {
	if !a.running {
		a.running = true
		a.start = now
	}
	if (timer.Elapsed(a.start, now)/a.halfPeriod)%2 == 0 {
		return a.hz
	}
	return 0
}

func (a *alert) reset() {
	a.running = false
}
