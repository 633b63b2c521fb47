package notifier

import (
	"testing"

	"twinlift/src/types"
)

var tune = []Note{{440, 100}, {0, 50}, {660, 100}}

func TestMelodyFollowsTempo(t *testing.T) {
	panel := NewStatePanel(true)
	n := New(panel, 250, tune)

	steps := []struct {
		now uint32
		hz  int
	}{
		{0, 440}, {99, 440}, {100, 0}, {149, 0}, {150, 660}, {249, 660}, {250, 440},
	}
	for _, s := range steps {
		n.Update(s.now, false, true)
		if panel.Tone() != s.hz {
			t.Errorf("tone at %d = %d, expected %d", s.now, panel.Tone(), s.hz)
		}
	}
}

func TestMelodyPausesWhenIdle(t *testing.T) {
	panel := NewStatePanel(true)
	n := New(panel, 250, tune)
	n.Update(0, false, true)
	n.Update(100, false, true) // rest
	n.Update(150, false, true) // 660
	n.Update(160, false, false)
	if panel.Tone() != 0 {
		t.Errorf("tone %d with no car moving", panel.Tone())
	}
	// resumes on the same note
	n.Update(5000, false, true)
	if panel.Tone() != 660 {
		t.Errorf("tone after resume = %d, expected 660", panel.Tone())
	}
}

func TestAlertHasPriority(t *testing.T) {
	panel := NewStatePanel(true)
	n := New(panel, 250, tune)
	n.Update(0, false, true)

	steps := []struct {
		now uint32
		hz  int
	}{
		{1000, AlertHz}, {1249, AlertHz}, {1250, 0}, {1499, 0}, {1500, AlertHz},
	}
	for _, s := range steps {
		n.Update(s.now, true, true)
		if panel.Tone() != s.hz {
			t.Errorf("alert tone at %d = %d, expected %d", s.now, panel.Tone(), s.hz)
		}
		if !panel.Lamp() {
			t.Errorf("emergency lamp off at %d", s.now)
		}
	}

	n.Update(2000, false, false)
	if panel.Lamp() || panel.Tone() != 0 {
		t.Errorf("outputs after emergency: lamp %v tone %d", panel.Lamp(), panel.Tone())
	}
}

func TestResetRewindsMelody(t *testing.T) {
	panel := NewStatePanel(true)
	n := New(panel, 250, tune)
	n.Update(0, false, true)
	n.Update(150, false, true)
	n.Reset()
	if panel.Tone() != 0 || n.Tone() != 0 {
		t.Error("Reset() did not silence the buzzer")
	}
	n.Update(400, false, true)
	if panel.Tone() != 440 {
		t.Errorf("tone after reset = %d, expected first note", panel.Tone())
	}
}

func TestShowCarWritesOnChange(t *testing.T) {
	panel := NewStatePanel(true)
	n := New(panel, 250, tune)

	n.ShowCar(types.Elevator1, 0b01, false, false)
	first := panel.Writes()
	if first != 2 {
		t.Errorf("first ShowCar() wrote %d outputs, expected 2", first)
	}
	n.ShowCar(types.Elevator1, 0b01, false, false)
	if panel.Writes() != first {
		t.Error("unchanged ShowCar() wrote to the panel")
	}
	n.ShowCar(types.Elevator1, 0b01, true, false)
	if panel.Writes() != first+1 {
		t.Error("direction change not written exactly once")
	}
	if up, down := panel.Direction(types.Elevator1); !up || down {
		t.Errorf("direction = %v/%v, expected up", up, down)
	}
	n.ShowCar(types.Elevator2, 0b11, false, true)
	if panel.Floor(types.Elevator2) != 0b11 || panel.Floor(types.Elevator1) != 0b01 {
		t.Error("floor indicators mixed up between cars")
	}
}
