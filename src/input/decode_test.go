package input

import (
	"testing"

	"twinlift/src/types"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		raw int
		btn types.ButtonID
		ok  bool
	}{
		{699, 0, false},
		{700, types.BtnE1Close, true},
		{720, types.BtnE1Close, true},
		{721, 0, false},
		{728, types.BtnE1Floor1, true},
		{748, types.BtnE1Floor1, true},
		{769, types.BtnE1Floor2, true},
		{812, types.BtnE1Floor3, true},
		{825, types.BtnE2Close, true},
		{852, types.BtnE2Floor1, true},
		{871, types.BtnE2Floor1, true},
		{873, types.BtnE2Floor2, true},
		{895, types.BtnE2Floor3, true},
		{904, types.BtnE2Floor3, true},
		{905, types.BtnEmergency, true},
		{910, types.BtnEmergency, true},
		{915, types.BtnEmergency, true},
		{935, types.BtnEmergency, true},
		{936, 0, false},
		{0, 0, false},
		{1023, 0, false},
	}
	for _, tt := range tests {
		btn, ok := Decode(tt.raw)
		if ok != tt.ok || (ok && btn != tt.btn) {
			t.Errorf("Decode(%d) = (%v, %v), expected (%v, %v)", tt.raw, btn, ok, tt.btn, tt.ok)
		}
	}
}

func TestNominalRoundTrip(t *testing.T) {
	for btn := types.BtnE1Close; btn <= types.BtnEmergency; btn++ {
		got, ok := Decode(Nominal(btn))
		if !ok || got != btn {
			t.Errorf("Decode(Nominal(%v)) = (%v, %v)", btn, got, ok)
		}
	}
	if Nominal(types.ButtonID(99)) != -1 {
		t.Error("Nominal of an unknown button should be -1")
	}
}
