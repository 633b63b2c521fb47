package input

import "twinlift/src/types"

type span struct {
	btn      types.ButtonID
	min, max int
}

// Calibrated ranges, inclusive. The emergency range overlaps the Elevator2
// floor 3 range on [905,915] and Elevator2 floors 1/2 overlap on [870,872];
// the first matching entry wins, so emergency is listed first.
var spans = [...]span{
	{types.BtnEmergency, 905, 935},
	{types.BtnE1Close, 700, 720},
	{types.BtnE1Floor1, 728, 748},
	{types.BtnE1Floor2, 759, 779},
	{types.BtnE1Floor3, 792, 812},
	{types.BtnE2Close, 825, 845},
	{types.BtnE2Floor1, 852, 872},
	{types.BtnE2Floor2, 870, 890},
	{types.BtnE2Floor3, 895, 915},
}

// Decode maps a raw analog sample to a button. ok is false for noise.
func Decode(raw int) (btn types.ButtonID, ok bool) {
	for _, s := range spans {
		if raw >= s.min && raw <= s.max {
			return s.btn, true
		}
	}
	return 0, false
}

// Nominal returns a sample that decodes to btn without touching an overlap.
func Nominal(btn types.ButtonID) int {
	if btn == types.BtnE2Floor3 {
		return 900
	}
	for _, s := range spans {
		if s.btn == btn {
			return (s.min + s.max) / 2
		}
	}
	return -1
}
