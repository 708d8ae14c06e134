package core

import "testing"

func TestActionString(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionNone, "None"},
		{ActionUp, "Up"},
		{ActionRight, "Right"},
		{ActionExplode, "Explode"},
		{ActionAdvance, "Advance"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.want {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.want)
		}
	}
}

func TestPressRelease(t *testing.T) {
	if ev := Press(ActionLeft); !ev.Pressed || ev.Action != ActionLeft {
		t.Errorf("Press(ActionLeft) = %+v", ev)
	}
	if ev := Release(ActionLeft); ev.Pressed || ev.Action != ActionLeft {
		t.Errorf("Release(ActionLeft) = %+v", ev)
	}
}
