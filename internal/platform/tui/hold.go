package tui

import (
	"time"

	"github.com/vovakirdan/chainblast/internal/core"
)

// movement lists the held actions in the order releases are reported.
var movement = [...]core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}

var opposite = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// holdTracker turns terminal key presses into press/release pairs. A
// terminal only reports presses and auto-repeats, so a movement key counts
// as held until no repeat arrived for the release delay.
type holdTracker struct {
	after time.Duration
	last  map[core.Action]time.Time
}

func newHoldTracker(after time.Duration) *holdTracker {
	return &holdTracker{
		after: after,
		last:  make(map[core.Action]time.Time, len(movement)),
	}
}

// press records a press of a at now. Pressing a direction releases the
// opposite one at once.
func (h *holdTracker) press(a core.Action, now time.Time) []core.KeyEvent {
	var evs []core.KeyEvent
	if opp, ok := opposite[a]; ok {
		if _, held := h.last[opp]; held {
			delete(h.last, opp)
			evs = append(evs, core.Release(opp))
		}
	}
	h.last[a] = now
	return append(evs, core.Press(a))
}

// expire releases every key whose last press is older than the delay.
func (h *holdTracker) expire(now time.Time) []core.KeyEvent {
	var evs []core.KeyEvent
	for _, a := range movement {
		at, held := h.last[a]
		if held && now.Sub(at) >= h.after {
			delete(h.last, a)
			evs = append(evs, core.Release(a))
		}
	}
	return evs
}

func (h *holdTracker) held(a core.Action) bool {
	_, ok := h.last[a]
	return ok
}
