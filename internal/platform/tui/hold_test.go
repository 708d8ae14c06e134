package tui

import (
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/chainblast/internal/core"
)

func TestHoldTrackerPress(t *testing.T) {
	h := newHoldTracker(500 * time.Millisecond)
	now := time.Unix(0, 0)

	got := h.press(core.ActionUp, now)
	if want := []core.KeyEvent{core.Press(core.ActionUp)}; !reflect.DeepEqual(got, want) {
		t.Errorf("first press = %v, want %v", got, want)
	}
	if !h.held(core.ActionUp) {
		t.Error("up should be held after a press")
	}

	got = h.press(core.ActionDown, now)
	want := []core.KeyEvent{core.Release(core.ActionUp), core.Press(core.ActionDown)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("opposite press = %v, want %v", got, want)
	}
	if h.held(core.ActionUp) {
		t.Error("up should be released by pressing down")
	}
}

func TestHoldTrackerExpire(t *testing.T) {
	h := newHoldTracker(500 * time.Millisecond)
	start := time.Unix(100, 0)

	h.press(core.ActionLeft, start)
	h.press(core.ActionUp, start)

	if evs := h.expire(start.Add(499 * time.Millisecond)); len(evs) != 0 {
		t.Errorf("expire before delay = %v, want none", evs)
	}

	// An auto-repeat keeps left held.
	h.press(core.ActionLeft, start.Add(400*time.Millisecond))

	got := h.expire(start.Add(500 * time.Millisecond))
	if want := []core.KeyEvent{core.Release(core.ActionUp)}; !reflect.DeepEqual(got, want) {
		t.Errorf("expire at delay = %v, want %v", got, want)
	}

	got = h.expire(start.Add(900 * time.Millisecond))
	if want := []core.KeyEvent{core.Release(core.ActionLeft)}; !reflect.DeepEqual(got, want) {
		t.Errorf("expire after repeat = %v, want %v", got, want)
	}

	if evs := h.expire(start.Add(time.Hour)); len(evs) != 0 {
		t.Errorf("nothing held, expire = %v", evs)
	}
}

func TestHoldTrackerReleaseOrder(t *testing.T) {
	h := newHoldTracker(time.Millisecond)
	now := time.Unix(0, 0)
	for _, a := range []core.Action{core.ActionRight, core.ActionDown} {
		h.press(a, now)
	}

	got := h.expire(now.Add(time.Second))
	want := []core.KeyEvent{core.Release(core.ActionDown), core.Release(core.ActionRight)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expire() = %v, want %v", got, want)
	}
}
