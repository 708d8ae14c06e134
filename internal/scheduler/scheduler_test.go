package scheduler

import (
	"context"
	"testing"
	"time"
)

type fakeClock struct {
	now    time.Time
	extra  time.Duration // added to every sleep
	sleeps []time.Duration
	yields int
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d + c.extra)
}

func (c *fakeClock) Yield() { c.yields++ }

// fakeGame burns cost of fake time per render and stops the loop after
// frames renders.
type fakeGame struct {
	clock  *fakeClock
	cost   time.Duration
	frames int
	stop   func()

	updates     int
	renders     int
	sinceRender int
	maxBetween  int
}

func (g *fakeGame) Update() {
	g.updates++
	g.sinceRender++
}

func (g *fakeGame) Render() {
	// The update that precedes every render is not a skip.
	if g.renders > 0 && g.sinceRender-1 > g.maxBetween {
		g.maxBetween = g.sinceRender - 1
	}
	g.sinceRender = 0
	g.renders++
	g.clock.now = g.clock.now.Add(g.cost)
	if g.renders == g.frames {
		g.stop()
	}
}

func newFake(cost time.Duration, frames int) (*fakeClock, *fakeGame) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	return clock, &fakeGame{clock: clock, cost: cost, frames: frames}
}

func TestSkipCap(t *testing.T) {
	cfg := ConfigForFPS(60)
	tests := []struct {
		name     string
		cost     time.Duration
		wantMax  int
		wantSkip bool
	}{
		{"on time", cfg.Period / 2, 0, false},
		{"three periods", 3 * cfg.Period, 5, true},
		{"ten periods", 10 * cfg.Period, 5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock, game := newFake(tt.cost, 100)
			s := New(game, cfg, WithClock(clock))
			game.stop = s.Stop
			s.Run(context.Background())

			if game.maxBetween > tt.wantMax {
				t.Errorf("%d update-only passes between renders, want at most %d", game.maxBetween, tt.wantMax)
			}
			st := s.Stats()
			if (st.Skipped > 0) != tt.wantSkip {
				t.Errorf("Skipped = %d", st.Skipped)
			}
			if st.Renders != 100 {
				t.Errorf("Renders = %d, want 100", st.Renders)
			}
			if st.Updates != st.Renders+st.Skipped {
				t.Errorf("Updates = %d, want renders + skipped = %d", st.Updates, st.Renders+st.Skipped)
			}
		})
	}
}

func TestSkipCapReached(t *testing.T) {
	cfg := ConfigForFPS(60)
	clock, game := newFake(10*cfg.Period, 20)
	s := New(game, cfg, WithClock(clock))
	game.stop = s.Stop
	s.Run(context.Background())

	if game.maxBetween != cfg.MaxFrameSkips {
		t.Errorf("max update-only passes = %d, want %d", game.maxBetween, cfg.MaxFrameSkips)
	}
}

func TestOversleepCompensation(t *testing.T) {
	cfg := Config{Period: 16 * time.Millisecond, MaxFrameSkips: 5, MaxFramesWithoutYield: 16}
	clock, game := newFake(0, 5)
	clock.extra = 2 * time.Millisecond
	s := New(game, cfg, WithClock(clock))
	game.stop = s.Stop
	s.Run(context.Background())

	want := []time.Duration{16, 14, 14, 14, 14}
	if len(clock.sleeps) != len(want) {
		t.Fatalf("slept %d times, want %d", len(clock.sleeps), len(want))
	}
	for i, w := range want {
		if clock.sleeps[i] != w*time.Millisecond {
			t.Errorf("sleep %d = %v, want %v", i, clock.sleeps[i], w*time.Millisecond)
		}
	}
	if got := s.Stats().Oversleep; got != 10*time.Millisecond {
		t.Errorf("Oversleep = %v, want 10ms", got)
	}
}

func TestYieldsWhenBusy(t *testing.T) {
	cfg := ConfigForFPS(60)
	clock, game := newFake(2*cfg.Period, 32)
	s := New(game, cfg, WithClock(clock))
	game.stop = s.Stop
	s.Run(context.Background())

	if clock.yields != 2 {
		t.Errorf("yielded %d times in 32 busy frames, want 2", clock.yields)
	}
	if len(clock.sleeps) != 0 {
		t.Errorf("slept %d times while behind", len(clock.sleeps))
	}
}

func TestContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	clock, game := newFake(0, 3)
	s := New(game, ConfigForFPS(60), WithClock(clock))
	game.stop = cancel
	s.Run(ctx)

	if game.renders != 3 {
		t.Errorf("rendered %d frames, want 3", game.renders)
	}
	if s.Running() {
		t.Error("Running() = true after Run returned")
	}
}

func TestConfigForFPS(t *testing.T) {
	if got := ConfigForFPS(0).Period; got != time.Second/60 {
		t.Errorf("Period for 0 fps = %v", got)
	}
	if got := ConfigForFPS(30).Period; got != time.Second/30 {
		t.Errorf("Period for 30 fps = %v", got)
	}
}
