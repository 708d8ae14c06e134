// Package scheduler runs a game at a fixed update rate. When rendering falls
// behind it skips renders, never updates, up to a bounded number per frame.
package scheduler

import (
	"context"
	"io"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

// Target is what the scheduler drives.
type Target interface {
	Update()
	Render()
}

// Clock abstracts time so tests can run the loop without sleeping.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
	Yield()
}

type wallClock struct{}

func (wallClock) Now() time.Time { return time.Now() }
func (wallClock) Sleep(d time.Duration) { time.Sleep(d) }
func (wallClock) Yield() { runtime.Gosched() }

// Config controls the loop timing.
type Config struct {
	Period                time.Duration // target time per frame
	MaxFrameSkips         int           // update-only passes allowed per frame
	MaxFramesWithoutYield int           // busy frames before yielding the processor
}

// DefaultConfig returns 60 frames per second with the usual limits.
func DefaultConfig() Config {
	return ConfigForFPS(60)
}

// ConfigForFPS returns the default limits at fps frames per second.
func ConfigForFPS(fps int) Config {
	if fps <= 0 {
		fps = 60
	}
	return Config{
		Period:                time.Second / time.Duration(fps),
		MaxFrameSkips:         5,
		MaxFramesWithoutYield: 16,
	}
}

// Stats counts what the loop has done so far.
type Stats struct {
	Cycles    uint64
	Updates   uint64
	Renders   uint64
	Skipped   uint64 // updates run without a render
	Yields    uint64
	Oversleep time.Duration // total time slept beyond what was asked
}

// Scheduler is a fixed-period game loop with oversleep compensation.
type Scheduler struct {
	target  Target
	cfg     Config
	clock   Clock
	log     *log.Logger
	running atomic.Bool

	cycles    atomic.Uint64
	updates   atomic.Uint64
	renders   atomic.Uint64
	skipped   atomic.Uint64
	yields    atomic.Uint64
	oversleep atomic.Int64
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(s *Scheduler) { s.clock = c }
}

// WithLogger sets the logger used for overrun reports.
func WithLogger(l *log.Logger) Option {
	return func(s *Scheduler) { s.log = l }
}

// New creates a scheduler for target.
func New(target Target, cfg Config, opts ...Option) *Scheduler {
	if cfg.Period <= 0 {
		cfg.Period = DefaultConfig().Period
	}
	if cfg.MaxFramesWithoutYield <= 0 {
		cfg.MaxFramesWithoutYield = 1
	}
	s := &Scheduler{
		target: target,
		cfg:    cfg,
		clock:  wallClock{},
		log:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run drives the target until Stop is called or ctx is done.
func (s *Scheduler) Run(ctx context.Context) {
	s.running.Store(true)
	defer s.running.Store(false)

	period := s.cfg.Period
	var (
		oversleep time.Duration
		excess    time.Duration
		noDelays  int
	)
	before := s.clock.Now()

	for s.running.Load() && ctx.Err() == nil {
		s.cycles.Add(1)
		s.update()
		s.render()

		after := s.clock.Now()
		sleep := period - after.Sub(before) - oversleep

		if sleep > 0 {
			s.clock.Sleep(sleep)
			oversleep = s.clock.Now().Sub(after) - sleep
			if oversleep > 0 {
				s.oversleep.Add(int64(oversleep))
			}
		} else {
			excess -= sleep
			oversleep = 0
			noDelays++
			if noDelays >= s.cfg.MaxFramesWithoutYield {
				s.clock.Yield()
				s.yields.Add(1)
				noDelays = 0
			}
		}

		before = s.clock.Now()

		skips := 0
		for excess > period && skips < s.cfg.MaxFrameSkips {
			excess -= period
			s.update()
			s.skipped.Add(1)
			skips++
		}
		if skips == s.cfg.MaxFrameSkips && excess > period {
			s.log.Debug("frame budget exceeded", "skipped", skips, "behind", excess)
		}
	}
}

func (s *Scheduler) update() {
	s.target.Update()
	s.updates.Add(1)
}

func (s *Scheduler) render() {
	s.target.Render()
	s.renders.Add(1)
}

// Stop makes Run return after the current cycle.
func (s *Scheduler) Stop() {
	s.running.Store(false)
}

// Running reports whether Run is looping.
func (s *Scheduler) Running() bool {
	return s.running.Load()
}

// Stats returns the counters. Safe to call while Run is active.
func (s *Scheduler) Stats() Stats {
	return Stats{
		Cycles:    s.cycles.Load(),
		Updates:   s.updates.Load(),
		Renders:   s.renders.Load(),
		Skipped:   s.skipped.Load(),
		Yields:    s.yields.Load(),
		Oversleep: time.Duration(s.oversleep.Load()),
	}
}
