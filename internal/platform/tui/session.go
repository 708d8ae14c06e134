package tui

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/chainblast/internal/config"
	"github.com/vovakirdan/chainblast/internal/core"
	"github.com/vovakirdan/chainblast/internal/registry"
	"github.com/vovakirdan/chainblast/internal/scheduler"
	"github.com/vovakirdan/chainblast/internal/storage"
)

// Frame is one rendered screen.
type Frame struct {
	Styled string // with ANSI colors, for the terminal
	Plain  string // runes only, for screenshots
}

// Session runs one game on the frame scheduler. Update and Render happen on
// the scheduler goroutine; the Bubble Tea model only forwards keys and
// displays the latest frame.
type Session struct {
	game    registry.Game
	audio   core.Audio
	runtime core.RuntimeConfig
	sched   *scheduler.Scheduler
	screen  *core.Screen
	log     *log.Logger

	width, height atomic.Int64
	frame         atomic.Pointer[Frame]
	frames        chan struct{}

	startOnce sync.Once
	stopOnce  sync.Once
	cancel    context.CancelFunc
	done      chan struct{}
	saves     sync.WaitGroup
}

// NewSession creates game id with deps and prepares a scheduler for it.
// When store is non-nil, finished games are saved to it off the scheduler
// goroutine.
func NewSession(id string, deps registry.Deps, rc core.RuntimeConfig, store *storage.Store) (*Session, error) {
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}
	if deps.Audio == nil {
		deps.Audio = core.NoAudio{}
	}
	if deps.Config == nil {
		cfg := config.DefaultChainBlastConfig()
		deps.Config = &cfg
	}

	s := &Session{
		audio:   deps.Audio,
		runtime: rc,
		screen:  core.NewScreen(rc.ScreenW, rc.ScreenH),
		log:     deps.Logger,
		frames:  make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	s.width.Store(int64(rc.ScreenW))
	s.height.Store(int64(rc.ScreenH))

	deps.OnGameOver = chainGameOver(deps.OnGameOver, s.async(SaveScores(store, id, deps.Logger)))
	onQuit := deps.OnQuit
	deps.OnQuit = func() {
		if onQuit != nil {
			onQuit()
		}
		s.sched.Stop()
	}

	game, err := registry.Create(id, deps)
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	s.game = game

	timing := deps.Config.Timing
	sc := scheduler.ConfigForFPS(timing.FPS)
	if rc.TickRate > 0 {
		sc = scheduler.ConfigForFPS(rc.TickRate)
	}
	if timing.MaxFrameSkips > 0 {
		sc.MaxFrameSkips = timing.MaxFrameSkips
	}
	if timing.MaxFramesWithoutYield > 0 {
		sc.MaxFramesWithoutYield = timing.MaxFramesWithoutYield
	}
	s.sched = scheduler.New(target{s}, sc, scheduler.WithLogger(deps.Logger))
	return s, nil
}

// Game returns the game being run.
func (s *Session) Game() registry.Game {
	return s.game
}

// Start resets the game and runs the scheduler until ctx is done, the
// player quits or Stop is called.
func (s *Session) Start(ctx context.Context) {
	s.startOnce.Do(func() {
		ctx, s.cancel = context.WithCancel(ctx)
		s.game.Reset(s.runtime)
		s.log.Debug("session started", "game", s.game.ID(), "fps", s.runtime.TickRate)
		go func() {
			defer close(s.done)
			s.sched.Run(ctx)
			st := s.sched.Stats()
			s.log.Debug("session ended", "game", s.game.ID(),
				"updates", st.Updates, "renders", st.Renders, "skipped", st.Skipped)
		}()
	})
}

// Stop ends the scheduler and waits for it and for pending score saves.
// Safe to call more than once and before Start.
func (s *Session) Stop() {
	s.stopOnce.Do(func() {
		started := true
		s.startOnce.Do(func() { started = false })
		if !started {
			close(s.done)
			return
		}
		s.cancel()
		<-s.done
		s.saves.Wait()
		s.audio.StopMusic()
	})
}

// Done is closed once the scheduler has returned.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Frames signals that a new frame is available.
func (s *Session) Frames() <-chan struct{} {
	return s.frames
}

// Frame returns the last rendered frame.
func (s *Session) Frame() Frame {
	if f := s.frame.Load(); f != nil {
		return *f
	}
	return Frame{}
}

// Resize changes the terminal size. It takes effect at the next render.
func (s *Session) Resize(width, height int) {
	s.width.Store(int64(width))
	s.height.Store(int64(height))
}

// HandleKey forwards ev to the game.
func (s *Session) HandleKey(ev core.KeyEvent) {
	s.game.HandleKey(ev)
}

// Stats returns the scheduler counters.
func (s *Session) Stats() scheduler.Stats {
	return s.sched.Stats()
}

func (s *Session) render() {
	w, h := int(s.width.Load()), int(s.height.Load())
	if w != s.screen.Width() || h != s.screen.Height() {
		s.screen.Resize(w, h)
	}
	s.game.Render(s.screen)
	s.frame.Store(&Frame{Styled: RenderScreen(s.screen), Plain: s.screen.String()})

	select {
	case s.frames <- struct{}{}:
	default:
	}
}

// target adapts a Session to scheduler.Target.
type target struct{ s *Session }

func (t target) Update() { t.s.game.Update() }
func (t target) Render() { t.s.render() }

// SaveScores returns a game-over hook storing non-zero scores under gameID.
// A nil store yields nil.
func SaveScores(store *storage.Store, gameID string, logger *log.Logger) func(core.GameState) {
	if store == nil {
		return nil
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return func(gs core.GameState) {
		if gs.Score <= 0 {
			return
		}
		if _, err := store.SaveScore(gameID, gs.Score, gs.MaxChain); err != nil {
			logger.Warn("could not save score", "game", gameID, "error", err)
		}
	}
}

// async runs fn in its own goroutine so the scheduler never waits on it.
// Stop waits for every call still running.
func (s *Session) async(fn func(core.GameState)) func(core.GameState) {
	if fn == nil {
		return nil
	}
	return func(gs core.GameState) {
		s.saves.Add(1)
		go func() {
			defer s.saves.Done()
			fn(gs)
		}()
	}
}

func chainGameOver(fns ...func(core.GameState)) func(core.GameState) {
	return func(gs core.GameState) {
		for _, fn := range fns {
			if fn != nil {
				fn(gs)
			}
		}
	}
}
