package tui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/chainblast/internal/core"
	_ "github.com/vovakirdan/chainblast/internal/games/chainblast"
	"github.com/vovakirdan/chainblast/internal/registry"
	"github.com/vovakirdan/chainblast/internal/storage"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 120, Seed: 7}
}

func waitFrame(t *testing.T, s *Session) Frame {
	t.Helper()
	select {
	case <-s.Frames():
		return s.Frame()
	case <-time.After(2 * time.Second):
		t.Fatal("no frame rendered")
	}
	return Frame{}
}

func TestNewSessionUnknownGame(t *testing.T) {
	if _, err := NewSession("pong", registry.Deps{}, testRuntime(), nil); err == nil {
		t.Error("NewSession() with an unknown game should fail")
	}
}

func TestSessionRendersMenu(t *testing.T) {
	s, err := NewSession("chainblast", registry.Deps{}, testRuntime(), nil)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	s.Start(context.Background())
	defer s.Stop()

	f := waitFrame(t, s)
	if !strings.Contains(f.Plain, "Chain Blast") {
		t.Errorf("menu frame does not show the title:\n%s", f.Plain)
	}
	if got := len(strings.Split(f.Plain, "\n")); got != 24 {
		t.Errorf("frame has %d rows, want 24", got)
	}
}

func TestSessionResize(t *testing.T) {
	s, err := NewSession("chainblast", registry.Deps{}, testRuntime(), nil)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	s.Start(context.Background())
	defer s.Stop()

	s.Resize(40, 10)
	deadline := time.After(2 * time.Second)
	for {
		select {
		case <-s.Frames():
			if rows := strings.Split(s.Frame().Plain, "\n"); len(rows) == 10 && len([]rune(rows[0])) == 40 {
				return
			}
		case <-deadline:
			t.Fatal("frame never took the new size")
		}
	}
}

func TestSessionQuitStopsScheduler(t *testing.T) {
	quits := 0
	deps := registry.Deps{OnQuit: func() { quits++ }}
	s, err := NewSession("chainblast", deps, testRuntime(), nil)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	s.Start(context.Background())
	waitFrame(t, s)

	s.HandleKey(core.Press(core.ActionQuit))
	select {
	case <-s.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("session did not end after quit")
	}
	if quits != 1 {
		t.Errorf("OnQuit called %d times, want 1", quits)
	}
	if !s.Game().State().Quit {
		t.Error("State().Quit should be set")
	}

	s.Stop()
	s.Stop()
}

func TestSessionContextCancel(t *testing.T) {
	s, err := NewSession("chainblast_rush", registry.Deps{}, testRuntime(), nil)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	waitFrame(t, s)
	cancel()

	select {
	case <-s.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("session did not end after cancel")
	}
	if st := s.Stats(); st.Updates == 0 || st.Renders == 0 {
		t.Errorf("Stats() = %+v, want updates and renders", st)
	}
}

func TestSessionStopBeforeStart(t *testing.T) {
	s, err := NewSession("chainblast", registry.Deps{}, testRuntime(), nil)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	s.Stop()
	select {
	case <-s.Done():
	default:
		t.Error("Done() should be closed after Stop")
	}
}

func TestSaveScores(t *testing.T) {
	if fn := SaveScores(nil, "chainblast", nil); fn != nil {
		t.Error("SaveScores(nil store) should return nil")
	}

	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() error = %v", err)
	}
	defer store.Close()

	save := SaveScores(store, "chainblast", nil)
	save(core.GameState{Score: 0, GameOver: true})
	save(core.GameState{Score: 1200, MaxChain: 9, GameOver: true})

	scores, err := store.TopScores("chainblast", 10)
	if err != nil {
		t.Fatalf("TopScores() error = %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("got %d scores, want 1 (zero scores are skipped)", len(scores))
	}
	if scores[0].Score != 1200 || scores[0].MaxChain != 9 {
		t.Errorf("saved %+v, want score 1200 chain 9", scores[0])
	}
}

func TestSessionSavesOffSchedulerGoroutine(t *testing.T) {
	s, err := NewSession("chainblast", registry.Deps{}, testRuntime(), nil)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	if s.async(nil) != nil {
		t.Error("async(nil) should return nil")
	}

	release := make(chan struct{})
	saved := make(chan int, 1)
	hook := s.async(func(gs core.GameState) {
		<-release
		saved <- gs.Score
	})

	returned := make(chan struct{})
	go func() {
		hook(core.GameState{Score: 500, GameOver: true})
		close(returned)
	}()
	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("game-over hook blocked on a slow save")
	}

	s.Start(context.Background())
	stopped := make(chan struct{})
	go func() {
		s.Stop()
		close(stopped)
	}()
	select {
	case <-stopped:
		t.Fatal("Stop returned before the pending save finished")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return after the save finished")
	}
	if got := <-saved; got != 500 {
		t.Errorf("saved score %d, want 500", got)
	}
}
