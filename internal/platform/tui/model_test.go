package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/chainblast/internal/core"
	"github.com/vovakirdan/chainblast/internal/registry"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	s, err := NewSession("chainblast", registry.Deps{}, testRuntime(), nil)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	t.Cleanup(s.Stop)
	return NewModel(context.Background(), s, 600*time.Millisecond)
}

func TestModelIgnoresOtherSessions(t *testing.T) {
	m := newTestModel(t)
	other := newTestModel(t)

	next, cmd := m.Update(sessionDoneMsg{other.session})
	if cmd != nil {
		t.Error("a message from another session should not produce a command")
	}
	if next.(Model).Finished() {
		t.Error("model finished on another session's message")
	}
}

func TestModelSessionDone(t *testing.T) {
	tests := []struct {
		name     string
		embedded bool
		wantCmd  bool
	}{
		{"standalone quits the program", false, true},
		{"embedded hands control back", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t)
			m.embedded = tt.embedded

			next, cmd := m.Update(sessionDoneMsg{m.session})
			got := next.(Model)
			if !got.Finished() || got.Interrupted() {
				t.Errorf("Finished() = %v, Interrupted() = %v", got.Finished(), got.Interrupted())
			}
			if (cmd != nil) != tt.wantCmd {
				t.Errorf("cmd = %v, want command: %v", cmd, tt.wantCmd)
			}
			if got.View() != "" {
				t.Error("finished model should render nothing")
			}
		})
	}
}

func TestModelCtrlC(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should quit")
	}
	if !next.(Model).Interrupted() {
		t.Error("ctrl+c should mark the model interrupted")
	}
	select {
	case <-m.session.Done():
	default:
		t.Error("ctrl+c should stop the session")
	}
}

func TestModelMovementHolds(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(Model)
	if !m.holds.held(core.ActionLeft) {
		t.Error("left should be held after a press")
	}

	next, _ = m.Update(releaseTickMsg{at: time.Now().Add(time.Second), session: m.session})
	m = next.(Model)
	if m.holds.held(core.ActionLeft) {
		t.Error("left should be released after the delay")
	}
}
