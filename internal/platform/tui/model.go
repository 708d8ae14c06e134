package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/chainblast/internal/core"
)

// frameMsg reports that a session rendered a new frame.
type frameMsg struct{ session *Session }

// sessionDoneMsg reports that a session's scheduler has returned.
type sessionDoneMsg struct{ session *Session }

// Model is the Bubble Tea model for a running game. The simulation runs on
// the session's scheduler; the model forwards keys and shows frames.
type Model struct {
	ctx      context.Context
	session  *Session
	keys     *KeyMapper
	holds    *holdTracker
	view     string
	embedded bool // leave the program running when the game ends
	done     bool
	quitting bool
}

// NewModel creates a model driving session. The session is started by Init.
func NewModel(ctx context.Context, session *Session, releaseAfter time.Duration) Model {
	return Model{
		ctx:     ctx,
		session: session,
		keys:    NewKeyMapper(),
		holds:   newHoldTracker(releaseAfter),
	}
}

// Init starts the session.
func (m Model) Init() tea.Cmd {
	m.session.Start(m.ctx)
	return tea.Batch(waitForFrame(m.session), releaseTick(m.session))
}

// waitForFrame blocks until the next frame or the end of the session.
func waitForFrame(s *Session) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-s.Frames():
			return frameMsg{s}
		case <-s.Done():
			return sessionDoneMsg{s}
		}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.session.Resize(msg.Width, msg.Height)
		return m, nil

	case frameMsg:
		if msg.session != m.session {
			return m, nil
		}
		m.view = m.session.Frame().Styled
		return m, waitForFrame(m.session)

	case releaseTickMsg:
		if msg.session != m.session || m.done {
			return m, nil
		}
		for _, ev := range m.holds.expire(msg.at) {
			m.session.HandleKey(ev)
		}
		return m, releaseTick(m.session)

	case sessionDoneMsg:
		if msg.session != m.session {
			return m, nil
		}
		m.done = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.session.Stop()
		m.quitting = true
		return m, tea.Quit
	}
	if msg.Type == tea.KeyCtrlS {
		m.saveScreenshot()
		return m, nil
	}

	action, _ := m.keys.MapKey(msg)
	switch action {
	case core.ActionNone:
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		repeat := m.holds.held(action)
		evs := m.holds.press(action, time.Now())
		// Auto-repeat outside play must not count as "any key".
		if repeat && m.session.Game().State().Phase != core.PhasePlaying {
			return m, nil
		}
		for _, ev := range evs {
			m.session.HandleKey(ev)
		}
	default:
		m.session.HandleKey(core.Press(action))
	}
	return m, nil
}

// saveScreenshot writes the last frame to ~/.chainblast/screenshots.
func (m Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".chainblast", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.session.Game().ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.session.Frame().Plain), 0o600)
}

// View renders the latest frame.
func (m Model) View() string {
	if m.quitting || m.done {
		return ""
	}
	return m.view
}

// Finished reports whether the game ended, by quitting or otherwise.
func (m Model) Finished() bool {
	return m.done || m.quitting
}

// Interrupted reports whether the user pressed Ctrl+C.
func (m Model) Interrupted() bool {
	return m.quitting
}

// Run plays session in a full-screen program and stops it on return.
func Run(ctx context.Context, session *Session, releaseAfter time.Duration) error {
	defer session.Stop()

	p := tea.NewProgram(
		NewModel(ctx, session, releaseAfter),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	return err
}
