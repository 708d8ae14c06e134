package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// releaseInterval is how often held movement keys are checked for release.
const releaseInterval = 50 * time.Millisecond

// releaseTickMsg triggers a release check for one session.
type releaseTickMsg struct {
	at      time.Time
	session *Session
}

func releaseTick(s *Session) tea.Cmd {
	return tea.Tick(releaseInterval, func(t time.Time) tea.Msg {
		return releaseTickMsg{at: t, session: s}
	})
}
