package chainblast

import "github.com/vovakirdan/chainblast/internal/core"

// Text is a floating label that disappears after a while.
type Text struct {
	body
	text     string
	ticks    int
	lifetime int
}

// NewText creates a label centered at at.
func NewText(w *World, s string, at core.Vec) *Text {
	return &Text{
		body:     body{pos: at},
		text:     s,
		lifetime: w.tune.textTicks,
	}
}

func (t *Text) Kind() Kind { return KindNoninteractive }

// String returns the label.
func (t *Text) String() string { return t.text }

func (t *Text) Update(*World) {
	t.ticks++
	if t.ticks >= t.lifetime {
		t.MarkForRemoval()
	}
}

func (t *Text) Draw(s Surface) {
	s.Text(t.pos, t.text, core.ColorBrightBlue)
}
