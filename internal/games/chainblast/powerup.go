package chainblast

import (
	"strconv"

	"github.com/vovakirdan/chainblast/internal/core"
)

// Powerup drifts across the board and awards points when the player
// touches it.
type Powerup struct {
	drift
}

// NewPowerup creates a powerup centered at at moving vel per tick.
func NewPowerup(w *World, at, vel core.Vec) *Powerup {
	size := w.tune.powerupSize
	return &Powerup{
		drift: drift{
			body: body{pos: at, w: size, h: size},
			vel:  vel,
		},
	}
}

func (p *Powerup) Kind() Kind { return KindPowerup }

func (p *Powerup) Update(w *World) {
	if p.advance(&w.tune) {
		p.MarkForRemoval()
	}
}

// Collect scores the powerup, shows the points and removes it.
// Collecting twice awards nothing.
func (p *Powerup) Collect(w *World) int {
	if p.MarkedForRemoval() {
		return 0
	}
	points := w.ledger.AddPowerup()
	w.Add(NewText(w, strconv.Itoa(points), p.pos))
	p.MarkForRemoval()
	return points
}

func (p *Powerup) Draw(s Surface) {
	s.Disc(p.pos, p.w, core.ColorGreen)
}
