package chainblast

import "github.com/vovakirdan/chainblast/internal/core"

// ExplosionPhase is the state of an explosion.
type ExplosionPhase int

const (
	ExplosionGrowing ExplosionPhase = iota
	ExplosionShrinking
)

// Explosion is a blast that grows to a maximum diameter and shrinks away.
// Obstacles it touches explode into the same chain.
type Explosion struct {
	body
	chain  *Chain
	phase  ExplosionPhase
	growth float64
	max    float64
	min    float64
}

// NewExplosion creates an explosion centered at at and joins it to chain.
// It is not added to the world.
func NewExplosion(w *World, at core.Vec, chain *Chain) *Explosion {
	t := &w.tune
	e := &Explosion{
		body:   body{pos: at, w: t.explosionInitial, h: t.explosionInitial},
		chain:  chain,
		growth: t.explosionGrowth,
		max:    t.explosionMax,
		min:    t.explosionMin,
	}
	chain.AddExplosion()
	w.audio.PlaySound(core.SoundExplosion)
	return e
}

func (e *Explosion) Kind() Kind { return KindExplosion }

// Chain returns the chain this explosion belongs to.
func (e *Explosion) Chain() *Chain { return e.chain }

// Phase returns whether the explosion is growing or shrinking.
func (e *Explosion) Phase() ExplosionPhase { return e.phase }

// Done reports whether the explosion has shrunk away.
func (e *Explosion) Done() bool {
	return e.w <= e.min
}

func (e *Explosion) Update(*World) {
	switch e.phase {
	case ExplosionGrowing:
		e.resize(e.w + e.growth)
		if e.w >= e.max {
			e.phase = ExplosionShrinking
		}
	case ExplosionShrinking:
		e.resize(e.w - e.growth)
		if e.Done() {
			e.MarkForRemoval()
		}
	}
}

func (e *Explosion) resize(d float64) {
	e.w, e.h = d, d
}

func (e *Explosion) Draw(s Surface) {
	if e.Done() {
		return
	}
	s.Disc(e.pos, e.w, core.ColorBrightYellow)
	s.Ring(e.pos, e.w, core.ColorOrange)
}
