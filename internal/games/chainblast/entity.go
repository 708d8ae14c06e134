// Package chainblast implements a survival arcade game: flocks of blocks fly
// across the board, the player dodges them and detonates at the right moment
// so that one explosion sets off a chain of others.
package chainblast

import (
	"fmt"

	"github.com/vovakirdan/chainblast/internal/core"
)

// Kind is the capability tag of an entity. The set is closed.
type Kind int

const (
	KindObstacle Kind = iota
	KindPowerup
	KindExplosion
	KindPlayer
	KindNoninteractive

	kindCount
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindObstacle:
		return "obstacle"
	case KindPowerup:
		return "powerup"
	case KindExplosion:
		return "explosion"
	case KindPlayer:
		return "player"
	case KindNoninteractive:
		return "noninteractive"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Entity is anything that lives on the board. Only types in this package
// implement it.
type Entity interface {
	Kind() Kind
	// Center is the middle of the bounding box in board units.
	Center() core.Vec
	Size() (w, h float64)
	Update(w *World)
	Draw(s Surface)
	MarkedForRemoval() bool
	MarkForRemoval()

	sealed()
}

// body holds the state shared by all entities.
type body struct {
	pos     core.Vec
	w, h    float64
	removed bool
}

func (b *body) Center() core.Vec { return b.pos }
func (b *body) Size() (float64, float64) { return b.w, b.h }
func (b *body) MarkedForRemoval() bool { return b.removed }
func (b *body) MarkForRemoval() { b.removed = true }
func (b *body) sealed() {}

// onBoard reports whether the whole bounding box lies strictly inside the board.
func (b *body) onBoard(t *tuning) bool {
	x := b.pos.X - b.w/2
	y := b.pos.Y - b.h/2
	return x > 0 && y > 0 && x+b.w < t.boardW && y+b.h < t.boardH
}

// drift is a body moving at constant velocity that remembers whether it has
// ever been fully visible.
type drift struct {
	body
	vel  core.Vec
	seen bool
}

// advance moves one tick and reports whether the body has left the board
// after having been on it.
func (d *drift) advance(t *tuning) bool {
	d.pos = d.pos.Add(d.vel)
	if d.onBoard(t) {
		d.seen = true
		return false
	}
	return d.seen
}
