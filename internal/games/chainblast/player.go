package chainblast

import (
	"fmt"
	"math"

	"github.com/vovakirdan/chainblast/internal/core"
)

// PlayerPhase is the state of the player.
type PlayerPhase int

const (
	playerNone PlayerPhase = iota - 1
	PlayerSpawning
	PlayerMoving
	PlayerExploding
	PlayerDead
)

// String returns a human-readable name for the phase.
func (p PlayerPhase) String() string {
	switch p {
	case PlayerSpawning:
		return "spawning"
	case PlayerMoving:
		return "moving"
	case PlayerExploding:
		return "exploding"
	case PlayerDead:
		return "dead"
	default:
		return "none"
	}
}

var diagonal = math.Sin(math.Pi / 4)

// Player is the ship the user steers. It is owned by the game, not by the
// entity registry.
type Player struct {
	body
	phase PlayerPhase
	lives int
	dir   core.Vec
	angle float64
	ticks int
	blast *Explosion
	over  bool
}

// NewPlayer creates a player with a full set of lives, spawning in the
// middle of the board.
func NewPlayer(w *World) *Player {
	p := &Player{
		phase: playerNone,
		lives: w.tune.lives,
	}
	p.setPhase(w, PlayerSpawning)
	return p
}

func (p *Player) Kind() Kind { return KindPlayer }

// Phase returns the current phase.
func (p *Player) Phase() PlayerPhase { return p.phase }

// Lives returns the remaining lives.
func (p *Player) Lives() int { return p.lives }

// Over reports whether the player has run out of lives and finished dying.
func (p *Player) Over() bool { return p.over }

// Steer sets the movement direction from the held keys. Up beats down.
// Left beats right when combined with a vertical key, right beats left
// otherwise.
func (p *Player) Steer(up, down, left, right bool) {
	var dx, dy float64
	switch {
	case up || down:
		dy = 1
		if up {
			dy = -1
		}
		switch {
		case left:
			dx, dy = -diagonal, dy*diagonal
		case right:
			dx, dy = diagonal, dy*diagonal
		}
	case right:
		dx = 1
	case left:
		dx = -1
	}
	p.dir = core.Vec{X: dx, Y: dy}
}

// Explode detonates the player. It costs a life and is ignored unless the
// player is moving.
func (p *Player) Explode(w *World) {
	if p.phase != PlayerMoving {
		return
	}
	p.loseLife(w)
	p.setPhase(w, PlayerExploding)
}

func (p *Player) Update(w *World) {
	if p.over {
		return
	}
	t := &w.tune

	switch p.phase {
	case PlayerSpawning:
		p.move(t)
		p.ticks++
		if p.ticks >= t.spawnTicks {
			p.setPhase(w, PlayerMoving)
		}
	case PlayerMoving:
		p.angle += t.playerSpin
		p.move(t)
		p.collide(w)
	case PlayerExploding:
		if !p.blast.Done() {
			return
		}
		p.ticks++
		if p.ticks >= t.respawnTicks {
			p.respawn(w)
		}
	case PlayerDead:
		p.ticks++
		if p.ticks >= t.deathTicks {
			p.respawn(w)
		}
	default:
		panic(fmt.Sprintf("chainblast: player in unknown phase %d", p.phase))
	}
}

func (p *Player) setPhase(w *World, next PlayerPhase) {
	if next == p.phase {
		panic(fmt.Sprintf("chainblast: player phase %s set twice", next))
	}
	p.phase = next
	p.ticks = 0
	p.blast = nil

	switch next {
	case PlayerSpawning:
		p.pos = w.tune.center()
		p.w, p.h = w.tune.playerSize, w.tune.playerSize
	case PlayerExploding:
		p.blast = NewExplosion(w, p.pos, NewChain(w.ledger))
		w.Add(p.blast)
	}
}

func (p *Player) respawn(w *World) {
	if p.lives > 0 {
		p.setPhase(w, PlayerSpawning)
		return
	}
	p.over = true
}

func (p *Player) loseLife(w *World) {
	if p.lives > 0 {
		p.lives--
	}
	w.ledger.OnPlayerDeath()
}

func (p *Player) move(t *tuning) {
	if p.dir == (core.Vec{}) {
		return
	}
	p.pos = p.pos.Add(p.dir.Scale(t.playerSpeed))
	p.pos.X = core.ClampF(p.pos.X, p.w/2, t.boardW-p.w/2)
	p.pos.Y = core.ClampF(p.pos.Y, p.h/2, t.boardH-p.h/2)
}

// collide handles contact with live entities. The first obstacle hit ends
// the scan.
func (p *Player) collide(w *World) {
	w.entities.Each(func(e Entity) bool {
		switch t := e.(type) {
		case *Obstacle:
			if Collides(p, t) {
				p.loseLife(w)
				p.setPhase(w, PlayerDead)
				return false
			}
		case *Powerup:
			if Collides(p, t) {
				t.Collect(w)
			}
		case *Explosion, *Text:
		default:
			panic(fmt.Sprintf("chainblast: player cannot collide with %T", e))
		}
		return true
	})
}

func (p *Player) Draw(s Surface) {
	switch p.phase {
	case PlayerSpawning:
		// Blink while invulnerable.
		if (p.ticks/8)%2 == 0 {
			s.Disc(p.pos, p.w, core.ColorBrightCyan)
		}
	case PlayerMoving:
		s.Disc(p.pos, p.w, core.ColorBlue)
		s.Text(p.pos.Add(core.Polar(p.w/2, p.angle)), "·", core.ColorBrightWhite)
	case PlayerExploding, PlayerDead:
	}
}
