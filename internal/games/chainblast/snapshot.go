package chainblast

import (
	"math"

	"github.com/vovakirdan/chainblast/internal/core"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick        int
	Phase       core.Phase
	Score       int
	MaxChain    int
	Lives       int
	PlayerPhase PlayerPhase
	PlayerX     int // hundredths of a board unit
	PlayerY     int
	Obstacles   int
	Explosions  int
	Powerups    int
	Texts       int
	Pending     int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	snap := Snapshot{
		Tick:       w.tick,
		Phase:      g.phase,
		Score:      w.ledger.Total(),
		MaxChain:   w.ledger.MaxChain(),
		Obstacles:  w.entities.Count(KindObstacle),
		Explosions: w.entities.Count(KindExplosion),
		Powerups:   w.entities.Count(KindPowerup),
		Texts:      w.entities.Count(KindNoninteractive),
		Pending:    w.entities.Pending(),
	}
	if p := g.player; p != nil {
		snap.Lives = p.Lives()
		snap.PlayerPhase = p.Phase()
		snap.PlayerX = int(math.Round(p.pos.X * 100))
		snap.PlayerY = int(math.Round(p.pos.Y * 100))
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)              //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.MaxChain)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerPhase) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Obstacles)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Explosions)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Powerups)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Texts)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Pending)     //#nosec G115 -- hash computation
	return h
}
