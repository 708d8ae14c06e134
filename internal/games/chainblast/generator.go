package chainblast

import (
	"math"

	"github.com/vovakirdan/chainblast/internal/config"
	"github.com/vovakirdan/chainblast/internal/core"
)

// Generator spawns flocks of obstacles from outside the board, aimed
// roughly at its center.
type Generator struct {
	difficulty *config.DifficultyManager
}

// NewGenerator creates a generator. d may be nil for constant difficulty.
func NewGenerator(d *config.DifficultyManager) *Generator {
	return &Generator{difficulty: d}
}

// Update rolls for a new flock.
func (g *Generator) Update(w *World) {
	t := &w.tune
	chance := t.spawnChance
	if g.difficulty != nil && g.difficulty.IsEnabled() {
		chance = g.difficulty.SpawnChance(chance, w.ledger.Total(), w.tick)
	}
	if w.rng.Float64() >= chance {
		return
	}
	g.spawnFlock(w)
}

// spawnFlock places a V of obstacles on a circle around the board. The
// special obstacle leads and the others trail behind it on both sides.
func (g *Generator) spawnFlock(w *World) {
	t := &w.tune
	n := t.flockSizes[w.rng.Intn(len(t.flockSizes))]
	theta := w.rng.Float64() * 2 * math.Pi

	speed := t.minSpeed + w.rng.Float64()*(t.maxSpeed-t.minSpeed)
	if g.difficulty != nil && g.difficulty.IsEnabled() {
		speed = g.difficulty.Speed(speed, w.ledger.Total(), w.tick)
	}
	xw := (w.rng.Float64() - 0.5) * t.wiggle
	yw := (w.rng.Float64() - 0.5) * t.wiggle
	vel := core.Vec{
		X: math.Cos(theta-math.Pi+xw) * speed,
		Y: math.Sin(theta-math.Pi+yw) * speed,
	}

	center := t.center()
	radius := math.Max(t.boardW, t.boardH)/2 + t.obstacleSize

	w.Add(NewObstacle(w, center.Add(core.Polar(radius, theta)), vel, true))
	for i := 1; i <= (n-1)/2; i++ {
		off := t.radialOffset * float64(i)
		r := radius + t.distanceOffset*float64(i)
		w.Add(NewObstacle(w, center.Add(core.Polar(r, theta-off)), vel, false))
		w.Add(NewObstacle(w, center.Add(core.Polar(r, theta+off)), vel, false))
	}

	w.log.Debug("flock spawned", "size", n, "angle", theta, "speed", speed)
}
