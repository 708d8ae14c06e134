package chainblast

import (
	"math"

	"github.com/vovakirdan/chainblast/internal/core"
)

// ObstaclePhase is the state of an obstacle.
type ObstaclePhase int

const (
	ObstacleFlying ObstaclePhase = iota
	ObstacleExploded
)

// Obstacle is a flying block. It kills the player on contact and explodes
// when an explosion touches it. A special obstacle also releases a powerup.
type Obstacle struct {
	drift
	special bool
	phase   ObstaclePhase
	angle   float64
	spin    float64

	chain    *Chain
	strikeAt core.Vec
}

// NewObstacle creates an obstacle centered at at moving vel per tick.
func NewObstacle(w *World, at, vel core.Vec, special bool) *Obstacle {
	t := &w.tune
	return &Obstacle{
		drift: drift{
			body: body{pos: at, w: t.obstacleSize, h: t.obstacleSize},
			vel:  vel,
		},
		special: special,
		angle:   w.rng.Float64() * math.Pi,
		spin:    t.obstacleSpin,
	}
}

func (o *Obstacle) Kind() Kind { return KindObstacle }

// Special reports whether the obstacle releases a powerup.
func (o *Obstacle) Special() bool { return o.special }

// Phase returns whether the obstacle is still flying.
func (o *Obstacle) Phase() ObstaclePhase { return o.phase }

// StruckBy marks the obstacle as caught in ex. It explodes on its next
// update. Only the first strike counts.
func (o *Obstacle) StruckBy(ex *Explosion) {
	if o.phase != ObstacleFlying {
		return
	}
	o.phase = ObstacleExploded
	o.chain = ex.Chain()
	o.strikeAt = ex.Center()
}

func (o *Obstacle) Update(w *World) {
	gone := o.advance(&w.tune)
	o.angle += o.spin

	if o.phase == ObstacleExploded {
		w.Add(NewExplosion(w, o.pos, o.chain))
		if o.special {
			// Away from the blast that caught us.
			heading := math.Atan2(o.pos.Y-o.strikeAt.Y, o.pos.X-o.strikeAt.X)
			w.Add(NewPowerup(w, o.pos, core.Polar(w.tune.powerupSpeed, heading)))
		}
		o.MarkForRemoval()
		return
	}

	if gone {
		o.MarkForRemoval()
	}
}

func (o *Obstacle) Draw(s Surface) {
	c := core.ColorGray
	if o.special {
		c = core.ColorBrightGreen
	}
	s.Square(o.pos, o.w, o.angle, c)
}
