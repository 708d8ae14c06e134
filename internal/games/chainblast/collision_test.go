package chainblast

import (
	"testing"

	"github.com/vovakirdan/chainblast/internal/core"
)

func TestCollidesSymmetric(t *testing.T) {
	w := testWorld(1)
	points := []core.Vec{
		{X: 0, Y: 0},
		{X: 19.999, Y: 0},
		{X: 20, Y: 0},
		{X: 14.14, Y: 14.14},
		{X: -7.5, Y: 3.25},
		{X: 1e-9, Y: -1e-9},
		{X: 100, Y: 100},
	}
	origin := core.Vec{X: 320, Y: 240}

	for _, p := range points {
		a := NewObstacle(w, origin, core.Vec{}, false)
		b := NewObstacle(w, origin.Add(p), core.Vec{}, true)
		ex := NewExplosion(w, origin.Add(p), NewChain(nil))

		if Collides(a, b) != Collides(b, a) {
			t.Errorf("obstacle pair at offset %v is not symmetric", p)
		}
		if Collides(a, ex) != Collides(ex, a) {
			t.Errorf("obstacle/explosion pair at offset %v is not symmetric", p)
		}
	}
}

func TestCollidesThreshold(t *testing.T) {
	w := testWorld(1)
	origin := core.Vec{X: 100, Y: 100}

	tests := []struct {
		name string
		dist float64
		want bool
	}{
		{"touching", 20, false},
		{"just overlapping", 19.999, true},
		{"same center", 0, true},
		{"apart", 35, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewObstacle(w, origin, core.Vec{}, false)
			b := NewObstacle(w, origin.Add(core.Vec{X: tt.dist}), core.Vec{}, false)
			if got := Collides(a, b); got != tt.want {
				t.Errorf("Collides at distance %v = %v, want %v", tt.dist, got, tt.want)
			}
		})
	}
}
