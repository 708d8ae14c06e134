package chainblast

import "math"

// Collides reports whether the circles inscribed in the bounding boxes of a
// and b overlap. The circle diameter is the entity width. Touching circles
// do not collide.
func Collides(a, b Entity) bool {
	pa, pb := a.Center(), b.Center()
	wa, _ := a.Size()
	wb, _ := b.Size()
	dist := math.Hypot(math.Abs(pa.X-pb.X), math.Abs(pa.Y-pb.Y))
	return dist < wa/2+wb/2
}
