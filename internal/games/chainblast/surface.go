package chainblast

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/chainblast/internal/core"
)

// Surface is what entities draw themselves on. Coordinates and sizes are in
// board units.
type Surface interface {
	Disc(center core.Vec, diameter float64, c core.Color)
	Ring(center core.Vec, diameter float64, c core.Color)
	Square(center core.Vec, side, angle float64, c core.Color)
	Text(center core.Vec, s string, c core.Color)
}

// Glyphs used by the canvas.
const (
	glyphFill    = '█'
	glyphSquare  = '■'
	glyphDiamond = '◆'
	glyphRing    = '░'
)

// Canvas draws on a core.Screen, scaling the board to fit it.
type Canvas struct {
	screen *core.Screen
	sx, sy float64 // cells per board unit
}

// NewCanvas maps a boardW x boardH board onto the whole of screen.
func NewCanvas(screen *core.Screen, boardW, boardH float64) *Canvas {
	return &Canvas{
		screen: screen,
		sx:     float64(screen.Width()) / boardW,
		sy:     float64(screen.Height()) / boardH,
	}
}

// Cell returns the screen cell containing board point p.
func (c *Canvas) Cell(p core.Vec) (int, int) {
	return int(math.Floor(p.X * c.sx)), int(math.Floor(p.Y * c.sy))
}

// cellCenter returns the board point at the middle of cell (x, y).
func (c *Canvas) cellCenter(x, y int) core.Vec {
	return core.Vec{X: (float64(x) + 0.5) / c.sx, Y: (float64(y) + 0.5) / c.sy}
}

// fill sets every cell whose center satisfies inside. Shapes smaller than a
// cell still mark the cell under their center.
func (c *Canvas) fill(center core.Vec, reach float64, r rune, col core.Color, inside func(p core.Vec) bool) {
	x0, y0 := c.Cell(core.Vec{X: center.X - reach, Y: center.Y - reach})
	x1, y1 := c.Cell(core.Vec{X: center.X + reach, Y: center.Y + reach})
	drawn := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if inside(c.cellCenter(x, y)) {
				c.screen.SetCell(x, y, r, col)
				drawn = true
			}
		}
	}
	if !drawn {
		x, y := c.Cell(center)
		c.screen.SetCell(x, y, r, col)
	}
}

// Disc draws a filled circle.
func (c *Canvas) Disc(center core.Vec, diameter float64, col core.Color) {
	r := diameter / 2
	c.fill(center, r, glyphFill, col, func(p core.Vec) bool {
		return p.Sub(center).Len() <= r
	})
}

// Ring draws the outline of a circle, one cell thick.
func (c *Canvas) Ring(center core.Vec, diameter float64, col core.Color) {
	r := diameter / 2
	band := 0.5 * math.Max(1/c.sx, 1/c.sy)
	x0, y0 := c.Cell(core.Vec{X: center.X - r, Y: center.Y - r})
	x1, y1 := c.Cell(core.Vec{X: center.X + r, Y: center.Y + r})
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			d := c.cellCenter(x, y).Sub(center).Len()
			if math.Abs(d-r) <= band {
				c.screen.SetCell(x, y, glyphRing, col)
			}
		}
	}
}

// Square draws a filled square rotated by angle radians.
func (c *Canvas) Square(center core.Vec, side, angle float64, col core.Color) {
	half := side / 2
	cos, sin := math.Cos(-angle), math.Sin(-angle)
	glyph := glyphSquare
	// Quarter turns look the same, so only the phase within one matters.
	if q := math.Mod(math.Abs(angle), math.Pi/2); q > math.Pi/8 && q < 3*math.Pi/8 {
		glyph = glyphDiamond
	}
	c.fill(center, half*math.Sqrt2, glyph, col, func(p core.Vec) bool {
		d := p.Sub(center)
		rx := d.X*cos - d.Y*sin
		ry := d.X*sin + d.Y*cos
		return math.Abs(rx) <= half && math.Abs(ry) <= half
	})
}

// Text draws s centered on a board point.
func (c *Canvas) Text(center core.Vec, s string, col core.Color) {
	x, y := c.Cell(center)
	c.screen.DrawTextColor(x-utf8.RuneCountInString(s)/2, y, s, col)
}
