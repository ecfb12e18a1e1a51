package core

import "math"

// Canvas projects world-space shapes onto a Screen.
// The world rectangle [0,W]x[0,H] is stretched over the whole screen.
type Canvas struct {
	screen *Screen
	world  Bounds
}

// NewCanvas creates a canvas drawing into screen for a world of the given size.
func NewCanvas(screen *Screen, world Bounds) *Canvas {
	return &Canvas{screen: screen, world: world}
}

// SetWorld updates the world size after a resize.
func (c *Canvas) SetWorld(world Bounds) {
	c.world = world
}

// Screen returns the underlying screen buffer.
func (c *Canvas) Screen() *Screen {
	return c.screen
}

func (c *Canvas) scale() (sx, sy float64) {
	if c.world.W <= 0 || c.world.H <= 0 {
		return 0, 0
	}
	return float64(c.screen.Width()) / c.world.W, float64(c.screen.Height()) / c.world.H
}

// CellOf maps a world point to the screen cell containing it.
func (c *Canvas) CellOf(p Vec) (int, int) {
	sx, sy := c.scale()
	return int(math.Floor(p.X * sx)), int(math.Floor(p.Y * sy))
}

// FillRect fills the cells covered by r. Rectangles thinner than a cell still
// occupy one cell.
func (c *Canvas) FillRect(r Rect, color Color, alpha float64) {
	sx, sy := c.scale()
	x0 := int(math.Floor(r.X * sx))
	y0 := int(math.Floor(r.Y * sy))
	x1 := max(int(math.Ceil(r.Right()*sx)), x0+1)
	y1 := max(int(math.Ceil(r.Bottom()*sy)), y0+1)

	ch := shadeRune(alpha)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.screen.Set(x, y, ch, color)
		}
	}
}

// FillCircle draws a disc. Discs smaller than a cell collapse to one glyph.
func (c *Canvas) FillCircle(center Vec, radius float64, color Color, alpha float64) {
	sx, sy := c.scale()
	ch := dotRune(alpha)
	if radius*sx < 1 || radius*sy < 1 {
		x, y := c.CellOf(center)
		c.screen.Set(x, y, ch, color)
		return
	}

	b := CircleBounds(center, radius)
	x0, y0 := c.CellOf(Vec{X: b.X, Y: b.Y})
	x1, y1 := c.CellOf(Vec{X: b.Right(), Y: b.Bottom()})
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			// cell center back in world space
			wx := (float64(x) + 0.5) / sx
			wy := (float64(y) + 0.5) / sy
			if math.Hypot(wx-center.X, wy-center.Y) <= radius {
				c.screen.Set(x, y, ch, color)
			}
		}
	}
}

// Glyph places a single rune at the cell containing p.
func (c *Canvas) Glyph(p Vec, r rune, color Color) {
	x, y := c.CellOf(p)
	c.screen.Set(x, y, r, color)
}

// HLine draws a full-width horizontal line at world height y.
func (c *Canvas) HLine(y float64, r rune, color Color) {
	_, cy := c.CellOf(Vec{Y: y})
	c.screen.DrawHLine(0, cy, c.screen.Width(), r, color)
}

func shadeRune(alpha float64) rune {
	switch {
	case alpha >= 0.66:
		return '█'
	case alpha >= 0.33:
		return '▓'
	default:
		return '░'
	}
}

func dotRune(alpha float64) rune {
	switch {
	case alpha >= 0.66:
		return '●'
	case alpha >= 0.33:
		return '•'
	default:
		return '·'
	}
}
