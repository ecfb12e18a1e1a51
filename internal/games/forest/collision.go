package forest

import (
	"math"

	"github.com/vovakirdan/forest-journey/internal/core"
)

// Axis identifies the axis a brick contact was resolved along.
type Axis int

const (
	AxisNone Axis = iota // No bounce (fireball)
	AxisX
	AxisY
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "none"
	}
}

// ResolveWalls reflects the ball off the left, right and top walls and clamps
// it back inside. The bottom edge is open: falling out is handled by the
// simulation step. Returns the number of walls hit, so a corner counts twice.
func ResolveWalls(b *Ball, bounds core.Bounds) int {
	hits := 0

	if b.X-b.Radius < 0 {
		b.X = b.Radius
		b.DX = -b.DX
		hits++
	} else if b.X+b.Radius > bounds.W {
		b.X = bounds.W - b.Radius
		b.DX = -b.DX
		hits++
	}

	if b.Y-b.Radius < 0 {
		b.Y = b.Radius
		b.DY = -b.DY
		hits++
	}

	return hits
}

// ResolvePaddle bounces the ball off the paddle when the ball's vertical span
// overlaps the paddle band and its center is within the paddle's width.
//
// The outgoing dx maps the hit offset linearly from [-1, +1] half-widths to
// [-maxDX, +maxDX]; dy is always -|speed|. The ball is snapped onto the paddle
// surface. Returns true on contact.
func ResolvePaddle(b *Ball, p *Paddle, maxDX float64) bool {
	if !p.overlapsBand(b.X, b.Y, b.Radius) {
		return false
	}

	hitPos := 0.0
	if half := p.Width / 2; half > 0 {
		hitPos = (b.X - p.CenterX()) / half
	}
	b.DX = hitPos * maxDX
	b.DY = -math.Abs(b.Speed)
	b.Y = p.Y - b.Radius
	return true
}

// FindBrickHit returns the first active brick whose rectangle overlaps the
// ball's bounding box, or nil.
func FindBrickHit(b *Ball, bricks []*Brick) *Brick {
	box := core.CircleBounds(b.Pos(), b.Radius)
	for _, br := range bricks {
		if !br.Active {
			continue
		}
		if box.Intersects(br.Rect()) {
			return br
		}
	}
	return nil
}

// ResolveBrick applies minimum-penetration-axis response for a ball touching
// brick: velocity is reflected only along the axis with the smaller overlap
// and the ball is pushed out by that overlap. Ties resolve along Y.
// Fireballs pass through untouched and report AxisNone.
func ResolveBrick(b *Ball, brick *Brick) Axis {
	if b.IsFireball {
		return AxisNone
	}

	center := brick.Center()
	overlapX, overlapY := brick.Rect().Overlap(b.Pos(), b.Radius)

	if overlapX < overlapY {
		b.DX = -b.DX
		if b.X < center.X {
			b.X -= overlapX
		} else {
			b.X += overlapX
		}
		return AxisX
	}

	b.DY = -b.DY
	if b.Y < center.Y {
		b.Y -= overlapY
	} else {
		b.Y += overlapY
	}
	return AxisY
}

// FindBulletHit returns the first active brick strictly containing the bullet
// position, or nil.
func FindBulletHit(bl *Bullet, bricks []*Brick) *Brick {
	p := bl.Pos()
	for _, br := range bricks {
		if br.Active && br.Rect().ContainsStrict(p) {
			return br
		}
	}
	return nil
}
