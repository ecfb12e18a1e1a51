package forest

import "github.com/vovakirdan/forest-journey/internal/core"

// Ball represents a ball in world units.
type Ball struct {
	X, Y       float64 // Center
	DX, DY     float64 // Velocity per frame
	Speed      float64 // Scalar launch/bounce speed
	Radius     float64
	Color      core.Color
	Attached   bool // Riding the paddle, not yet launched
	IsFireball bool // Passes through bricks without bouncing
}

// Pos returns the ball center.
func (b *Ball) Pos() core.Vec {
	return core.Vec{X: b.X, Y: b.Y}
}

// Update advances an unattached ball by its velocity.
func (b *Ball) Update() {
	b.X += b.DX
	b.Y += b.DY
}

// FollowPaddle centers an attached ball on top of the paddle.
func (b *Ball) FollowPaddle(p *Paddle) {
	b.X = p.X + p.Width/2
	b.Y = p.Y - b.Radius
}

// Brick is a destructible axis-aligned rectangle.
type Brick struct {
	X, Y, W, H float64
	Color      core.Color
	Points     int
	Active     bool
}

// Rect returns the brick rectangle.
func (b *Brick) Rect() core.Rect {
	return core.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Center returns the brick center.
func (b *Brick) Center() core.Vec {
	return b.Rect().Center()
}

// Item is a falling power-up pickup.
type Item struct {
	X, Y   float64
	Radius float64
	SpeedY float64
	Kind   ItemKind
}

// Update moves the item down.
func (it *Item) Update() {
	it.Y += it.SpeedY
}

// Bullet is a laser shot travelling upwards.
type Bullet struct {
	X, Y   float64
	SpeedY float64 // Negative: up
	Radius float64
}

// Update moves the bullet.
func (bl *Bullet) Update() {
	bl.Y += bl.SpeedY
}

// Pos returns the bullet position.
func (bl *Bullet) Pos() core.Vec {
	return core.Vec{X: bl.X, Y: bl.Y}
}

// Particle is a purely cosmetic spark. Life runs from 1 down to 0.
type Particle struct {
	X, Y   float64
	DX, DY float64
	Size   float64
	Color  core.Color
	Life   float64
	Decay  float64
}

// Update moves the particle and burns its life.
func (pt *Particle) Update() {
	pt.X += pt.DX
	pt.Y += pt.DY
	pt.Life -= pt.Decay
}

// Dead reports whether the particle has faded out.
func (pt *Particle) Dead() bool {
	return pt.Life <= 0
}

// Paddle represents the player's paddle.
type Paddle struct {
	X, Y      float64 // Top-left corner
	BaseWidth float64
	Width     float64 // Current width (expanded or base)
	Height    float64
	Speed     float64
	Color     core.Color
}

// Rect returns the paddle rectangle.
func (p *Paddle) Rect() core.Rect {
	return core.Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// CenterX returns the paddle center.
func (p *Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

// Clamp keeps the paddle within [0, width-p.Width].
func (p *Paddle) Clamp(width float64) {
	p.X = core.Clamp(p.X, 0, width-p.Width)
}

// overlapsBand reports whether a circle touches the paddle's vertical band and
// its center lies horizontally within the paddle (edges inclusive).
func (p *Paddle) overlapsBand(x, y, radius float64) bool {
	return y+radius > p.Y && y-radius < p.Y+p.Height &&
		x >= p.X && x <= p.X+p.Width
}
