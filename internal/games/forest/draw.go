package forest

import "github.com/vovakirdan/forest-journey/internal/core"

// Surface is the drawing target. Coordinates are world units; the core never
// reads back from it.
type Surface interface {
	FillRect(r core.Rect, color core.Color, alpha float64)
	FillCircle(center core.Vec, radius float64, color core.Color, alpha float64)
	Glyph(p core.Vec, r rune, color core.Color)
	HLine(y float64, r rune, color core.Color)
}

// Glyphs for effect overlays.
const (
	SafetyRune  = '═'
	EmitterRune = '▲'
)

// Draw renders the arena back to front: safety line, bricks, items, bullets,
// particles, paddle, laser emitters, balls.
func (g *Game) Draw(s Surface) {
	if g.effects.SafetyFloor > 0 {
		s.HLine(g.bounds.H-2, SafetyRune, core.ColorMoss)
	}

	for _, br := range g.bricks {
		if br.Active {
			s.FillRect(br.Rect(), br.Color, 1)
		}
	}

	for _, it := range g.items {
		c := core.Vec{X: it.X, Y: it.Y}
		s.FillCircle(c, it.Radius, it.Kind.Color(), 1)
		s.Glyph(c, it.Kind.Glyph(), core.ColorWhite)
	}

	for _, bl := range g.bullets {
		s.FillCircle(bl.Pos(), bl.Radius, core.ColorLavender, 1)
	}

	for _, p := range g.particles {
		s.FillCircle(core.Vec{X: p.X, Y: p.Y}, p.Size/2, p.Color, p.Life)
	}

	s.FillRect(g.paddle.Rect(), g.paddle.Color, 1)

	if g.effects.Laser > 0 {
		inset := g.cfg.Laser.EdgeInset
		s.Glyph(core.Vec{X: g.paddle.X + inset, Y: g.paddle.Y - 1}, EmitterRune, core.ColorLavender)
		s.Glyph(core.Vec{X: g.paddle.X + g.paddle.Width - inset, Y: g.paddle.Y - 1}, EmitterRune, core.ColorLavender)
	}

	for _, b := range g.balls {
		color := b.Color
		if b.IsFireball {
			color = core.ColorFlame
		}
		s.FillCircle(b.Pos(), b.Radius, color, 1)
	}
}
