// Package forest implements the Forest Journey brick breaker: a paddle-and-ball
// simulation with power-ups, laser bullets and cosmetic particles.
//
// The package owns all mutable game state. Rendering, audio and HUD text are
// reached through the Surface, AudioSink and UISink interfaces.
package forest

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/forest-journey/internal/config"
	"github.com/vovakirdan/forest-journey/internal/core"
)

// State is the top-level game phase.
type State string

const (
	StateStart    State = "start"     // Before the first game
	StatePlaying  State = "playing"   // Simulation running
	StateLevelWin State = "level_win" // All bricks cleared, waiting for NextLevel
	StateGameOver State = "game_over" // No lives left
)

// Option configures a Game.
type Option func(*Game)

// WithAudio routes cues to sink.
func WithAudio(sink AudioSink) Option {
	return func(g *Game) {
		if sink != nil {
			g.audio = sink
		}
	}
}

// WithUI routes HUD updates and announcements to sink.
func WithUI(sink UISink) Option {
	return func(g *Game) {
		if sink != nil {
			g.ui = sink
		}
	}
}

// WithLogger sets the logger used for pickups, transitions and UI faults.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// Game is the simulation context. It is not safe for concurrent use; the
// platform layer serializes Step and Draw.
type Game struct {
	cfg     config.ForestConfig
	scaling *config.LevelScaling
	runtime core.RuntimeConfig
	bounds  core.Bounds
	layout  Layout

	paddle    *Paddle
	balls     []*Ball
	bricks    []*Brick
	items     []*Item
	bullets   []*Bullet
	particles []*Particle
	effects   Effects

	score       int
	lives       int
	level       int
	state       State
	launchDelay int // Frames during which fire is ignored
	tickCount   uint64

	rng    *SimpleRNG
	audio  AudioSink
	ui     UISink
	logger *log.Logger
}

// New creates a game in the START state with a level-1 arena laid out so the
// title screen has something to draw.
func New(cfg config.ForestConfig, runtime core.RuntimeConfig, opts ...Option) *Game {
	g := &Game{
		cfg:     cfg,
		scaling: config.NewLevelScaling(cfg, runtime.Touch),
		runtime: runtime,
		bounds:  runtime.World,
		rng:     NewSimpleRNG(runtime.Seed),
		audio:   nopAudio{},
		ui:      nopUI{},
		logger:  log.New(io.Discard),
		level:   1,
		lives:   cfg.Gameplay.Lives,
		state:   StateStart,
	}
	for _, opt := range opts {
		opt(g)
	}

	g.resetLevel()
	return g
}

// StartNewGame resets score, lives and level and starts playing.
func (g *Game) StartNewGame() {
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.level = 1
	g.resetLevel()
	g.state = StatePlaying
	g.updateUI()
	g.audio.Play(CueStart)
	g.logger.Info("new game", "lives", g.lives)
}

// NextLevel advances the level counter and regenerates the arena.
func (g *Game) NextLevel() {
	g.level++
	g.resetLevel()
	g.state = StatePlaying
	g.updateUI()
	g.logger.Info("next level", "level", g.level, "rows", g.layout.Rows)
}

// resetLevel rebuilds paddle, balls and bricks for the current level and
// clears every transient collection and effect.
func (g *Game) resetLevel() {
	g.layout = ComputeLayout(g.cfg, g.scaling, g.bounds, g.level)

	pw := g.layout.PaddleW
	g.paddle = &Paddle{
		X:         (g.bounds.W - pw) / 2,
		Y:         g.bounds.H - g.cfg.Paddle.BottomOffset,
		BaseWidth: pw,
		Width:     pw,
		Height:    g.cfg.Paddle.Height,
		Speed:     g.scaling.PaddleSpeed(g.cfg.Paddle.Speed, g.level),
		Color:     core.Color(g.cfg.Paddle.Color),
	}

	ball := g.newBall()
	ball.Attached = true
	ball.FollowPaddle(g.paddle)
	g.balls = []*Ball{ball}

	g.bricks = BuildBricks(g.cfg.Bricks, g.layout)
	g.items = nil
	g.bullets = nil
	g.particles = nil
	g.effects = Effects{}
	g.launchDelay = 0
}

// newBall returns a ball with the level's speed, radius and color.
func (g *Game) newBall() *Ball {
	return &Ball{
		Speed:  g.layout.BallSpeed,
		Radius: g.cfg.Ball.Radius,
		Color:  core.Color(g.cfg.Ball.Color),
	}
}

// Step advances the simulation by one frame. It is a no-op unless the game is
// PLAYING. A consumed fire action is cleared from in.
func (g *Game) Step(in *core.InputFrame) {
	if g.state != StatePlaying {
		return
	}
	if in == nil {
		in = &core.InputFrame{}
	}
	g.tickCount++

	g.applyEffects()
	g.movePaddle(in)

	if g.launchDelay > 0 {
		g.launchDelay--
	}
	if g.launchDelay <= 0 && in.Fire {
		g.fire(in)
	}

	g.updateBullets()
	g.updateItems()
	g.updateBalls(in)
	g.updateParticles()
}

// applyEffects derives paddle width and fireball mode from the timers, then
// counts every running timer down by one.
func (g *Game) applyEffects() {
	if g.effects.PaddleExpand > 0 {
		g.paddle.Width = g.paddle.BaseWidth * g.cfg.Effects.ExpandFactor
	} else {
		g.paddle.Width = g.paddle.BaseWidth
	}

	fire := g.effects.FireBall > 0
	for _, b := range g.balls {
		b.IsFireball = fire
	}

	g.effects.tick()
}

// movePaddle applies keys and pointer delta, then clamps to the arena.
func (g *Game) movePaddle(in *core.InputFrame) {
	if in.Left {
		g.paddle.X -= g.paddle.Speed
	}
	if in.Right {
		g.paddle.X += g.paddle.Speed
	}
	if in.PointerDX != 0 {
		g.paddle.X += in.PointerDX * g.pointerSensitivity()
	}
	g.paddle.Clamp(g.bounds.W)
}

// pointerSensitivity scales pointer deltas on touch devices. A mouse cursor
// maps one to one.
func (g *Game) pointerSensitivity() float64 {
	if !g.runtime.Touch || g.cfg.Touch.Sensitivity <= 0 {
		return 1
	}
	return g.cfg.Touch.Sensitivity
}

// fire launches the attached ball, or shoots a bullet pair while the laser
// effect is running. The fire action is consumed only when one of them happens.
func (g *Game) fire(in *core.InputFrame) {
	for _, b := range g.balls {
		if !b.Attached {
			continue
		}
		in.ConsumeFire()
		spread := g.cfg.Ball.LaunchSpread
		b.Attached = false
		b.DX = g.rng.Range(-spread, spread)
		b.DY = -b.Speed
		g.audio.Play(CueHit)
		return
	}

	if g.effects.Laser > 0 {
		in.ConsumeFire()
		inset := g.cfg.Laser.EdgeInset
		g.bullets = append(g.bullets,
			g.newBullet(g.paddle.X+inset),
			g.newBullet(g.paddle.X+g.paddle.Width-inset),
		)
		g.audio.Play(CueShot)
	}
}

func (g *Game) newBullet(x float64) *Bullet {
	return &Bullet{
		X:      x,
		Y:      g.paddle.Y,
		SpeedY: -g.cfg.Laser.BulletSpeed,
		Radius: g.cfg.Laser.BulletRadius,
	}
}

// updateBullets moves bullets; each destroys at most one brick and is removed
// on a hit or once past the top edge.
func (g *Game) updateBullets() {
	for i := len(g.bullets) - 1; i >= 0; i-- {
		bl := g.bullets[i]
		bl.Update()

		hit := false
		if br := FindBulletHit(bl, g.bricks); br != nil {
			g.destroyBrick(br)
			hit = true
		}

		if hit || bl.Y < 0 {
			g.bullets = removeAt(g.bullets, i)
		}
	}
}

// updateItems moves pickups, applying those that touch the paddle and
// dropping those that fall out.
func (g *Game) updateItems() {
	for i := len(g.items) - 1; i >= 0; i-- {
		it := g.items[i]
		it.Update()

		switch {
		case g.paddle.overlapsBand(it.X, it.Y, it.Radius):
			g.logger.Debug("item picked up", "kind", it.Kind)
			g.items = removeAt(g.items, i)
			g.ApplyItem(it.Kind)
		case it.Y > g.bounds.H:
			g.items = removeAt(g.items, i)
		}
	}
}

// updateBalls integrates and collides every ball, then handles balls that
// fell past the bottom edge.
func (g *Game) updateBalls(in *core.InputFrame) {
	for i := len(g.balls) - 1; i >= 0; i-- {
		b := g.balls[i]

		if b.Attached {
			b.FollowPaddle(g.paddle)
			continue
		}

		b.Update()
		g.collide(b)

		if b.Y-b.Radius <= g.bounds.H {
			continue
		}

		switch {
		case g.effects.SafetyFloor > 0:
			b.DY = -b.DY
			b.Y = g.bounds.H - b.Radius
			g.effects.SafetyFloor = 0
			g.audio.Play(CuePaddle)
		case len(g.balls) > 1:
			g.balls = removeAt(g.balls, i)
		default:
			g.loseLife(b, in)
		}
	}
}

// collide runs walls, paddle and bricks for one ball, in that order.
func (g *Game) collide(b *Ball) {
	for range ResolveWalls(b, g.bounds) {
		g.audio.Play(CueHit)
	}

	if ResolvePaddle(b, g.paddle, g.cfg.Paddle.MaxBounceDX) {
		g.audio.Play(CuePaddle)
	}

	if br := FindBrickHit(b, g.bricks); br != nil {
		ResolveBrick(b, br)
		g.destroyBrick(br)
	}
}

// loseLife handles the last ball leaving the arena without a safety floor.
func (g *Game) loseLife(b *Ball, in *core.InputFrame) {
	if g.state != StatePlaying {
		return
	}

	g.lives--
	g.ui.SetLives(g.lives)
	g.audio.Play(CueExplode)

	if g.lives <= 0 {
		g.state = StateGameOver
		g.logger.Info("game over", "score", g.score, "level", g.level)
		return
	}

	b.Attached = true
	b.DX, b.DY = 0, 0
	b.FollowPaddle(g.paddle)
	in.Fire = false
	g.launchDelay = g.cfg.Gameplay.LaunchDelay
}

func (g *Game) updateParticles() {
	for i := len(g.particles) - 1; i >= 0; i-- {
		p := g.particles[i]
		p.Update()
		if p.Dead() {
			g.particles = removeAt(g.particles, i)
		}
	}
}

// destroyBrick deactivates an active brick, scores it and spawns its burst
// and possible drop. Inactive bricks are ignored.
func (g *Game) destroyBrick(br *Brick) {
	if !br.Active {
		return
	}
	br.Active = false
	g.score += br.Points
	g.ui.SetScore(g.score)
	g.audio.Play(CueHit)

	center := br.Center()
	g.burst(center, br.Color)

	if g.rng.Float64() < g.cfg.Items.DropChance {
		kind := ItemKind(g.rng.Intn(int(ItemKindCount)))
		g.items = append(g.items, &Item{
			X:      center.X,
			Y:      center.Y,
			Radius: g.cfg.Items.Radius,
			SpeedY: g.cfg.Items.FallSpeed,
			Kind:   kind,
		})
	}

	g.CheckWin()
}

// burst spawns the cosmetic particle explosion at p.
func (g *Game) burst(p core.Vec, color core.Color) {
	pc := g.cfg.Particles
	for range pc.Burst {
		g.particles = append(g.particles, &Particle{
			X:     p.X,
			Y:     p.Y,
			DX:    g.rng.Range(-pc.MaxSpeed, pc.MaxSpeed),
			DY:    g.rng.Range(-pc.MaxSpeed, pc.MaxSpeed),
			Size:  g.rng.Range(pc.MinSize, pc.MaxSize),
			Color: color,
			Life:  1,
			Decay: g.rng.Range(pc.MinDecay, pc.MaxDecay),
		})
	}
}

// CheckWin moves a PLAYING game to LEVEL_WIN once no active bricks remain.
// It reports whether the transition happened on this call; repeated calls
// after the win are no-ops.
func (g *Game) CheckWin() bool {
	if g.state != StatePlaying || CountActive(g.bricks) > 0 {
		return false
	}
	g.state = StateLevelWin
	g.audio.Play(CueWin)
	g.logger.Info("level cleared", "level", g.level, "score", g.score)
	return true
}

// ApplyItem applies the effect of a picked-up item. Kinds outside the
// enumeration fall back to EXPAND.
func (g *Game) ApplyItem(kind ItemKind) {
	if !kind.Valid() {
		g.logger.Warn("unknown item kind, using EXPAND", "kind", int(kind))
		kind = ItemExpand
	}

	g.audio.Play(CuePowerUp)
	g.announce(kind.SkillName())

	fx := g.cfg.Effects
	switch kind {
	case ItemExpand:
		g.effects.PaddleExpand = fx.ExpandFrames
		g.paddle.Width = g.paddle.BaseWidth * fx.ExpandFactor
		g.paddle.Clamp(g.bounds.W)
	case ItemSlow:
		for _, b := range g.balls {
			b.DX *= fx.SlowFactor
			b.DY *= fx.SlowFactor
			b.Speed *= fx.SlowFactor
		}
	case ItemMulti:
		g.spawnMulti()
	case ItemSafety:
		g.effects.SafetyFloor = fx.SafetyFrames
	case ItemFireball:
		g.effects.FireBall = fx.FireballFrames
	case ItemLaser:
		g.effects.Laser = fx.LaserFrames
	default:
		panic(fmt.Sprintf("forest: unhandled item kind %v", kind))
	}
}

// spawnMulti adds two launched balls cloned from the first ball, or from a
// paddle-centered default when no ball exists.
func (g *Game) spawnMulti() {
	var ref *Ball
	if len(g.balls) > 0 {
		ref = g.balls[0]
	} else {
		ref = g.newBall()
		ref.FollowPaddle(g.paddle)
	}

	spread := g.cfg.Ball.MultiSpread
	for range 2 {
		g.balls = append(g.balls, &Ball{
			X:          ref.X,
			Y:          ref.Y,
			DX:         g.rng.Range(-spread, spread),
			DY:         -ref.Speed,
			Speed:      ref.Speed,
			Radius:     ref.Radius,
			Color:      ref.Color,
			IsFireball: g.effects.FireBall > 0,
		})
	}
}

// announce forwards a skill name to the UI. Errors and panics from the sink
// are logged and swallowed so a HUD fault never stops the frame.
func (g *Game) announce(text string) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.Warn("skill announcement panicked", "text", text, "panic", r)
		}
	}()
	if err := g.ui.Announce(text); err != nil {
		g.logger.Warn("skill announcement failed", "text", text, "err", err)
	}
}

func (g *Game) updateUI() {
	g.ui.SetScore(g.score)
	g.ui.SetLevel(g.level)
	g.ui.SetLives(g.lives)
}

// SetBounds resizes the play area and re-clamps the paddle. The paddle keeps
// its distance from the floor.
func (g *Game) SetBounds(w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	g.bounds = core.Bounds{W: w, H: h}
	if g.paddle != nil {
		g.paddle.Y = h - g.cfg.Paddle.BottomOffset
		g.paddle.Clamp(w)
	}
}

// removeAt deletes s[i] preserving order.
func removeAt[T any](s []T, i int) []T {
	return append(s[:i], s[i+1:]...)
}

// Accessors

func (g *Game) State() State { return g.state }
func (g *Game) Score() int { return g.score }
func (g *Game) Lives() int { return g.lives }
func (g *Game) Level() int { return g.level }
func (g *Game) Tick() uint64 { return g.tickCount }
func (g *Game) Bounds() core.Bounds { return g.bounds }
func (g *Game) Layout() Layout { return g.layout }
func (g *Game) Effects() Effects { return g.effects }
func (g *Game) Paddle() *Paddle { return g.paddle }
func (g *Game) Balls() []*Ball { return g.balls }
func (g *Game) Bricks() []*Brick { return g.bricks }
func (g *Game) Items() []*Item { return g.items }
func (g *Game) Bullets() []*Bullet { return g.bullets }
func (g *Game) Particles() []*Particle { return g.particles }
func (g *Game) LaunchDelay() int { return g.launchDelay }
func (g *Game) Config() config.ForestConfig { return g.cfg }
