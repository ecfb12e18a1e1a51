package forest

import "math"

// Snapshot captures the simulation state for determinism checks and the
// game-over summary. Floats are stored as-is; Hash compares their bits.
type Snapshot struct {
	Tick        uint64
	State       State
	Score       int
	Lives       int
	Level       int
	LaunchDelay int

	PaddleX     float64
	PaddleWidth float64

	// Each ball is 6 floats: X, Y, DX, DY, Speed, Attached (0/1)
	BallData []float64

	// One flag per brick in grid order
	BrickActive     []bool
	BricksRemaining int

	// Each item is 3 floats: Kind, X, Y
	ItemData []float64

	// Each bullet is 2 floats: X, Y
	BulletData []float64

	ParticleCount int
	Effects       Effects

	RNGState uint64
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	ballData := make([]float64, 0, len(g.balls)*6)
	for _, b := range g.balls {
		attached := 0.0
		if b.Attached {
			attached = 1
		}
		ballData = append(ballData, b.X, b.Y, b.DX, b.DY, b.Speed, attached)
	}

	active := make([]bool, len(g.bricks))
	for i, br := range g.bricks {
		active[i] = br.Active
	}

	itemData := make([]float64, 0, len(g.items)*3)
	for _, it := range g.items {
		itemData = append(itemData, float64(it.Kind), it.X, it.Y)
	}

	bulletData := make([]float64, 0, len(g.bullets)*2)
	for _, bl := range g.bullets {
		bulletData = append(bulletData, bl.X, bl.Y)
	}

	return Snapshot{
		Tick:            g.tickCount,
		State:           g.state,
		Score:           g.score,
		Lives:           g.lives,
		Level:           g.level,
		LaunchDelay:     g.launchDelay,
		PaddleX:         g.paddle.X,
		PaddleWidth:     g.paddle.Width,
		BallData:        ballData,
		BrickActive:     active,
		BricksRemaining: CountActive(g.bricks),
		ItemData:        itemData,
		BulletData:      bulletData,
		ParticleCount:   len(g.particles),
		Effects:         g.effects,
		RNGState:        g.rng.state,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Score)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LaunchDelay)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ParticleCount) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.PaddleWidth)

	for _, v := range snap.BallData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.ItemData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.BulletData {
		h = h*31 + math.Float64bits(v)
	}
	for _, a := range snap.BrickActive {
		if a {
			h = h*31 + 1
		} else {
			h = h * 31
		}
	}

	fx := snap.Effects
	for _, v := range []int{fx.PaddleExpand, fx.SafetyFloor, fx.FireBall, fx.Laser} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h*31 + snap.RNGState
}
