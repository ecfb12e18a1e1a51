package forest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/forest-journey/internal/core"
)

func TestResolveWalls(t *testing.T) {
	bounds := core.Bounds{W: 800, H: 600}

	tests := []struct {
		name           string
		ball           Ball
		wantHits       int
		wantX, wantY   float64
		wantDX, wantDY float64
	}{
		{"left", Ball{X: 5, Y: 300, DX: -4, DY: 2, Radius: 9}, 1, 9, 300, 4, 2},
		{"right", Ball{X: 798, Y: 300, DX: 4, DY: 2, Radius: 9}, 1, 791, 300, -4, 2},
		{"top", Ball{X: 400, Y: 3, DX: 1, DY: -6, Radius: 9}, 1, 400, 9, 1, 6},
		{"corner", Ball{X: 2, Y: 2, DX: -1, DY: -1, Radius: 9}, 2, 9, 9, 1, 1},
		{"bottom is open", Ball{X: 400, Y: 700, DX: 1, DY: 6, Radius: 9}, 0, 400, 700, 1, 6},
		{"inside", Ball{X: 400, Y: 300, DX: 1, DY: 1, Radius: 9}, 0, 400, 300, 1, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := tc.ball
			hits := ResolveWalls(&b, bounds)

			assert.Equal(t, tc.wantHits, hits)
			assert.Equal(t, tc.wantX, b.X)
			assert.Equal(t, tc.wantY, b.Y)
			assert.Equal(t, tc.wantDX, b.DX)
			assert.Equal(t, tc.wantDY, b.DY)
		})
	}
}

func TestResolvePaddleHitOffset(t *testing.T) {
	paddle := &Paddle{X: 200, Y: 500, Width: 120, Height: 12}

	tests := []struct {
		name   string
		x      float64
		wantDX float64
	}{
		{"center", 260, 0},
		{"right edge", 320, 7},
		{"left edge", 200, -7},
		{"quarter right", 290, 3.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := &Ball{X: tc.x, Y: 495, DX: 2, DY: 7, Speed: 7, Radius: 9}

			require.True(t, ResolvePaddle(b, paddle, 7))
			assert.InDelta(t, tc.wantDX, b.DX, 1e-9)
			assert.Equal(t, -7.0, b.DY)
			assert.Equal(t, 491.0, b.Y)
		})
	}
}

func TestResolvePaddleAlwaysBouncesUp(t *testing.T) {
	paddle := &Paddle{X: 200, Y: 500, Width: 120, Height: 12}
	b := &Ball{X: 260, Y: 505, DY: -3, Speed: -7, Radius: 9}

	require.True(t, ResolvePaddle(b, paddle, 7))
	assert.Equal(t, -7.0, b.DY)
}

func TestResolvePaddleMiss(t *testing.T) {
	paddle := &Paddle{X: 200, Y: 500, Width: 120, Height: 12}

	misses := []*Ball{
		{X: 199, Y: 495, DY: 7, Speed: 7, Radius: 9}, // left of paddle
		{X: 321, Y: 495, DY: 7, Speed: 7, Radius: 9}, // right of paddle
		{X: 260, Y: 480, DY: 7, Speed: 7, Radius: 9}, // above the band
		{X: 260, Y: 530, DY: 7, Speed: 7, Radius: 9}, // below the band
	}
	for _, b := range misses {
		before := *b
		assert.False(t, ResolvePaddle(b, paddle, 7), "ball at (%v, %v)", b.X, b.Y)
		assert.Equal(t, before, *b)
	}
}

func TestResolveBrickAxis(t *testing.T) {
	brick := &Brick{X: 100, Y: 100, W: 80, H: 22, Active: true}

	t.Run("from below reflects y", func(t *testing.T) {
		b := &Ball{X: 140, Y: 123, DX: 2, DY: -7, Radius: 9}
		assert.Equal(t, AxisY, ResolveBrick(b, brick))
		assert.Equal(t, 2.0, b.DX)
		assert.Equal(t, 7.0, b.DY)
		assert.Equal(t, 131.0, b.Y)
	})

	t.Run("from above reflects y", func(t *testing.T) {
		b := &Ball{X: 140, Y: 95, DX: 2, DY: 7, Radius: 9}
		assert.Equal(t, AxisY, ResolveBrick(b, brick))
		assert.Equal(t, -7.0, b.DY)
		assert.Equal(t, 91.0, b.Y)
	})

	t.Run("from the left reflects x", func(t *testing.T) {
		b := &Ball{X: 93, Y: 111, DX: 5, DY: -1, Radius: 9}
		assert.Equal(t, AxisX, ResolveBrick(b, brick))
		assert.Equal(t, -5.0, b.DX)
		assert.Equal(t, -1.0, b.DY, "only one axis may reflect")
		assert.Equal(t, 91.0, b.X)
	})

	t.Run("from the right reflects x", func(t *testing.T) {
		b := &Ball{X: 186, Y: 111, DX: -5, DY: 1, Radius: 9}
		assert.Equal(t, AxisX, ResolveBrick(b, brick))
		assert.Equal(t, 5.0, b.DX)
		assert.Equal(t, 1.0, b.DY)
		assert.Equal(t, 189.0, b.X)
	})

	t.Run("fireball passes", func(t *testing.T) {
		b := &Ball{X: 140, Y: 123, DX: 2, DY: -7, Radius: 9, IsFireball: true}
		assert.Equal(t, AxisNone, ResolveBrick(b, brick))
		assert.Equal(t, Ball{X: 140, Y: 123, DX: 2, DY: -7, Radius: 9, IsFireball: true}, *b)
	})
}

func TestFindBrickHit(t *testing.T) {
	gone := &Brick{X: 100, Y: 100, W: 80, H: 22, Active: false}
	first := &Brick{X: 100, Y: 100, W: 80, H: 22, Active: true}
	second := &Brick{X: 100, Y: 100, W: 80, H: 22, Active: true}
	bricks := []*Brick{gone, first, second}

	b := &Ball{X: 140, Y: 123, Radius: 9}
	assert.Same(t, first, FindBrickHit(b, bricks))

	far := &Ball{X: 400, Y: 400, Radius: 9}
	assert.Nil(t, FindBrickHit(far, bricks))

	// Touching edges do not count
	edge := &Ball{X: 140, Y: 131, Radius: 9}
	assert.Nil(t, FindBrickHit(edge, bricks))
}

func TestFindBulletHit(t *testing.T) {
	brick := &Brick{X: 100, Y: 100, W: 80, H: 22, Active: true}
	bricks := []*Brick{brick}

	assert.Same(t, brick, FindBulletHit(&Bullet{X: 140, Y: 110}, bricks))
	assert.Nil(t, FindBulletHit(&Bullet{X: 100, Y: 110}, bricks), "left edge is exclusive")
	assert.Nil(t, FindBulletHit(&Bullet{X: 140, Y: 122}, bricks), "bottom edge is exclusive")

	brick.Active = false
	assert.Nil(t, FindBulletHit(&Bullet{X: 140, Y: 110}, bricks))
}

func TestAxisString(t *testing.T) {
	assert.Equal(t, "x", AxisX.String())
	assert.Equal(t, "y", AxisY.String())
	assert.Equal(t, "none", AxisNone.String())
}
