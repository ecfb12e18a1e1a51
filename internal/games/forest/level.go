package forest

import (
	"github.com/vovakirdan/forest-journey/internal/config"
	"github.com/vovakirdan/forest-journey/internal/core"
)

// Layout describes the arena generated for one level.
type Layout struct {
	Level     int
	SpeedMul  float64 // Ball speed multiplier
	SizeMul   float64 // Paddle/brick size multiplier
	Rows      int
	Cols      int
	BrickW    float64
	BrickH    float64
	PaddleW   float64
	BallSpeed float64
}

// ComputeLayout derives the level's arena dimensions from config and bounds.
func ComputeLayout(cfg config.ForestConfig, scaling *config.LevelScaling, bounds core.Bounds, level int) Layout {
	b := cfg.Bricks
	cols := max(b.Columns, 1)
	speedMul := scaling.SpeedScale(level)
	sizeMul := scaling.SizeScale(level)

	brickW := (bounds.W - b.OffsetLeft*2 - b.Padding*float64(cols-1)) / float64(cols)
	if brickW < 1 {
		brickW = 1
	}

	return Layout{
		Level:     level,
		SpeedMul:  speedMul,
		SizeMul:   sizeMul,
		Rows:      config.Rows(b, level),
		Cols:      cols,
		BrickW:    brickW,
		BrickH:    b.Height * sizeMul,
		PaddleW:   bounds.W * cfg.Paddle.WidthRatio * sizeMul,
		BallSpeed: cfg.Ball.Speed * speedMul,
	}
}

// BuildBricks creates the full active grid for a layout. Rows are colored
// cyclically from the palette and upper rows are worth more.
func BuildBricks(cfg config.BrickConfig, l Layout) []*Brick {
	colors := cfg.Colors
	if len(colors) == 0 {
		colors = []string{string(core.ColorWhite)}
	}

	bricks := make([]*Brick, 0, l.Rows*l.Cols)
	for r := range l.Rows {
		for c := range l.Cols {
			bricks = append(bricks, &Brick{
				X:      float64(c)*(l.BrickW+cfg.Padding) + cfg.OffsetLeft,
				Y:      float64(r)*(l.BrickH+cfg.Padding) + cfg.OffsetTop,
				W:      l.BrickW,
				H:      l.BrickH,
				Color:  core.Color(colors[r%len(colors)]),
				Points: (l.Rows - r) * cfg.RowPoints,
				Active: true,
			})
		}
	}
	return bricks
}

// CountActive returns the number of bricks still standing.
func CountActive(bricks []*Brick) int {
	n := 0
	for _, b := range bricks {
		if b.Active {
			n++
		}
	}
	return n
}
