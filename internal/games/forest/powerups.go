package forest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/forest-journey/internal/core"
)

// ErrUnknownItemKind is returned by ParseItemKind for names outside the
// enumeration. The accompanying kind is always ItemExpand.
var ErrUnknownItemKind = errors.New("forest: unknown item kind")

// ItemKind represents the power-up carried by a falling item.
type ItemKind int

const (
	ItemExpand   ItemKind = iota // Widen paddle for a while
	ItemSlow                     // Permanently slow every ball
	ItemMulti                    // Two extra balls
	ItemSafety                   // One-shot floor bounce
	ItemFireball                 // Balls pass through bricks
	ItemLaser                    // Fire shoots bullets
	ItemKindCount                // Sentinel for counting kinds
)

// AllItemKinds lists every kind in declaration order.
func AllItemKinds() []ItemKind {
	return []ItemKind{ItemExpand, ItemSlow, ItemMulti, ItemSafety, ItemFireball, ItemLaser}
}

// String returns the canonical upper-case name of the kind.
func (k ItemKind) String() string {
	switch k {
	case ItemExpand:
		return "EXPAND"
	case ItemSlow:
		return "SLOW"
	case ItemMulti:
		return "MULTI"
	case ItemSafety:
		return "SAFETY"
	case ItemFireball:
		return "FIREBALL"
	case ItemLaser:
		return "LASER"
	default:
		return fmt.Sprintf("ItemKind(%d)", int(k))
	}
}

// Valid reports whether k is one of the six kinds.
func (k ItemKind) Valid() bool {
	return k >= ItemExpand && k < ItemKindCount
}

// Color returns the display color of the pickup.
func (k ItemKind) Color() core.Color {
	switch k {
	case ItemExpand:
		return core.ColorMoss
	case ItemSlow:
		return core.ColorMist
	case ItemMulti:
		return core.ColorBlossom
	case ItemSafety:
		return core.ColorPollen
	case ItemFireball:
		return core.ColorEmber
	case ItemLaser:
		return core.ColorLavender
	default:
		return core.ColorWhite
	}
}

// Glyph returns the single-cell label drawn on the pickup.
func (k ItemKind) Glyph() rune {
	switch k {
	case ItemExpand:
		return 'E'
	case ItemSlow:
		return 'S'
	case ItemMulti:
		return 'M'
	case ItemSafety:
		return 'F'
	case ItemFireball:
		return '*'
	case ItemLaser:
		return 'L'
	default:
		return '?'
	}
}

// SkillName returns the announcement text for the pickup.
func (k ItemKind) SkillName() string {
	switch k {
	case ItemExpand:
		return "Blessing of the Giant Spirit"
	case ItemSlow:
		return "Whisper of the Breeze"
	case ItemMulti:
		return "Song of the Magic Seed"
	case ItemSafety:
		return "Protection of the Earth"
	case ItemFireball:
		return "Calcifer's Flame"
	case ItemLaser:
		return "Projection of the Forest"
	default:
		return ""
	}
}

// ParseItemKind maps a name (case-insensitive) to its kind.
// Unknown names fall back to ItemExpand together with ErrUnknownItemKind.
func ParseItemKind(name string) (ItemKind, error) {
	for _, k := range AllItemKinds() {
		if strings.EqualFold(name, k.String()) {
			return k, nil
		}
	}
	return ItemExpand, fmt.Errorf("%w: %q", ErrUnknownItemKind, name)
}

// Effects holds the four countdown timers in frames remaining.
// Zero means inactive.
type Effects struct {
	PaddleExpand int
	SafetyFloor  int
	FireBall     int
	Laser        int
}

// tick decrements every positive timer by one.
func (e *Effects) tick() {
	e.PaddleExpand = countdown(e.PaddleExpand)
	e.SafetyFloor = countdown(e.SafetyFloor)
	e.FireBall = countdown(e.FireBall)
	e.Laser = countdown(e.Laser)
}

// Any reports whether any timer is running.
func (e Effects) Any() bool {
	return e.PaddleExpand > 0 || e.SafetyFloor > 0 || e.FireBall > 0 || e.Laser > 0
}

func countdown(v int) int {
	if v > 0 {
		return v - 1
	}
	return 0
}

// SimpleRNG is a deterministic pseudo-random number generator.
// Uses a 64-bit LCG so that snapshots can capture its full state.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n).
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	// high bits of an LCG are the well-mixed ones
	return int((r.Next() >> 33) % uint64(n)) //#nosec G115 -- n is always positive
}

// Float64 returns a random float64 in [0, 1).
func (r *SimpleRNG) Float64() float64 {
	return float64(r.Next()>>11) / float64(1<<53)
}

// Range returns a random float64 in [lo, hi).
func (r *SimpleRNG) Range(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
