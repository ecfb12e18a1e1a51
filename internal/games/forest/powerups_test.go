package forest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemKindsAreComplete(t *testing.T) {
	kinds := AllItemKinds()
	require.Len(t, kinds, int(ItemKindCount))

	names := make(map[string]bool)
	glyphs := make(map[rune]bool)
	for _, k := range kinds {
		assert.True(t, k.Valid(), "%v", k)
		assert.NotEmpty(t, k.SkillName(), "%v has no skill name", k)
		assert.True(t, k.Color().IsValid(), "%v has no color", k)
		assert.NotEqual(t, '?', k.Glyph(), "%v has no glyph", k)

		assert.False(t, names[k.String()], "duplicate name %s", k)
		assert.False(t, glyphs[k.Glyph()], "duplicate glyph for %s", k)
		names[k.String()] = true
		glyphs[k.Glyph()] = true
	}

	assert.False(t, ItemKind(-1).Valid())
	assert.False(t, ItemKindCount.Valid())
}

func TestApplyItemCoversEveryKind(t *testing.T) {
	for _, k := range AllItemKinds() {
		t.Run(k.String(), func(t *testing.T) {
			g := newTestGame(t)
			before := g.Snapshot()

			assert.NotPanics(t, func() { g.ApplyItem(k) })

			after := g.Snapshot()
			assert.NotEqual(t, before.Hash(), after.Hash(), "%s changed nothing", k)
		})
	}
}

func TestParseItemKind(t *testing.T) {
	for _, k := range AllItemKinds() {
		got, err := ParseItemKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := ParseItemKind("fireball")
	require.NoError(t, err)
	assert.Equal(t, ItemFireball, got)

	got, err = ParseItemKind("GHOST")
	require.ErrorIs(t, err, ErrUnknownItemKind)
	assert.Equal(t, ItemExpand, got)
}

func TestEffectsTick(t *testing.T) {
	fx := Effects{PaddleExpand: 2, SafetyFloor: 1, FireBall: 0, Laser: 3}
	assert.True(t, fx.Any())

	fx.tick()
	assert.Equal(t, Effects{PaddleExpand: 1, SafetyFloor: 0, FireBall: 0, Laser: 2}, fx)

	fx.tick()
	fx.tick()
	fx.tick()
	assert.Equal(t, Effects{}, fx)
	assert.False(t, fx.Any())
}

func TestSimpleRNG(t *testing.T) {
	a := NewSimpleRNG(99)
	b := NewSimpleRNG(99)
	for range 100 {
		require.Equal(t, a.Next(), b.Next())
	}

	r := NewSimpleRNG(0)
	counts := make([]int, 6)
	for range 6000 {
		v := r.Range(-3, 3)
		require.GreaterOrEqual(t, v, -3.0)
		require.Less(t, v, 3.0)

		f := r.Float64()
		require.GreaterOrEqual(t, f, 0.0)
		require.Less(t, f, 1.0)

		counts[r.Intn(6)]++
	}
	for i, c := range counts {
		assert.Greater(t, c, 700, "bucket %d underrepresented", i)
	}

	assert.Equal(t, 0, r.Intn(0))
}
