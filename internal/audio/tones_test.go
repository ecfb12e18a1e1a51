package audio

import (
	"io"
	"math"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/forest-journey/internal/config"
	"github.com/vovakirdan/forest-journey/internal/games/forest"
)

const testRate = beep.SampleRate(8000)

// drain streams s to completion and returns every left-channel sample.
func drain(t *testing.T, s beep.Streamer) []float64 {
	t.Helper()
	var out []float64
	buf := make([][2]float64, 256)
	for range 10000 {
		n, ok := s.Stream(buf)
		for i := range n {
			out = append(out, buf[i][0])
		}
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never drained")
	return nil
}

func TestEveryCueHasTones(t *testing.T) {
	cues := []forest.Cue{
		forest.CueHit, forest.CuePaddle, forest.CueExplode, forest.CuePowerUp,
		forest.CueShot, forest.CueWin, forest.CueStart,
	}
	for _, c := range cues {
		tones := TonesFor(c)
		require.NotEmpty(t, tones, "cue %s", c)
		for _, tone := range tones {
			assert.Greater(t, tone.Freq, 0.0)
			assert.Greater(t, tone.Duration, time.Duration(0))
			assert.Greater(t, tone.Volume, 0.0)
		}
	}
	assert.Empty(t, TonesFor(forest.Cue(99)))
}

func TestWinIsArpeggio(t *testing.T) {
	tones := TonesFor(forest.CueWin)
	require.Len(t, tones, 3)

	assert.Equal(t, []float64{440, 660, 880}, []float64{tones[0].Freq, tones[1].Freq, tones[2].Freq})
	assert.Equal(t, 100*time.Millisecond, tones[1].Delay)
	assert.Equal(t, 200*time.Millisecond, tones[2].Delay)
}

func TestRenderLength(t *testing.T) {
	hit := drain(t, Render(TonesFor(forest.CueHit), testRate, 1))
	assert.Len(t, hit, testRate.N(50*time.Millisecond))

	// Last note starts at 200ms and lasts 400ms
	win := drain(t, Render(TonesFor(forest.CueWin), testRate, 1))
	assert.Len(t, win, testRate.N(600*time.Millisecond))
}

func TestRenderAmplitude(t *testing.T) {
	tone := Tone{Freq: 440, Wave: WaveSquare, Duration: 100 * time.Millisecond, Volume: 0.2}
	samples := drain(t, Render([]Tone{tone}, testRate, 1))
	require.NotEmpty(t, samples)

	assert.InDelta(t, 0.2, math.Abs(samples[0]), 1e-9, "tone starts at full volume")
	for i, v := range samples {
		require.LessOrEqual(t, math.Abs(v), 0.2+1e-9, "sample %d", i)
	}
	tail := math.Abs(samples[len(samples)-1])
	assert.Less(t, tail, 0.02, "tone decays toward the floor")
}

func TestRenderMasterVolume(t *testing.T) {
	tone := []Tone{{Freq: 220, Wave: WaveSaw, Duration: 20 * time.Millisecond, Volume: 0.1}}

	full := drain(t, Render(tone, testRate, 1))
	half := drain(t, Render(tone, testRate, 0.5))
	mute := drain(t, Render(tone, testRate, 0))

	require.Equal(t, len(full), len(half))
	for i := range full {
		assert.InDelta(t, full[i]*0.5, half[i], 1e-9)
		assert.Zero(t, mute[i])
	}
}

func TestOscillatorWaves(t *testing.T) {
	square := drain(t, NewOscillator(100, 50*time.Millisecond, WaveSquare, testRate))
	for _, v := range square {
		require.True(t, v == 1 || v == -1, "square sample %v", v)
	}

	saw := drain(t, NewOscillator(100, 50*time.Millisecond, WaveSaw, testRate))
	for _, v := range saw {
		require.GreaterOrEqual(t, v, -1.0)
		require.Less(t, v, 1.0)
	}

	sine := drain(t, NewOscillator(100, 50*time.Millisecond, WaveSine, testRate))
	assert.Len(t, sine, testRate.N(50*time.Millisecond))

	// Above Nyquist renders silence of the same length
	silent := drain(t, NewOscillator(6000, 10*time.Millisecond, WaveSine, testRate))
	assert.Len(t, silent, testRate.N(10*time.Millisecond))
	for _, v := range silent {
		assert.Zero(t, v)
	}
}

func TestNewDisabledIsNop(t *testing.T) {
	cfg := config.DefaultConfig().Audio
	cfg.Enabled = false

	sink := New(cfg, log.New(io.Discard))

	assert.IsType(t, Nop{}, sink)
	assert.NotPanics(t, func() { sink.Play(forest.CueWin) })
	assert.NoError(t, sink.Close())
}
