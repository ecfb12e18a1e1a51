// Package audio synthesizes the short procedural tones played for game cues.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/forest-journey/internal/games/forest"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// decayFloor is the gain every tone ramps down to.
const decayFloor = 0.01

// Tone is a single note of a cue.
type Tone struct {
	Freq     float64
	Wave     Wave
	Duration time.Duration
	Volume   float64
	Delay    time.Duration // Offset from the start of the cue
}

// TonesFor returns the notes played for a cue.
func TonesFor(c forest.Cue) []Tone {
	switch c {
	case forest.CueHit:
		return []Tone{{Freq: 440, Wave: WaveSquare, Duration: 50 * time.Millisecond, Volume: 0.05}}
	case forest.CuePaddle:
		return []Tone{{Freq: 220, Wave: WaveSine, Duration: 100 * time.Millisecond, Volume: 0.1}}
	case forest.CueExplode:
		return []Tone{{Freq: 110, Wave: WaveSaw, Duration: 200 * time.Millisecond, Volume: 0.08}}
	case forest.CuePowerUp:
		return []Tone{{Freq: 523, Wave: WaveSine, Duration: 300 * time.Millisecond, Volume: 0.15}}
	case forest.CueShot:
		return []Tone{{Freq: 880, Wave: WaveSine, Duration: 50 * time.Millisecond, Volume: 0.05}}
	case forest.CueWin:
		return []Tone{
			{Freq: 440, Wave: WaveSine, Duration: 200 * time.Millisecond, Volume: 0.1},
			{Freq: 660, Wave: WaveSine, Duration: 200 * time.Millisecond, Volume: 0.1, Delay: 100 * time.Millisecond},
			{Freq: 880, Wave: WaveSine, Duration: 400 * time.Millisecond, Volume: 0.1, Delay: 200 * time.Millisecond},
		}
	case forest.CueStart:
		return []Tone{{Freq: 440, Wave: WaveSine, Duration: 500 * time.Millisecond, Volume: 0.1}}
	default:
		return nil
	}
}

// oscillator generates square and saw waves for a fixed number of samples.
type oscillator struct {
	freq     float64
	phase    float64
	position int
	duration int
	wave     Wave
	rate     beep.SampleRate
}

// NewOscillator creates a finite streamer of the given wave.
func NewOscillator(freq float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	n := rate.N(duration)
	if wave == WaveSine {
		if sine, err := generators.SineTone(rate, freq); err == nil {
			return beep.Take(n, sine)
		}
		// frequencies at or above Nyquist fall through to silence
		return beep.Silence(n)
	}
	return &oscillator{freq: freq, duration: n, wave: wave, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay applies an exponential gain ramp from volume down to decayFloor
// across the tone's duration.
type decay struct {
	streamer beep.Streamer
	position int
	total    int
	volume   float64
}

// NewDecay wraps s with the exponential fade.
func NewDecay(s beep.Streamer, duration time.Duration, volume float64, rate beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, total: max(rate.N(duration), 1), volume: volume}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := range n {
		gain := d.gain()
		samples[i][0] *= gain
		samples[i][1] *= gain
		d.position++
	}
	return n, ok
}

func (d *decay) gain() float64 {
	if d.volume <= decayFloor {
		return d.volume
	}
	t := min(float64(d.position)/float64(d.total), 1)
	return d.volume * math.Pow(decayFloor/d.volume, t)
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume scales s by a linear factor; zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Render builds the streamer for a set of tones, each delayed by its offset
// and mixed together, then scaled by master.
func Render(tones []Tone, rate beep.SampleRate, master float64) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		note := NewDecay(NewOscillator(t.Freq, t.Duration, t.Wave, rate), t.Duration, t.Volume, rate)
		if t.Delay > 0 {
			note = beep.Seq(beep.Silence(rate.N(t.Delay)), note)
		}
		parts = append(parts, note)
	}
	return newVolume(beep.Mix(parts...), master)
}
