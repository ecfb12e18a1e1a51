package audio

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/forest-journey/internal/config"
	"github.com/vovakirdan/forest-journey/internal/games/forest"
)

// Player renders cues through the system speaker. Play never blocks on
// synthesis: tones are mixed on the speaker's own goroutine.
type Player struct {
	rate   beep.SampleRate
	master float64
	mixer  *beep.Mixer
	logger *log.Logger
}

// Nop is a sink that drops every cue.
type Nop struct{}

// Play implements forest.AudioSink.
func (Nop) Play(forest.Cue) {}

// Close implements io.Closer.
func (Nop) Close() error { return nil }

// Sink is a cue sink that owns an output device.
type Sink interface {
	forest.AudioSink
	Close() error
}

// New opens the speaker and returns a Player. When audio is disabled or no
// output device is available it logs the reason and returns Nop.
func New(cfg config.AudioConfig, logger *log.Logger) Sink {
	if !cfg.Enabled {
		logger.Debug("audio disabled")
		return Nop{}
	}

	p, err := open(cfg, logger)
	if err != nil {
		logger.Warn("audio unavailable, continuing muted", "err", err)
		return Nop{}
	}
	logger.Info("audio ready", "rate", cfg.SampleRate)
	return p
}

func open(cfg config.AudioConfig, logger *log.Logger) (*Player, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	if rate <= 0 {
		return nil, fmt.Errorf("audio: invalid sample rate %d", cfg.SampleRate)
	}
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: speaker init: %w", err)
	}

	p := &Player{
		rate:   rate,
		master: cfg.MasterVolume,
		mixer:  &beep.Mixer{},
		logger: logger,
	}
	speaker.Play(p.mixer)
	return p, nil
}

// Play queues the tones for c.
func (p *Player) Play(c forest.Cue) {
	tones := TonesFor(c)
	if len(tones) == 0 {
		p.logger.Debug("no tones for cue", "cue", c)
		return
	}
	s := Render(tones, p.rate, p.master)

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences pending tones and releases the device.
func (p *Player) Close() error {
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	return nil
}
