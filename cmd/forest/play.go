package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/forest-journey/internal/audio"
	"github.com/vovakirdan/forest-journey/internal/core"
	"github.com/vovakirdan/forest-journey/internal/games/forest"
	"github.com/vovakirdan/forest-journey/internal/platform/tui"
	"github.com/vovakirdan/forest-journey/internal/storage"
)

var (
	flagTouch    bool
	flagMute     bool
	flagLogFile  string
	flagLogLevel string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Forest Journey",
	Long: `Start a game of Forest Journey.

Controls:
  ←/→ or A/D   - Move the paddle (mouse motion works too)
  Space/Up     - Launch the ball, or shoot while the laser is active
  Enter        - Start, continue to the next level, play again
  P/Esc        - Pause
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Scores are kept for this session only and shown on game over.

Examples:
  forest play
  forest play --difficulty easy
  forest play --touch
  forest play --mute --log-file forest.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagTouch, "touch", false, "Pointer play: slower ball, paddle and level growth")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
	playCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The terminal is taken over by the UI, so size it before starting
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	runtime := core.RuntimeConfig{
		World:    tui.WorldSize(width, height, cfg.Render),
		TickRate: flagFPS,
		Seed:     seed,
		Touch:    flagTouch,
	}

	if flagMute {
		cfg.Audio.Enabled = false
	}
	sink := audio.New(cfg.Audio, logger)
	defer func() {
		if err := sink.Close(); err != nil {
			logger.Warn("closing audio", "err", err)
		}
	}()

	store, err := storage.Open("")
	if err != nil {
		logger.Warn("could not open session scoreboard", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	hud := tui.NewHUD()
	game := forest.New(cfg, runtime,
		forest.WithAudio(sink),
		forest.WithUI(hud),
		forest.WithLogger(logger),
	)
	logger.Info("starting", "seed", seed, "fps", flagFPS, "world_w", runtime.World.W, "world_h", runtime.World.H)

	if err := tui.Run(tui.Options{
		Game:     game,
		HUD:      hud,
		Store:    store,
		Render:   cfg.Render,
		TickRate: flagFPS,
		Width:    width,
		Height:   height,
		Logger:   logger,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// newLogger builds the session logger. Without a log file all output is
// discarded, since stderr belongs to the terminal UI.
func newLogger(path, level string) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //#nosec G304 -- user-supplied log path
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "forest",
		Level:           lvl,
	})
	return logger, closeFn, nil
}
