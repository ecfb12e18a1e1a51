package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/forest-journey/internal/config"
	"github.com/vovakirdan/forest-journey/internal/core"
	"github.com/vovakirdan/forest-journey/internal/games/forest"
	"github.com/vovakirdan/forest-journey/internal/storage"
)

const (
	testCols = 100
	testRows = 39
)

func newTestModel(t *testing.T, cfg config.ForestConfig) Model {
	t.Helper()

	store, err := storage.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	logger := log.New(&strings.Builder{})
	hud := NewHUD()
	runtime := core.RuntimeConfig{
		World:    WorldSize(testCols, testRows, cfg.Render),
		TickRate: 60,
		Seed:     7,
	}
	game := forest.New(cfg, runtime, forest.WithUI(hud), forest.WithLogger(logger))

	return NewModel(Options{
		Game:     game,
		HUD:      hud,
		Store:    store,
		Render:   cfg.Render,
		TickRate: 60,
		Width:    testCols,
		Height:   testRows,
		Logger:   logger,
	})
}

func send(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyPause = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}
	keyQuit  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
)

func TestWorldSize(t *testing.T) {
	render := config.RenderConfig{CellWidth: 8, CellHeight: 16}
	assert.Equal(t, core.Bounds{W: 800, H: 592}, WorldSize(100, 39, render))
	// Never collapses to zero
	assert.Equal(t, core.Bounds{W: 8, H: 16}, WorldSize(0, 1, render))
}

func TestEnterStartsGame(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig())
	assert.Equal(t, forest.StateStart, m.game.State())

	m = send(m, keyEnter)
	assert.Equal(t, forest.StatePlaying, m.game.State())
	assert.Equal(t, 3, m.hud.lives)
}

func TestTickStepsOnlyWhilePlaying(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig())

	m = send(m, TickMsg{})
	assert.Equal(t, uint64(0), m.game.Tick(), "title screen must not advance")

	m = send(m, keyEnter)
	m = send(m, TickMsg{})
	m = send(m, TickMsg{})
	assert.Equal(t, uint64(2), m.game.Tick())
}

func TestPauseFreezesSimulation(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig())
	m = send(m, keyEnter)
	m = send(m, keyPause)
	require.True(t, m.paused)

	m = send(m, TickMsg{})
	assert.Equal(t, uint64(0), m.game.Tick())
	assert.Contains(t, m.View(), "PAUSED")

	m = send(m, keyPause)
	m = send(m, TickMsg{})
	assert.Equal(t, uint64(1), m.game.Tick())
}

func TestFireLaunchesBall(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig())
	m = send(m, keyEnter)
	require.True(t, m.game.Balls()[0].Attached)

	m = send(m, keySpace)
	m = send(m, TickMsg{})
	assert.False(t, m.game.Balls()[0].Attached)
	assert.False(t, m.input.Fire, "fire is cleared after each frame")
}

func TestHeldKeyMovesPaddle(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig())
	m = send(m, keyEnter)
	start := m.game.Paddle().X

	m = send(m, keyRight)
	for range holdFrames + 5 {
		m = send(m, TickMsg{})
	}
	moved := m.game.Paddle().X - start
	speed := m.game.Config().Paddle.Speed
	assert.InDelta(t, speed*holdFrames, moved, 1e-9, "hold expires without repeats")

	m = send(m, keyLeft)
	m = send(m, TickMsg{})
	assert.InDelta(t, start+moved-speed, m.game.Paddle().X, 1e-9)
}

func TestMouseMotionSteersPaddle(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig())
	m = send(m, keyEnter)
	start := m.game.Paddle().X

	m = send(m, tea.MouseMsg{X: 40, Action: tea.MouseActionMotion})
	m = send(m, tea.MouseMsg{X: 42, Action: tea.MouseActionMotion})
	require.InDelta(t, 16, m.input.PointerDX, 1e-9, "two cells of motion")

	m = send(m, TickMsg{})
	assert.InDelta(t, start+16, m.game.Paddle().X, 1e-9, "mouse motion maps one to one")
	assert.Zero(t, m.input.PointerDX)
}

func TestResizeUpdatesWorld(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig())
	m = send(m, tea.WindowSizeMsg{Width: 60, Height: 30})

	assert.Equal(t, core.Bounds{W: 480, H: 448}, m.game.Bounds())
	assert.Equal(t, 60, m.screen.Width())
	assert.Equal(t, 28, m.screen.Height())
	assert.False(t, m.hud.hidden)

	m = send(m, tea.WindowSizeMsg{Width: 60, Height: 6})
	assert.True(t, m.hud.hidden)
	assert.ErrorIs(t, m.hud.Announce("Song of Growth"), ErrNoAnnouncer)
}

func TestGameOverRecordsScoreOnce(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Gameplay.Lives = 1
	cfg.Items.DropChance = 0
	cfg.Paddle.WidthRatio = 0.02

	m := newTestModel(t, cfg)
	m = send(m, keyEnter)
	m = send(m, keySpace)

	// Park the paddle against the right wall until the ball is lost
	for i := 0; i < 50000 && m.game.State() == forest.StatePlaying; i++ {
		if i%holdFrames == 0 {
			m = send(m, keyRight)
		}
		m = send(m, TickMsg{})
	}
	require.Equal(t, forest.StateGameOver, m.game.State())
	require.True(t, m.scoreSaved)

	m = send(m, TickMsg{})
	require.Len(t, m.scoreboard.Scores(), 1)
	assert.Equal(t, m.game.Score(), m.scoreboard.Scores()[0].Score)

	view := m.View()
	assert.Contains(t, view, "GAME OVER")
	assert.Contains(t, view, "#1")

	m = send(m, keyEnter)
	assert.Equal(t, forest.StatePlaying, m.game.State())
	assert.False(t, m.scoreSaved)
}

func TestStartScreenView(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig())
	view := m.View()
	assert.Contains(t, view, "FOREST JOURNEY")
	assert.Contains(t, view, "SCORE")
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig())
	next, cmd := m.Update(keyQuit)
	require.NotNil(t, cmd)
	assert.Equal(t, "", next.View())
}
