package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/forest-journey/internal/config"
	"github.com/vovakirdan/forest-journey/internal/core"
	"github.com/vovakirdan/forest-journey/internal/games/forest"
	"github.com/vovakirdan/forest-journey/internal/storage"
)

// chromeRows are the terminal rows used by the status and help lines.
const chromeRows = 2

// minAnnounceRows is the smallest play area that still shows announcements.
const minAnnounceRows = 8

// Model is the Bubble Tea model running the forest game.
type Model struct {
	game       *forest.Game
	hud        *HUD
	screen     *core.Screen
	canvas     *core.Canvas
	scoreboard *Scoreboard
	render     config.RenderConfig
	tickRate   int
	logger     *log.Logger

	keys KeyMap
	help help.Model

	input    core.InputFrame
	hold     holdState
	mouseX   int
	hasMouse bool

	width, height int
	paused        bool
	quitting      bool
	scoreSaved    bool // Whether the current game over has been recorded
}

// Options holds what the model needs besides the game.
type Options struct {
	Game     *forest.Game
	HUD      *HUD
	Store    *storage.Store
	Render   config.RenderConfig
	TickRate int
	Width    int // Terminal columns
	Height   int // Terminal rows
	Logger   *log.Logger
}

// NewModel creates a model around an already constructed game. The game must
// have been built with opts.HUD as its UI sink.
func NewModel(opts Options) Model {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	cols, rows := max(opts.Width, 1), max(opts.Height-chromeRows, 1)
	screen := core.NewScreen(cols, rows)
	sb := NewScoreboard(opts.Store)

	m := Model{
		game:       opts.Game,
		hud:        opts.HUD,
		screen:     screen,
		canvas:     core.NewCanvas(screen, opts.Game.Bounds()),
		scoreboard: &sb,
		render:     opts.Render,
		tickRate:   opts.TickRate,
		logger:     opts.Logger,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		width:      cols,
		height:     opts.Height,
	}
	m.help.Width = cols
	m.hud.hidden = rows < minAnnounceRows
	return m
}

// WorldSize converts a terminal size into play-area world units.
func WorldSize(cols, rows int, render config.RenderConfig) core.Bounds {
	return core.Bounds{
		W: float64(max(cols, 1)) * render.CellWidth,
		H: float64(max(rows-chromeRows, 1)) * render.CellHeight,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case announceExpiredMsg:
		m.hud.expire(msg.id)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.game.State() {
	case forest.StateStart, forest.StateGameOver:
		if key.Matches(msg, m.keys.Start, m.keys.Fire) {
			m.startGame()
		}

	case forest.StateLevelWin:
		if key.Matches(msg, m.keys.Start, m.keys.Fire) {
			m.game.NextLevel()
			m.hold.release()
			m.input.Clear()
		}

	case forest.StatePlaying:
		switch {
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
			m.hold.release()
		case m.paused:
			// Ignore play keys while paused
		case key.Matches(msg, m.keys.Left):
			m.hold.press(true)
		case key.Matches(msg, m.keys.Right):
			m.hold.press(false)
		case key.Matches(msg, m.keys.Fire):
			m.input.Fire = true
		}
	}

	return m, nil
}

func (m *Model) startGame() {
	m.game.StartNewGame()
	m.scoreSaved = false
	m.paused = false
	m.hold.release()
	m.input.Clear()
}

// handleMouse turns horizontal pointer motion into a paddle delta.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionMotion && msg.Action != tea.MouseActionPress {
		return m, nil
	}
	if m.hasMouse && !m.paused {
		m.input.PointerDX += float64(msg.X-m.mouseX) * m.render.CellWidth
	}
	m.mouseX = msg.X
	m.hasMouse = true
	return m, nil
}

// handleResize resizes the screen and the play area. The game keeps running;
// only the paddle is re-clamped.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	cols, rows := max(msg.Width, 1), max(msg.Height-chromeRows, 1)
	m.width, m.height = cols, msg.Height
	m.screen.Resize(cols, rows)
	m.help.Width = cols
	m.hud.hidden = rows < minAnnounceRows

	world := WorldSize(msg.Width, msg.Height, m.render)
	m.game.SetBounds(world.W, world.H)
	m.canvas.SetWorld(m.game.Bounds())
	m.logger.Debug("resized", "cols", cols, "rows", rows, "world_w", world.W, "world_h", world.H)
	return m, nil
}

// handleTick advances the simulation by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{tickCmd(m.tickRate)}

	if m.game.State() == forest.StatePlaying && !m.paused {
		m.hold.apply(&m.input)
		m.game.Step(&m.input)
		// Fire is edge-triggered in a terminal
		m.input.Fire = false
		m.input.PointerDX = 0
	}

	if m.game.State() == forest.StateGameOver && !m.scoreSaved {
		if err := m.scoreboard.Record(m.game.Score(), m.game.Level()); err != nil {
			m.logger.Warn("cannot record score", "err", err)
		}
		m.scoreSaved = true
	}

	cmds = append(cmds, m.hud.expiryCmds()...)
	return m, tea.Batch(cmds...)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Draw(m.canvas)
	m.drawOverlay()

	body := RenderScreen(m.screen)
	if m.game.State() == forest.StateGameOver {
		body = m.gameOverView()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.hud.View(m.width),
		body,
		m.help.View(m.keys),
	)
}

// drawOverlay writes centered state text onto the screen.
func (m Model) drawOverlay() {
	mid := m.screen.Height() / 2
	switch m.game.State() {
	case forest.StateStart:
		m.screen.DrawTextCentered(mid-1, "FOREST JOURNEY", core.ColorPollen)
		m.screen.DrawTextCentered(mid+1, "press enter to begin", core.ColorFern)
	case forest.StateLevelWin:
		m.screen.DrawTextCentered(mid-1, "THE FOREST IS CLEAR", core.ColorPollen)
		m.screen.DrawTextCentered(mid+1, "press enter for the next level", core.ColorFern)
	case forest.StatePlaying:
		if m.paused {
			m.screen.DrawTextCentered(mid, "PAUSED", core.ColorMist)
		}
	}

	if text := m.hud.Announcement(); text != "" {
		m.screen.DrawTextCentered(mid+3, text, core.ColorEmber)
	}
}

// gameOverView renders the final score and the session table in place of the
// play area.
func (m Model) gameOverView() string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("GAME OVER"),
		announceStyle.Render(formatFinal(m.game.Score(), m.game.Level())),
		"",
		m.scoreboard.View(),
		"",
		dimStyle.Render("press enter to play again"),
	)
	return lipgloss.Place(m.screen.Width(), m.screen.Height(),
		lipgloss.Center, lipgloss.Center, overlayStyle.Render(content))
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer steering
	)

	start := time.Now()
	_, err := p.Run()
	opts.Logger.Info("session ended", "duration", time.Since(start).Round(time.Second))
	return err
}
