package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrNoAnnouncer is returned when there is no room to show an announcement.
var ErrNoAnnouncer = errors.New("tui: no announcement area")

// announceDuration is how long a skill name stays on screen.
const announceDuration = 1500 * time.Millisecond

// announceExpiredMsg clears the announcement it was scheduled for.
type announceExpiredMsg struct{ id int }

var (
	hudLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#91c18e")).Bold(true)
	hudValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#fdfd96"))
	hudLifeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff9b9b"))
	announceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff7f50")).Bold(true)
)

// HUD receives score, level, lives and skill announcements from the game.
// Announcements are cleared by a timer message, never by the simulation.
type HUD struct {
	score, level, lives int

	announcement string
	announceID   int
	pending      []int // Announcements waiting for an expiry timer
	hidden       bool  // Screen too small for the announcement row
}

// NewHUD creates an empty HUD.
func NewHUD() *HUD {
	return &HUD{level: 1}
}

func (h *HUD) SetScore(score int) { h.score = score }
func (h *HUD) SetLevel(level int) { h.level = level }
func (h *HUD) SetLives(lives int) { h.lives = lives }

// Announce shows text until its expiry timer fires.
func (h *HUD) Announce(text string) error {
	if h.hidden {
		return ErrNoAnnouncer
	}
	h.announceID++
	h.announcement = text
	h.pending = append(h.pending, h.announceID)
	return nil
}

// Announcement returns the text currently shown, if any.
func (h *HUD) Announcement() string {
	return h.announcement
}

// expiryCmds returns one timer per announcement made since the last call.
func (h *HUD) expiryCmds() []tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(h.pending))
	for _, id := range h.pending {
		cmds = append(cmds, tea.Tick(announceDuration, func(time.Time) tea.Msg {
			return announceExpiredMsg{id: id}
		}))
	}
	h.pending = h.pending[:0]
	return cmds
}

// expire clears the announcement if id is still the latest one.
func (h *HUD) expire(id int) {
	if id == h.announceID {
		h.announcement = ""
	}
}

// View renders the status line.
func (h *HUD) View(width int) string {
	hearts := hudLifeStyle.Render(strings.Repeat("♥ ", max(h.lives, 0)))
	line := fmt.Sprintf("%s %s   %s %s   %s %s",
		hudLabelStyle.Render("SCORE"), hudValueStyle.Render(fmt.Sprintf("%04d", h.score)),
		hudLabelStyle.Render("LEVEL"), hudValueStyle.Render(fmt.Sprintf("%d", h.level)),
		hudLabelStyle.Render("LIVES"), hearts,
	)
	return lipgloss.NewStyle().Width(width).Render(line)
}

// formatFinal renders the game-over summary line.
func formatFinal(score, level int) string {
	return fmt.Sprintf("score %d on level %d", score, level)
}
