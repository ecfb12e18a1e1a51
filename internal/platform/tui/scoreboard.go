package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/forest-journey/internal/storage"
)

// maxScores is how many session games the game-over table lists.
const maxScores = 5

var (
	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4b6f44")).
			Padding(1, 3).
			Align(lipgloss.Center)
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#fdfd96")).
			MarginBottom(1)
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
)

// Scoreboard is the session score table shown on game over.
type Scoreboard struct {
	store  *storage.Store
	scores []storage.ScoreEntry
	table  table.Model
}

// NewScoreboard creates a scoreboard backed by store. A nil store shows an
// empty table.
func NewScoreboard(store *storage.Store) Scoreboard {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Level", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(maxScores+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("#4b6f44")).
		Bold(false)
	t.SetStyles(s)

	return Scoreboard{store: store, table: t}
}

// Record saves a finished game and reloads the table, highlighting the new
// entry when it made the list.
func (sb *Scoreboard) Record(score, level int) error {
	if sb.store == nil {
		return nil
	}
	id, err := sb.store.SaveScore(score, level)
	if err != nil {
		return err
	}
	if err := sb.load(); err != nil {
		return err
	}

	for i, e := range sb.scores {
		if e.ID == id {
			sb.table.SetCursor(i)
			break
		}
	}
	return nil
}

// load refreshes the rows from the store.
func (sb *Scoreboard) load() error {
	scores, err := sb.store.TopScores(maxScores)
	if err != nil {
		return err
	}
	sb.scores = scores

	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Level),
		}
	}
	sb.table.SetRows(rows)
	sb.table.GotoTop()
	return nil
}

// Scores returns the loaded entries.
func (sb Scoreboard) Scores() []storage.ScoreEntry {
	return sb.scores
}

// View renders the table or an empty message.
func (sb Scoreboard) View() string {
	if len(sb.scores) == 0 {
		return dimStyle.Render("No scores recorded this session.")
	}
	return sb.table.View()
}
