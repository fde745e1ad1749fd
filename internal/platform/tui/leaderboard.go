package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pothole-jumper/internal/storage"
)

const maxRuns = 10

// leaderboard shows the best runs of the current process.
type leaderboard struct {
	table  table.Model
	runs   []storage.RunEntry
	stats  *storage.SessionStats
	best   int // Best score of the highlighted player
	rank   int // Rank of that best score, 0 when unranked
	player string
	width  int
	height int
	err    error
}

func newLeaderboard(width, height int) leaderboard {
	lb := leaderboard{width: width, height: height}
	lb.table = lb.createTable()
	return lb
}

// createTable creates a new table with appropriate columns.
func (lb *leaderboard) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 16},
		{Title: "Score", Width: 8},
		{Title: "Ticks", Width: 8},
		{Title: "Time", Width: 8},
	}

	height := lb.height - 10 // Title, stats, borders and footer
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// resize rebuilds the table for a new terminal size.
func (lb *leaderboard) resize(width, height int) {
	lb.width = width
	lb.height = height
	lb.table = lb.createTable()
	lb.updateTableRows()
}

// refresh reloads the board from store and highlights player.
func (lb *leaderboard) refresh(store *storage.Store, player string) {
	lb.player = player
	lb.runs, lb.stats, lb.best, lb.rank, lb.err = nil, nil, 0, 0, nil
	if store == nil {
		lb.updateTableRows()
		return
	}

	if lb.runs, lb.err = store.TopRuns(maxRuns); lb.err == nil {
		lb.stats, lb.err = store.Stats()
	}
	if lb.err == nil && player != "" {
		if lb.best, lb.err = store.Best(player); lb.err == nil && lb.best > 0 {
			lb.rank, lb.err = store.Rank(lb.best)
		}
	}
	lb.updateTableRows()
}

// updateTableRows updates the table with the current runs.
func (lb *leaderboard) updateTableRows() {
	rows := make([]table.Row, len(lb.runs))
	for i, r := range lb.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			r.Nickname,
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Ticks),
			r.CreatedAt.Format("15:04:05"),
		}
	}
	lb.table.SetRows(rows)
	lb.table.GotoTop()
}

// view renders the board in exactly lb.height lines or fewer.
func (lb leaderboard) view() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(centerText("SESSION LEADERBOARD", lb.width)))
	b.WriteString("\n\n")

	switch {
	case lb.err != nil:
		b.WriteString(mutedStyle.Render(centerText("Leaderboard unavailable: "+lb.err.Error(), lb.width)))
	case len(lb.runs) == 0:
		b.WriteString(centerText(panelStyle.Render(
			mutedStyle.Render("No runs finished yet.\nJump some potholes to get on the board!"),
		), lb.width))
	default:
		b.WriteString(centerText(panelStyle.Render(lb.table.View()), lb.width))
	}
	b.WriteString("\n")

	if lb.stats != nil && lb.stats.Runs > 0 {
		line := fmt.Sprintf("Runs: %d  Players: %d  High: %d  Avg: %.1f",
			lb.stats.Runs, lb.stats.Players, lb.stats.HighScore, lb.stats.AvgScore)
		b.WriteString(footerStyle.Render(centerText(line, lb.width)))
		b.WriteString("\n")
	}
	if lb.best > 0 {
		line := fmt.Sprintf("%s best: %d (rank #%d)", lb.player, lb.best, lb.rank)
		b.WriteString(footerStyle.Render(centerText(line, lb.width)))
		b.WriteString("\n")
	}

	return b.String()
}
