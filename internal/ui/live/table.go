package live

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"carnival/internal/scoreboard"
)

// standingsColumns defines the team standings table.
func standingsColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 3},
		{Title: "Team", Width: 20},
		{Title: "Score", Width: 6},
		{Title: "", Width: 12},
	}
}

// standingsRows converts ranked teams into table rows.
func standingsRows(standings []scoreboard.Standing) []table.Row {
	rows := make([]table.Row, 0, len(standings))
	for _, standing := range standings {
		name := standing.Name
		if standing.Leading {
			name = "🏆 " + name
		}
		rows = append(rows, table.Row{
			strconv.Itoa(standing.Rank),
			name,
			strconv.Itoa(standing.Score),
			progressBar(standing.Bar, 12),
		})
	}
	return rows
}

// tableStyles configures table styling with optional color.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	styles.Selected = lipgloss.NewStyle()
	if noColor {
		styles.Header = lipgloss.NewStyle().Bold(true)
		styles.Cell = lipgloss.NewStyle()
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("214")).Bold(true)
	return styles
}
