package live

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// progressBar renders a fixed-width bar for a fraction in [0, 1].
func progressBar(fraction float64, width int) string {
	if width <= 0 {
		return ""
	}
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction*float64(width) + 0.5)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// joinGrid lays out cells in rows of the given column count.
func joinGrid(cells []string, columns int) string {
	if len(cells) == 0 || columns <= 0 {
		return ""
	}
	rows := make([]string, 0, (len(cells)+columns-1)/columns)
	for start := 0; start < len(cells); start += columns {
		end := min(start+columns, len(cells))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
