package card

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kapu/brandlens-go/internal/util"
)

const barCells = 20

// formatScore prints a 0-100 value without trailing zeros: 55 -> "55",
// 55.5 -> "55.5".
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatPercent(v float64) string {
	return formatScore(v) + "%"
}

// renderBar draws a proportional bar for a width percentage (0-100) using
// barCells fixed terminal cells.
func renderBar(widthPct float64, style lipgloss.Style) string {
	filled := util.Min(barCells, util.Max(0, int(widthPct*barCells/100)))
	var sb strings.Builder
	sb.WriteString(style.Render(strings.Repeat("█", filled)))
	sb.WriteString(mutedStyle.Render(strings.Repeat("░", barCells-filled)))
	return sb.String()
}

// padRight pads a cell to width using lipgloss display width, so emoji and
// wide runes line up.
func padRight(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

func maxDisplayWidth(items []string) int {
	max := 0
	for _, item := range items {
		if w := lipgloss.Width(item); w > max {
			max = w
		}
	}
	return max
}
