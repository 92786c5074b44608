// Package card renders brand-visibility report cards for the terminal.
// Each card is a pure function of its input data plus optional selection
// sinks invoked synchronously when a row or cell is selected.
package card

import "github.com/charmbracelet/lipgloss"

// Tier color palette. The matrix greens match the two-step green used by the
// web report (green-500 / green-400).
var (
	GreenStrong = lipgloss.Color("#22c55e")
	Green       = lipgloss.Color("#4ade80")
	Yellow      = lipgloss.Color("#eab308")
	Orange      = lipgloss.Color("#f97316")
	Red         = lipgloss.Color("#ef4444")

	Muted  = lipgloss.Color("#6b7280")
	Accent = lipgloss.Color("#2196F3")
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(Accent)
	mutedStyle   = lipgloss.NewStyle().Foreground(Muted)
	badgeStyle   = lipgloss.NewStyle().Bold(true).Foreground(Accent)
	barStyle     = lipgloss.NewStyle().Foreground(Accent)
)

func tierStyle(t Tier) lipgloss.Style {
	switch t {
	case TierHigh:
		return lipgloss.NewStyle().Foreground(GreenStrong)
	case TierMedium:
		return lipgloss.NewStyle().Foreground(Yellow)
	default:
		return lipgloss.NewStyle().Foreground(Red)
	}
}

func matrixTierStyle(t MatrixTier) lipgloss.Style {
	switch t {
	case MatrixGreenStrong:
		return lipgloss.NewStyle().Foreground(GreenStrong)
	case MatrixGreen:
		return lipgloss.NewStyle().Foreground(Green)
	case MatrixYellow:
		return lipgloss.NewStyle().Foreground(Yellow)
	case MatrixOrange:
		return lipgloss.NewStyle().Foreground(Orange)
	default:
		return lipgloss.NewStyle().Foreground(Red)
	}
}
