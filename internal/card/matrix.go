package card

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kapu/brandlens-go/internal/constants"
	"github.com/kapu/brandlens-go/internal/domain"
	"github.com/kapu/brandlens-go/internal/util"
)

// CellSink receives the cell record behind a selected matrix cell.
type CellSink func(domain.MatrixCell)

// TopicVisibilityMatrix renders an N×M persona/topic grid. Scores come from
// a sparse flat cell list; each rendered cell does a linear scan over it,
// which is fine at report sizes. A missing (persona, topic) pair scores 0
// and renders as an em dash.
type TopicVisibilityMatrix struct {
	personas []string
	topics   []string
	cells    []domain.MatrixCell
	sinks    []CellSink
}

func NewTopicVisibilityMatrix(personas, topics []string, cells []domain.MatrixCell) *TopicVisibilityMatrix {
	return &TopicVisibilityMatrix{
		personas: personas,
		topics:   topics,
		cells:    cells,
	}
}

// ScoreAt returns the score for the grid position and whether a cell exists
// for it.
func (m *TopicVisibilityMatrix) ScoreAt(personaIdx, topicIdx int) (float64, bool) {
	if personaIdx < 0 || personaIdx >= len(m.personas) || topicIdx < 0 || topicIdx >= len(m.topics) {
		return 0, false
	}
	persona := m.personas[personaIdx]
	topic := m.topics[topicIdx]
	for _, cell := range m.cells {
		if cell.PersonaName == persona && cell.TopicName == topic {
			return cell.Score, true
		}
	}
	return 0, false
}

// CellText is the rendered cell content: the score, or "—" for a missing pair.
func (m *TopicVisibilityMatrix) CellText(personaIdx, topicIdx int) string {
	score, ok := m.ScoreAt(personaIdx, topicIdx)
	if !ok {
		return "—"
	}
	return formatScore(score)
}

// OnCell registers a sink invoked synchronously by SelectCell.
func (m *TopicVisibilityMatrix) OnCell(sink CellSink) {
	if sink != nil {
		m.sinks = append(m.sinks, sink)
	}
}

// SelectCell forwards the cell at the grid position to every sink. A missing
// pair forwards a zero-score cell carrying the persona and topic names.
func (m *TopicVisibilityMatrix) SelectCell(personaIdx, topicIdx int) bool {
	if personaIdx < 0 || personaIdx >= len(m.personas) || topicIdx < 0 || topicIdx >= len(m.topics) {
		return false
	}
	score, _ := m.ScoreAt(personaIdx, topicIdx)
	cell := domain.MatrixCell{
		PersonaName: m.personas[personaIdx],
		TopicName:   m.topics[topicIdx],
		Score:       score,
	}
	for _, sink := range m.sinks {
		sink(cell)
	}
	return true
}

func (m *TopicVisibilityMatrix) Render() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("🗺️ Topic Visibility Matrix"))
	sb.WriteString("\n\n")

	if len(m.personas) == 0 || len(m.topics) == 0 {
		sb.WriteString(mutedStyle.Render("No matrix data."))
		return sb.String()
	}

	rowLabels := make([]string, len(m.personas))
	for i, p := range m.personas {
		rowLabels[i] = util.TruncateString(p, constants.StringLimits.EntityName)
	}
	labelWidth := maxDisplayWidth(rowLabels)

	colLabels := make([]string, len(m.topics))
	colWidth := 5
	for i, t := range m.topics {
		colLabels[i] = util.TruncateString(t, 10)
		colWidth = util.Max(colWidth, lipgloss.Width(colLabels[i]))
	}

	// Header row
	sb.WriteString(padRight("", labelWidth))
	for _, label := range colLabels {
		sb.WriteString("  ")
		sb.WriteString(sectionStyle.Render(padRight(label, colWidth)))
	}
	sb.WriteString("\n")

	for pi := range m.personas {
		sb.WriteString(padRight(rowLabels[pi], labelWidth))
		for ti := range m.topics {
			score, ok := m.ScoreAt(pi, ti)
			text := "—"
			style := mutedStyle
			if ok {
				text = formatScore(score)
				style = matrixTierStyle(ScoreTier(score))
			}
			sb.WriteString("  ")
			sb.WriteString(style.Render(padRight(text, colWidth)))
		}
		sb.WriteString("\n")
	}

	return strings.TrimSuffix(sb.String(), "\n")
}
