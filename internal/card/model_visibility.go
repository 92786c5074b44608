package card

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kapu/brandlens-go/internal/constants"
	"github.com/kapu/brandlens-go/internal/domain"
	"github.com/kapu/brandlens-go/internal/util"
)

// ModelSink receives the model record behind a selected row.
type ModelSink func(domain.ModelVisibility)

// ModelVisibilityCard renders the ranked list of AI models with visibility
// bars, rank badges, and summary statistics (average and top model). The
// input is re-sorted descending by visibility before render; ties keep
// input order.
type ModelVisibilityCard struct {
	models []domain.ModelVisibility
	sinks  []ModelSink
}

func NewModelVisibilityCard(models []domain.ModelVisibility) *ModelVisibilityCard {
	sorted := make([]domain.ModelVisibility, len(models))
	copy(sorted, models)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Visibility > sorted[j].Visibility
	})
	return &ModelVisibilityCard{models: sorted}
}

// Models returns the rendered (descending) order.
func (c *ModelVisibilityCard) Models() []domain.ModelVisibility {
	return c.models
}

// Average is the mean visibility across models, rounded to one decimal.
func (c *ModelVisibilityCard) Average() float64 {
	if len(c.models) == 0 {
		return 0
	}
	sum := 0.0
	for _, m := range c.models {
		sum += m.Visibility
	}
	return util.Round1(sum / float64(len(c.models)))
}

// Top returns the highest-visibility model.
func (c *ModelVisibilityCard) Top() (domain.ModelVisibility, bool) {
	if len(c.models) == 0 {
		return domain.ModelVisibility{}, false
	}
	return c.models[0], true
}

// OnModel registers a sink invoked synchronously by SelectRow.
func (c *ModelVisibilityCard) OnModel(sink ModelSink) {
	if sink != nil {
		c.sinks = append(c.sinks, sink)
	}
}

// SelectRow forwards the model at the rendered index to every sink.
func (c *ModelVisibilityCard) SelectRow(index int) bool {
	if index < 0 || index >= len(c.models) {
		return false
	}
	for _, sink := range c.sinks {
		sink(c.models[index])
	}
	return true
}

func (c *ModelVisibilityCard) icon(m domain.ModelVisibility) string {
	if m.Logo != "" {
		return m.Logo
	}
	return ModelIcon(m.Name)
}

func (c *ModelVisibilityCard) Render() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("🤖 Model Visibility"))
	sb.WriteString("\n\n")

	if len(c.models) == 0 {
		sb.WriteString(mutedStyle.Render("No model data."))
		return sb.String()
	}

	names := make([]string, len(c.models))
	for i, m := range c.models {
		names[i] = util.TruncateString(m.Name, constants.StringLimits.EntityName)
	}
	width := maxDisplayWidth(names)

	for i, m := range c.models {
		tier := VisibilityTier(m.Visibility)
		bar := renderBar(m.Visibility, tierStyle(tier))
		pct := tierStyle(tier).Render(formatPercent(m.Visibility))
		badge := badgeStyle.Render(fmt.Sprintf("#%d", i+1))
		sb.WriteString(fmt.Sprintf("%s %s %s %s %s\n", badge, c.icon(m), padRight(names[i], width), bar, pct))
	}

	sb.WriteString("\n")
	avg := fmt.Sprintf("%.1f%%", c.Average())
	if top, ok := c.Top(); ok {
		sb.WriteString(mutedStyle.Render(fmt.Sprintf("Average %s · Top model: %s", avg, top.Name)))
	}

	return sb.String()
}
