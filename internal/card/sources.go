package card

import (
	"fmt"
	"strings"

	"github.com/kapu/brandlens-go/internal/constants"
	"github.com/kapu/brandlens-go/internal/domain"
	"github.com/kapu/brandlens-go/internal/util"
)

// SourceSink receives the domain record behind a selected row.
type SourceSink func(domain.TopSource)

// SourceTypeSink receives the category record behind a selected row.
type SourceTypeSink func(domain.SourceType)

// SourcesCard renders two ranked tables: cited domains and content
// categories. Rows keep input order; every bar is proportional to the
// largest count within its own table.
type SourcesCard struct {
	sources []domain.TopSource
	types   []domain.SourceType

	sourceSinks []SourceSink
	typeSinks   []SourceTypeSink
}

func NewSourcesCard(sources []domain.TopSource, types []domain.SourceType) *SourcesCard {
	return &SourcesCard{
		sources: sources,
		types:   types,
	}
}

// OnSource registers a sink invoked synchronously by SelectSource.
func (c *SourcesCard) OnSource(sink SourceSink) {
	if sink != nil {
		c.sourceSinks = append(c.sourceSinks, sink)
	}
}

// OnType registers a sink invoked synchronously by SelectType.
func (c *SourcesCard) OnType(sink SourceTypeSink) {
	if sink != nil {
		c.typeSinks = append(c.typeSinks, sink)
	}
}

func (c *SourcesCard) SelectSource(index int) bool {
	if index < 0 || index >= len(c.sources) {
		return false
	}
	for _, sink := range c.sourceSinks {
		sink(c.sources[index])
	}
	return true
}

func (c *SourcesCard) SelectType(index int) bool {
	if index < 0 || index >= len(c.types) {
		return false
	}
	for _, sink := range c.typeSinks {
		sink(c.types[index])
	}
	return true
}

func (c *SourcesCard) Render() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("🔗 Sources"))
	sb.WriteString("\n\n")

	sb.WriteString(sectionStyle.Render("Top Domains"))
	sb.WriteString("\n")
	if len(c.sources) == 0 {
		sb.WriteString(mutedStyle.Render("No source data."))
		sb.WriteString("\n")
	} else {
		maxCount := 0
		labels := make([]string, len(c.sources))
		for i, s := range c.sources {
			if s.Count > maxCount {
				maxCount = s.Count
			}
			labels[i] = util.TruncateString(s.Domain, constants.StringLimits.SourceDomain)
		}
		width := maxDisplayWidth(labels)
		for i, s := range c.sources {
			bar := renderBar(util.BarWidth(s.Count, maxCount), barStyle)
			sb.WriteString(fmt.Sprintf("%s %s %s %d\n", DomainIcon(s.Domain), padRight(labels[i], width), bar, s.Count))
		}
	}

	sb.WriteString("\n")
	sb.WriteString(sectionStyle.Render("Source Types"))
	sb.WriteString("\n")
	if len(c.types) == 0 {
		sb.WriteString(mutedStyle.Render("No category data."))
		sb.WriteString("\n")
	} else {
		maxCount := 0
		labels := make([]string, len(c.types))
		for i, t := range c.types {
			if t.Count > maxCount {
				maxCount = t.Count
			}
			labels[i] = util.TruncateString(t.Category, constants.StringLimits.SourceDomain)
		}
		width := maxDisplayWidth(labels)
		for i, t := range c.types {
			bar := renderBar(util.BarWidth(t.Count, maxCount), barStyle)
			sb.WriteString(fmt.Sprintf("%s %s %s %d\n", CategoryIcon(t.Category), padRight(labels[i], width), bar, t.Count))
		}
	}

	return strings.TrimSuffix(sb.String(), "\n")
}
