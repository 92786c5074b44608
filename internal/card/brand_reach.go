package card

import (
	"fmt"
	"strings"

	"github.com/kapu/brandlens-go/internal/constants"
	"github.com/kapu/brandlens-go/internal/domain"
	"github.com/kapu/brandlens-go/internal/util"
)

// PersonaSink receives the persona record behind a selected row.
type PersonaSink func(domain.PersonaVisibility)

// TopicSink receives the topic record behind a selected row.
type TopicSink func(domain.TopicVisibility)

// BrandReachCard renders two ranked tables: visibility per persona and per
// topic. Rows keep input order; percentages are color-coded by the shared
// three-tier policy.
type BrandReachCard struct {
	personas []domain.PersonaVisibility
	topics   []domain.TopicVisibility

	personaSinks []PersonaSink
	topicSinks   []TopicSink
}

func NewBrandReachCard(personas []domain.PersonaVisibility, topics []domain.TopicVisibility) *BrandReachCard {
	return &BrandReachCard{
		personas: personas,
		topics:   topics,
	}
}

// OnPersona registers a sink invoked synchronously by SelectPersona.
func (c *BrandReachCard) OnPersona(sink PersonaSink) {
	if sink != nil {
		c.personaSinks = append(c.personaSinks, sink)
	}
}

// OnTopic registers a sink invoked synchronously by SelectTopic.
func (c *BrandReachCard) OnTopic(sink TopicSink) {
	if sink != nil {
		c.topicSinks = append(c.topicSinks, sink)
	}
}

// SelectPersona forwards the persona at index to every registered sink.
// Out-of-range selections are ignored.
func (c *BrandReachCard) SelectPersona(index int) bool {
	if index < 0 || index >= len(c.personas) {
		return false
	}
	for _, sink := range c.personaSinks {
		sink(c.personas[index])
	}
	return true
}

// SelectTopic forwards the topic at index to every registered sink.
func (c *BrandReachCard) SelectTopic(index int) bool {
	if index < 0 || index >= len(c.topics) {
		return false
	}
	for _, sink := range c.topicSinks {
		sink(c.topics[index])
	}
	return true
}

func (c *BrandReachCard) Render() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("📊 Brand Reach"))
	sb.WriteString("\n\n")

	sb.WriteString(sectionStyle.Render("Personas"))
	sb.WriteString("\n")
	if len(c.personas) == 0 {
		sb.WriteString(mutedStyle.Render("No persona data."))
		sb.WriteString("\n")
	} else {
		names := make([]string, len(c.personas))
		for i, p := range c.personas {
			names[i] = util.TruncateString(p.Name, constants.StringLimits.EntityName)
		}
		width := maxDisplayWidth(names)
		for i, p := range c.personas {
			pct := tierStyle(VisibilityTier(p.Visibility)).Render(formatPercent(p.Visibility))
			sb.WriteString(fmt.Sprintf("%2d. %s  %s\n", i+1, padRight(names[i], width), pct))
		}
	}

	sb.WriteString("\n")
	sb.WriteString(sectionStyle.Render("Topics"))
	sb.WriteString("\n")
	if len(c.topics) == 0 {
		sb.WriteString(mutedStyle.Render("No topic data."))
		sb.WriteString("\n")
	} else {
		names := make([]string, len(c.topics))
		for i, t := range c.topics {
			names[i] = util.TruncateString(t.Name, constants.StringLimits.EntityName)
		}
		width := maxDisplayWidth(names)
		for i, t := range c.topics {
			pct := tierStyle(VisibilityTier(t.Visibility)).Render(formatPercent(t.Visibility))
			sb.WriteString(fmt.Sprintf("%2d. %s  %s\n", i+1, padRight(names[i], width), pct))
		}
	}

	return strings.TrimSuffix(sb.String(), "\n")
}
