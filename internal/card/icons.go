package card

import (
	"strings"

	"github.com/kapu/brandlens-go/internal/util"
)

type iconRule struct {
	keyword string
	icon    string
}

// Ordered keyword tables for icon lookup. Matching is a case-insensitive
// substring check, first match wins, so more specific keywords come first.
var domainIcons = []iconRule{
	{"youtube", "▶️"},
	{"reddit", "👽"},
	{"wikipedia", "📚"},
	{"linkedin", "💼"},
	{"github", "🐙"},
	{"twitter", "🐦"},
	{"x.com", "🐦"},
	{"medium", "✍️"},
	{"quora", "❓"},
	{"news", "📰"},
	{"blog", "📝"},
}

var categoryIcons = []iconRule{
	{"news", "📰"},
	{"blog", "📝"},
	{"forum", "💬"},
	{"social", "👥"},
	{"review", "⭐"},
	{"documentation", "📖"},
	{"docs", "📖"},
	{"video", "🎬"},
	{"academic", "🎓"},
}

var modelIcons = []iconRule{
	{"gpt", "🟢"},
	{"openai", "🟢"},
	{"claude", "🟠"},
	{"gemini", "🔵"},
	{"llama", "🟣"},
	{"mistral", "🟡"},
	{"perplexity", "🔍"},
	{"grok", "⚡"},
	{"deepseek", "🐳"},
}

const (
	genericDomainIcon   = "🌐"
	genericCategoryIcon = "📄"
	genericModelIcon    = "🤖"
)

func lookupIcon(name string, rules []iconRule, fallback string) string {
	normalized := util.Normalize(name)
	if normalized == "" {
		return fallback
	}
	for _, rule := range rules {
		if strings.Contains(normalized, rule.keyword) {
			return rule.icon
		}
	}
	return fallback
}

// DomainIcon selects a display icon for a cited domain.
func DomainIcon(domain string) string {
	return lookupIcon(domain, domainIcons, genericDomainIcon)
}

// CategoryIcon selects a display icon for a source category.
func CategoryIcon(category string) string {
	return lookupIcon(category, categoryIcons, genericCategoryIcon)
}

// ModelIcon selects a display icon for an AI model name.
func ModelIcon(name string) string {
	return lookupIcon(name, modelIcons, genericModelIcon)
}
