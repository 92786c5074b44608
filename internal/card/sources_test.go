package card

import (
	"testing"

	"github.com/kapu/brandlens-go/internal/domain"
	"github.com/kapu/brandlens-go/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBarWidthProportions(t *testing.T) {
	sources := []domain.TopSource{
		{Domain: "reddit.com", Count: 40},
		{Domain: "github.com", Count: 20},
		{Domain: "medium.com", Count: 10},
	}

	max := 0
	for _, s := range sources {
		if s.Count > max {
			max = s.Count
		}
	}

	assert.Equal(t, 100.0, util.BarWidth(sources[0].Count, max))
	assert.Equal(t, 50.0, util.BarWidth(sources[1].Count, max))
	assert.Equal(t, 25.0, util.BarWidth(sources[2].Count, max))
}

func TestBarWidthZeroMax(t *testing.T) {
	assert.Equal(t, 0.0, util.BarWidth(5, 0))
}

func TestDomainIconFirstMatchWins(t *testing.T) {
	// "youtube-news.com" matches both "youtube" and "news"; "youtube" is
	// checked first.
	assert.Equal(t, DomainIcon("youtube-news.com"), DomainIcon("youtube.com"))
	assert.NotEqual(t, DomainIcon("youtube-news.com"), DomainIcon("cnn-news.com"))
}

func TestDomainIconCaseInsensitive(t *testing.T) {
	assert.Equal(t, DomainIcon("reddit.com"), DomainIcon("REDDIT.com"))
	assert.Equal(t, DomainIcon("github.com"), DomainIcon("GitHub.com"))
}

func TestDomainIconFallback(t *testing.T) {
	assert.Equal(t, genericDomainIcon, DomainIcon("example.org"))
	assert.Equal(t, genericDomainIcon, DomainIcon(""))
}

func TestCategoryIconLookup(t *testing.T) {
	assert.NotEqual(t, genericCategoryIcon, CategoryIcon("News"))
	assert.NotEqual(t, genericCategoryIcon, CategoryIcon("tech blogs"))
	assert.Equal(t, genericCategoryIcon, CategoryIcon("miscellaneous"))
}

func TestModelIconLookup(t *testing.T) {
	assert.Equal(t, ModelIcon("GPT-4"), ModelIcon("gpt-3.5-turbo"))
	assert.NotEqual(t, genericModelIcon, ModelIcon("Claude 3 Opus"))
	assert.Equal(t, genericModelIcon, ModelIcon("unknown-model"))
}

func TestSourcesCardSelect(t *testing.T) {
	sources := []domain.TopSource{
		{Domain: "reddit.com", Count: 40},
		{Domain: "github.com", Count: 20},
	}
	types := []domain.SourceType{
		{Category: "News", Count: 12},
	}

	c := NewSourcesCard(sources, types)

	var gotSource domain.TopSource
	var gotType domain.SourceType
	c.OnSource(func(s domain.TopSource) { gotSource = s })
	c.OnType(func(s domain.SourceType) { gotType = s })

	require.True(t, c.SelectSource(1))
	assert.Equal(t, sources[1], gotSource)

	require.True(t, c.SelectType(0))
	assert.Equal(t, types[0], gotType)

	assert.False(t, c.SelectSource(2))
	assert.False(t, c.SelectType(-1))
}

func TestSourcesCardRender(t *testing.T) {
	c := NewSourcesCard(
		[]domain.TopSource{{Domain: "reddit.com", Count: 40}},
		[]domain.SourceType{{Category: "News", Count: 12}},
	)

	out := c.Render()
	assert.Contains(t, out, "reddit.com")
	assert.Contains(t, out, "News")
	assert.Contains(t, out, "40")
	assert.Contains(t, out, "12")
}

func TestSourcesCardRenderEmpty(t *testing.T) {
	out := NewSourcesCard(nil, nil).Render()
	assert.Contains(t, out, "No source data")
	assert.Contains(t, out, "No category data")
}
