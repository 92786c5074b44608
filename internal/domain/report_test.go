package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrixScore(t *testing.T) {
	report := &VisibilityReport{
		MatrixCells: []MatrixCell{
			{PersonaName: "Developer", TopicName: "Pricing", Score: 55},
			{PersonaName: "Developer", TopicName: "Security", Score: 72.5},
			{PersonaName: "Manager", TopicName: "Pricing", Score: 0},
		},
	}

	score, ok := report.MatrixScore("Developer", "Security")
	assert.True(t, ok)
	assert.Equal(t, 72.5, score)

	// Present with a zero score is still a hit.
	score, ok = report.MatrixScore("Manager", "Pricing")
	assert.True(t, ok)
	assert.Equal(t, 0.0, score)

	_, ok = report.MatrixScore("Manager", "Security")
	assert.False(t, ok)
}

func TestMaxSourceCount(t *testing.T) {
	report := &VisibilityReport{
		TopSources: []TopSource{
			{Domain: "reddit.com", Count: 12},
			{Domain: "github.com", Count: 41},
			{Domain: "news.ycombinator.com", Count: 7},
		},
	}
	assert.Equal(t, 41, report.MaxSourceCount())

	empty := &VisibilityReport{}
	assert.Equal(t, 0, empty.MaxSourceCount())
}

func TestMaxTypeCount(t *testing.T) {
	report := &VisibilityReport{
		SourceTypes: []SourceType{
			{Category: "Blog", Count: 9},
			{Category: "Documentation", Count: 23},
		},
	}
	assert.Equal(t, 23, report.MaxTypeCount())

	empty := &VisibilityReport{}
	assert.Equal(t, 0, empty.MaxTypeCount())
}
