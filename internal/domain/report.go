package domain

// PersonaVisibility is how often the brand surfaced for a synthetic persona,
// as a 0-100 percentage. Render order follows input order.
type PersonaVisibility struct {
	Name       string  `json:"name"`
	Visibility float64 `json:"visibility"`
}

// TopicVisibility is the brand's visibility for a probed topic (0-100).
type TopicVisibility struct {
	Name       string  `json:"name"`
	Visibility float64 `json:"visibility"`
}

// ModelVisibility is the brand's visibility within one AI model's answers.
type ModelVisibility struct {
	Name       string  `json:"name"`
	Visibility float64 `json:"visibility"`
	Logo       string  `json:"logo,omitempty"`
}

// TopSource is a cited domain with its mention count.
type TopSource struct {
	Domain string `json:"domain"`
	Count  int    `json:"count"`
}

// SourceType is a cited content category with its mention count.
type SourceType struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// MatrixCell is one (persona, topic) visibility score. The cell list is
// sparse; an absent pair means score 0.
type MatrixCell struct {
	PersonaName string  `json:"personaName"`
	TopicName   string  `json:"topicName"`
	Score       float64 `json:"score"`
}

// VisibilityReport bundles the pre-computed sections a brand's report page
// renders. It is an ephemeral view-model: built by a caller, rendered, discarded.
type VisibilityReport struct {
	BrandID        string              `json:"brandId"`
	BrandName      string              `json:"brandName"`
	Personas       []PersonaVisibility `json:"personas"`
	Topics         []TopicVisibility   `json:"topics"`
	Models         []ModelVisibility   `json:"models"`
	TopSources     []TopSource         `json:"topSources"`
	SourceTypes    []SourceType        `json:"sourceTypes"`
	MatrixPersonas []string            `json:"matrixPersonas"`
	MatrixTopics   []string            `json:"matrixTopics"`
	MatrixCells    []MatrixCell        `json:"matrixCells"`
}

// MatrixScore looks up the score for a (persona, topic) pair with a linear
// scan of the flat cell list. Inputs stay small enough that this is fine.
func (r *VisibilityReport) MatrixScore(persona, topic string) (float64, bool) {
	for _, cell := range r.MatrixCells {
		if cell.PersonaName == persona && cell.TopicName == topic {
			return cell.Score, true
		}
	}
	return 0, false
}

// MaxSourceCount returns the largest mention count among top sources.
func (r *VisibilityReport) MaxSourceCount() int {
	max := 0
	for _, s := range r.TopSources {
		if s.Count > max {
			max = s.Count
		}
	}
	return max
}

// MaxTypeCount returns the largest mention count among source types.
func (r *VisibilityReport) MaxTypeCount() int {
	max := 0
	for _, s := range r.SourceTypes {
		if s.Count > max {
			max = s.Count
		}
	}
	return max
}
