package handler

type PersonaVisibilityResponse struct {
	Name       string  `json:"name"`
	Visibility float64 `json:"visibility"`
}

type TopicVisibilityResponse struct {
	Name       string  `json:"name"`
	Visibility float64 `json:"visibility"`
}

type ModelVisibilityResponse struct {
	Name       string  `json:"name"`
	Visibility float64 `json:"visibility"`
	Logo       string  `json:"logo,omitempty"`
}

type TopSourceResponse struct {
	Domain string `json:"domain"`
	Count  int    `json:"count"`
}

type SourceTypeResponse struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type MatrixCellResponse struct {
	PersonaName string  `json:"personaName"`
	TopicName   string  `json:"topicName"`
	Score       float64 `json:"score"`
}

type BrandReachResponse struct {
	Personas []PersonaVisibilityResponse `json:"personas"`
	Topics   []TopicVisibilityResponse   `json:"topics"`
}

type SourcesResponse struct {
	TopDomains  []TopSourceResponse  `json:"topDomains"`
	SourceTypes []SourceTypeResponse `json:"sourceTypes"`
}

type MatrixResponse struct {
	Personas []string             `json:"personas"`
	Topics   []string             `json:"topics"`
	Cells    []MatrixCellResponse `json:"cells"`
}

type ReportResponse struct {
	BrandID    string                    `json:"brandId"`
	BrandName  string                    `json:"brandName"`
	BrandReach BrandReachResponse        `json:"brandReach"`
	Models     []ModelVisibilityResponse `json:"models"`
	Sources    SourcesResponse           `json:"sources"`
	Matrix     MatrixResponse            `json:"matrix"`
}

type UpdateDescriptionRequest struct {
	Description string `json:"description"`
}

type UpdateDescriptionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	BrandID string `json:"brand_id,omitempty"`
}
