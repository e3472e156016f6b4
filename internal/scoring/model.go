package scoring

// Operation names used for metrics, logs and stored reports.
const (
	OpMatch     = "match"
	OpDuplicate = "duplicate"
	OpATS       = "ats"
	OpCritique  = "critique"
)

// Asset is the engine's view of a stored asset. Content is treated as opaque
// and only ever read after serialization.
type Asset struct {
	ID      string
	OwnerID string
	Content any
}

// KeywordFrequency is one entry of a keyword ranking.
type KeywordFrequency struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// MatchResult compares an asset against the keywords of a job description.
type MatchResult struct {
	AssetID          string   `json:"assetId"`
	MatchScorePct    int      `json:"matchScorePct"`
	PresentKeywords  []string `json:"presentKeywords"`
	MissingKeywords  []string `json:"missingKeywords"`
	Suggestions      []string `json:"suggestions"`
	TotalJobKeywords int      `json:"totalJobKeywords"`
}

// ATSCheckResult is the outcome of a single checklist entry.
type ATSCheckResult struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Weight int    `json:"weight"`
}

// ATSReport is the weighted checklist evaluation of an asset.
type ATSReport struct {
	AssetID      string           `json:"assetId"`
	ATSScore     int              `json:"atsScore"`
	Checks       []ATSCheckResult `json:"checks"`
	Improvements []string         `json:"improvements"`
}

// CritiqueReport holds the health sub-scores of an asset. Only OverallScore is
// persisted, as the asset's health score.
type CritiqueReport struct {
	AssetID      string   `json:"assetId"`
	OverallScore int      `json:"overallScore"`
	Readability  int      `json:"readability"`
	ATS          int      `json:"ats"`
	SEO          int      `json:"seo"`
	Suggestions  []string `json:"suggestions"`
}
