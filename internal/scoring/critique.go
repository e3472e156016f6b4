package scoring

import "unicode/utf8"

const suggestionThreshold = 70

type critiqueRule struct {
	score   func(r CritiqueReport) int
	message string
}

var critiqueRules = []critiqueRule{
	{score: func(r CritiqueReport) int { return r.OverallScore }, message: "Add more detail to strengthen your resume overall."},
	{score: func(r CritiqueReport) int { return r.Readability }, message: "Shorten sentences to improve readability."},
	{score: func(r CritiqueReport) int { return r.ATS }, message: "Use standard section headings for better ATS compatibility."},
	{score: func(r CritiqueReport) int { return r.SEO }, message: "Add relevant keywords to your summary and skills sections."},
}

// critiqueContent derives the health sub-scores from the content length alone.
func critiqueContent(assetID, content string) CritiqueReport {
	length := float64(utf8.RuneCountInString(content))

	report := CritiqueReport{
		AssetID:     assetID,
		Readability: min(100, roundHalfUp(50+length/500)),
		ATS:         min(100, roundHalfUp(60+length/800)),
		SEO:         min(100, roundHalfUp(55+length/600)),
	}
	report.OverallScore = roundHalfUp(float64(report.Readability+report.ATS+report.SEO) / 3)

	report.Suggestions = make([]string, 0, len(critiqueRules))
	for _, rule := range critiqueRules {
		if rule.score(report) < suggestionThreshold {
			report.Suggestions = append(report.Suggestions, rule.message)
		}
	}
	return report
}
