package scoring

import (
	"strings"
)

const (
	maxListedKeywords = 15
	maxNamedMissing   = 5
)

type matchRule struct {
	applies func(score int, missing []string) bool
	message func(missing []string) string
}

var matchRules = []matchRule{
	{
		applies: func(score int, _ []string) bool { return score < 50 },
		message: func([]string) string {
			return "Add more relevant keywords from the job description to your resume."
		},
	},
	{
		applies: func(_ int, missing []string) bool { return len(missing) > maxNamedMissing },
		message: func(missing []string) string {
			return "Consider adding these missing keywords: " + strings.Join(missing[:maxNamedMissing], ", ")
		},
	},
	{
		applies: func(score int, _ []string) bool { return score >= 80 },
		message: func([]string) string {
			return "Great match! Your resume aligns well with this job."
		},
	},
}

func scoreMatch(assetID, content, jobText string) MatchResult {
	contentTokens := tokenSet(strings.ToLower(content))
	keywords := ExtractKeyPhrases(jobText)

	present := make([]string, 0, len(keywords))
	missing := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if _, ok := contentTokens[kw.Word]; ok {
			present = append(present, kw.Word)
		} else {
			missing = append(missing, kw.Word)
		}
	}

	score := roundHalfUp(float64(len(present)) / float64(max(len(keywords), 1)) * 100)

	suggestions := make([]string, 0, len(matchRules))
	for _, rule := range matchRules {
		if rule.applies(score, missing) {
			suggestions = append(suggestions, rule.message(missing))
		}
	}

	return MatchResult{
		AssetID:          assetID,
		MatchScorePct:    score,
		PresentKeywords:  truncate(present, maxListedKeywords),
		MissingKeywords:  truncate(missing, maxListedKeywords),
		Suggestions:      suggestions,
		TotalJobKeywords: len(keywords),
	}
}

func truncate(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
