package scoring

import "sort"

const (
	maxKeywords         = 30
	minKeywordFrequency = 2
)

// ExtractKeyPhrases ranks the tokens of jobText that occur at least twice,
// most frequent first. Equal counts keep first-occurrence order.
func ExtractKeyPhrases(jobText string) []KeywordFrequency {
	tokens := Tokenize(jobText)

	index := make(map[string]int, len(tokens))
	counted := make([]KeywordFrequency, 0, len(tokens))
	for _, tok := range tokens {
		if i, ok := index[tok]; ok {
			counted[i].Count++
			continue
		}
		index[tok] = len(counted)
		counted = append(counted, KeywordFrequency{Word: tok, Count: 1})
	}

	ranked := make([]KeywordFrequency, 0, len(counted))
	for _, kf := range counted {
		if kf.Count >= minKeywordFrequency {
			ranked = append(ranked, kf)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > maxKeywords {
		ranked = ranked[:maxKeywords]
	}
	return ranked
}
