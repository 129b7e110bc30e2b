package matcher

import (
	"sort"
	"strings"
)

const maxMatchedTerms = 5

// matchedTerms returns up to 5 significant terms shared by the query
// and candidate texts, for human-facing explanation only; scores never
// depend on it. Terms are ordered longest first, alphabetically when
// equal length, so explanations are deterministic.
func matchedTerms(query, text string) []string {
	queryTerms := termSet(query)
	candidateTerms := termSet(text)

	overlap := make([]string, 0, len(queryTerms))
	for term := range queryTerms {
		if _, ok := candidateTerms[term]; ok {
			overlap = append(overlap, term)
		}
	}

	sort.Slice(overlap, func(i, j int) bool {
		if len(overlap[i]) != len(overlap[j]) {
			return len(overlap[i]) > len(overlap[j])
		}
		return overlap[i] < overlap[j]
	})

	if len(overlap) > maxMatchedTerms {
		overlap = overlap[:maxMatchedTerms]
	}
	return overlap
}

// termSet lowercases and splits on whitespace, dropping the small
// explanation stop-word set.
func termSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, word := range strings.Fields(strings.ToLower(text)) {
		if _, stop := explainStopwords[word]; stop {
			continue
		}
		set[word] = struct{}{}
	}
	return set
}
