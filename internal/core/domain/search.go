package domain

import "time"

// SearchSource tags where a search result came from.
type SearchSource string

const (
	// SearchSourceCurated means curated mappings answered the search.
	SearchSourceCurated SearchSource = "curated"

	// SearchSourceFallback means the keyword matcher produced suggestions.
	SearchSourceFallback SearchSource = "fallback_matched"

	// SearchSourceNoMatch means neither stage produced anything.
	SearchSourceNoMatch SearchSource = "no_match"
)

// SearchFilters narrows a search to matching code documents. Nil fields
// apply no filter.
type SearchFilters struct {
	Jurisdiction   *string `json:"jurisdiction,omitempty"`
	Year           *int    `json:"year,omitempty"`
	DocumentFamily *string `json:"document_family,omitempty"`
}

// MatchOptions bounds the fallback matcher.
type MatchOptions struct {
	TopN     int     `json:"top_n"`
	MinScore float64 `json:"min_score"` // inclusive lower bound
}

// DefaultMatchOptions returns the standard fallback bounds.
func DefaultMatchOptions() MatchOptions {
	return MatchOptions{
		TopN:     10,
		MinScore: 0.1,
	}
}

// RankedSection is one section in a search result. Relevance is set for
// curated results; Score, Confidence and MatchedTerms for fallback
// suggestions.
type RankedSection struct {
	Section      *CodeSection `json:"section"`
	Relevance    Relevance    `json:"relevance,omitempty"`
	Score        float64      `json:"score,omitempty"`
	Confidence   Confidence   `json:"confidence,omitempty"`
	MatchedTerms []string     `json:"matched_terms,omitempty"`
}

// SearchResult is the envelope returned for every search, including
// empty ones. Callers always receive a well-formed result; fallback
// failures degrade to no_match rather than erroring.
type SearchResult struct {
	SpecCode     *SpecCode        `json:"spec_code"`
	Sections     []*RankedSection `json:"sections"`
	TotalResults int              `json:"total_results"`
	Source       SearchSource     `json:"source"`
	Took         time.Duration    `json:"took" swaggertype:"integer" example:"1500000"`
}
